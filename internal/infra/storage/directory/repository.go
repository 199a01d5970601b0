// Package directory репозиторий справочников: отделы, здания, оборудование
// Таблицы простые (id + имя), поэтому живут в одном репозитории
package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	"github.com/m04kA/MRS-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/MRS-RoomBookingService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

// Repository репозиторий справочных данных
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// --- Departments ---

// ListDepartments получает все отделы
func (r *Repository) ListDepartments(ctx context.Context) ([]*domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "organization", "created_at", "updated_at").
		From("departments").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDepartments - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDepartments - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	departments := make([]*domain.Department, 0)
	for rows.Next() {
		var dept domain.Department
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Organization, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListDepartments - scan row: %w", ErrScanRow, err)
		}

		dept.CreatedAt = createdAt.Time
		dept.UpdatedAt = updatedAt.Time
		departments = append(departments, &dept)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDepartments - rows error: %w", ErrScanRow, err)
	}

	return departments, nil
}

// CreateDepartment создает отдел
func (r *Repository) CreateDepartment(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("departments").
		Columns("name", "organization").
		Values(dept.Name, dept.Organization).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateDepartment - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&dept.ID, &createdAt, &updatedAt)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("%w: CreateDepartment - execute insert: %w", ErrExecQuery, err)
	}

	dept.CreatedAt = createdAt.Time
	dept.UpdatedAt = updatedAt.Time

	return dept, nil
}

// UpdateDepartment обновляет отдел
func (r *Repository) UpdateDepartment(ctx context.Context, dept *domain.Department) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("departments").
		Set("name", dept.Name).
		Set("organization", dept.Organization).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": dept.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateDepartment - build update query: %w", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, query, args, "UpdateDepartment")
}

// DeleteDepartment удаляет отдел
func (r *Repository) DeleteDepartment(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("departments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteDepartment - build delete query: %w", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, query, args, "DeleteDepartment")
}

// --- Buildings ---

// ListBuildings получает все здания
func (r *Repository) ListBuildings(ctx context.Context) ([]*domain.Building, error) {
	return listNamed(ctx, r, "buildings", func(id int64, name string, createdAt, updatedAt sql.NullTime) *domain.Building {
		return &domain.Building{ID: id, Name: name, CreatedAt: createdAt.Time, UpdatedAt: updatedAt.Time}
	})
}

// CreateBuilding создает здание
func (r *Repository) CreateBuilding(ctx context.Context, building *domain.Building) (*domain.Building, error) {
	id, createdAt, updatedAt, err := r.insertNamed(ctx, "buildings", building.Name, "CreateBuilding")
	if err != nil {
		return nil, err
	}
	building.ID = id
	building.CreatedAt = createdAt
	building.UpdatedAt = updatedAt
	return building, nil
}

// UpdateBuilding обновляет здание
func (r *Repository) UpdateBuilding(ctx context.Context, building *domain.Building) error {
	return r.updateNamed(ctx, "buildings", building.ID, building.Name, "UpdateBuilding")
}

// DeleteBuilding удаляет здание
func (r *Repository) DeleteBuilding(ctx context.Context, id int64) error {
	return r.deleteNamed(ctx, "buildings", id, "DeleteBuilding")
}

// --- Equipment ---

// ListEquipment получает всё оборудование
func (r *Repository) ListEquipment(ctx context.Context) ([]*domain.Equipment, error) {
	return listNamed(ctx, r, "equipment", func(id int64, name string, createdAt, updatedAt sql.NullTime) *domain.Equipment {
		return &domain.Equipment{ID: id, Name: name, CreatedAt: createdAt.Time, UpdatedAt: updatedAt.Time}
	})
}

// CreateEquipment создает запись оборудования
func (r *Repository) CreateEquipment(ctx context.Context, equipment *domain.Equipment) (*domain.Equipment, error) {
	id, createdAt, updatedAt, err := r.insertNamed(ctx, "equipment", equipment.Name, "CreateEquipment")
	if err != nil {
		return nil, err
	}
	equipment.ID = id
	equipment.CreatedAt = createdAt
	equipment.UpdatedAt = updatedAt
	return equipment, nil
}

// UpdateEquipment обновляет запись оборудования
func (r *Repository) UpdateEquipment(ctx context.Context, equipment *domain.Equipment) error {
	return r.updateNamed(ctx, "equipment", equipment.ID, equipment.Name, "UpdateEquipment")
}

// DeleteEquipment удаляет запись оборудования
func (r *Repository) DeleteEquipment(ctx context.Context, id int64) error {
	return r.deleteNamed(ctx, "equipment", id, "DeleteEquipment")
}

// --- helpers ---

func listNamedRows[T any](rows *sql.Rows, build func(int64, string, sql.NullTime, sql.NullTime) *T, op string) ([]*T, error) {
	items := make([]*T, 0)
	for rows.Next() {
		var id int64
		var name string
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&id, &name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		items = append(items, build(id, name, createdAt, updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}
	return items, nil
}

func listNamed[T any](ctx context.Context, r *Repository, table string, build func(int64, string, sql.NullTime, sql.NullTime) *T) ([]*T, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at", "updated_at").
		From(table).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list %s - build select query: %w", ErrBuildQuery, table, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s - execute query: %w", ErrExecQuery, table, err)
	}
	defer rows.Close()

	return listNamedRows(rows, build, "list "+table)
}

func (r *Repository) insertNamed(ctx context.Context, table, name, op string) (int64, time.Time, time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("name").
		Values(name).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, time.Time{}, time.Time{}, fmt.Errorf("%w: %s - build insert query: %w", ErrBuildQuery, op, err)
	}

	var id int64
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		if isDuplicate(err) {
			return 0, time.Time{}, time.Time{}, ErrDuplicate
		}
		return 0, time.Time{}, time.Time{}, fmt.Errorf("%w: %s - execute insert: %w", ErrExecQuery, op, err)
	}

	return id, createdAt.Time, updatedAt.Time, nil
}

func (r *Repository) updateNamed(ctx context.Context, table string, id int64, name, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %w", ErrBuildQuery, op, err)
	}

	return r.exec(ctx, executor, query, args, op)
}

func (r *Repository) deleteNamed(ctx context.Context, table string, id int64, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build delete query: %w", ErrBuildQuery, op, err)
	}

	return r.exec(ctx, executor, query, args, op)
}

func (r *Repository) exec(ctx context.Context, executor dbmetrics.DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func isDuplicate(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}
