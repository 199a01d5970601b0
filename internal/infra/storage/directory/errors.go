package directory

import "errors"

var (
	// ErrNotFound возвращается, когда запись справочника не найдена
	ErrNotFound = errors.New("directory.repository: entry not found")

	// ErrDuplicate возвращается при попытке создать дубликат записи
	ErrDuplicate = errors.New("directory.repository: duplicate entry")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("directory.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("directory.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("directory.repository: failed to scan row")
)
