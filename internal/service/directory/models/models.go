package models

import (
	"time"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
)

// Request модели

// DepartmentRequest запрос на создание или обновление отдела
type DepartmentRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
}

// NamedRequest запрос на создание или обновление записи с одним именем
// (здания и оборудование)
type NamedRequest struct {
	Name string `json:"name"`
}

// Response модели

// DepartmentResponse ответ с данными отдела
type DepartmentResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NamedResponse ответ с записью справочника, состоящей из имени
type NamedResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DepartmentListResponse ответ со списком отделов
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// NamedListResponse ответ со списком именованных записей
type NamedListResponse struct {
	Items []NamedResponse `json:"items"`
}

// Методы конвертации

// FromDomainDepartment конвертирует domain модель в DTO
func FromDomainDepartment(d *domain.Department) *DepartmentResponse {
	if d == nil {
		return nil
	}
	return &DepartmentResponse{
		ID:           d.ID,
		Name:         d.Name,
		Organization: d.Organization,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// FromDomainDepartmentList конвертирует список domain моделей в DTO
func FromDomainDepartmentList(departments []*domain.Department) *DepartmentListResponse {
	resp := &DepartmentListResponse{
		Departments: make([]DepartmentResponse, 0, len(departments)),
	}
	for _, d := range departments {
		if deptResp := FromDomainDepartment(d); deptResp != nil {
			resp.Departments = append(resp.Departments, *deptResp)
		}
	}
	return resp
}

// FromDomainBuilding конвертирует domain модель в DTO
func FromDomainBuilding(b *domain.Building) *NamedResponse {
	if b == nil {
		return nil
	}
	return &NamedResponse{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBuildingList конвертирует список domain моделей в DTO
func FromDomainBuildingList(buildings []*domain.Building) *NamedListResponse {
	resp := &NamedListResponse{
		Items: make([]NamedResponse, 0, len(buildings)),
	}
	for _, b := range buildings {
		if buildingResp := FromDomainBuilding(b); buildingResp != nil {
			resp.Items = append(resp.Items, *buildingResp)
		}
	}
	return resp
}

// FromDomainEquipment конвертирует domain модель в DTO
func FromDomainEquipment(e *domain.Equipment) *NamedResponse {
	if e == nil {
		return nil
	}
	return &NamedResponse{
		ID:        e.ID,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// FromDomainEquipmentList конвертирует список domain моделей в DTO
func FromDomainEquipmentList(equipment []*domain.Equipment) *NamedListResponse {
	resp := &NamedListResponse{
		Items: make([]NamedResponse, 0, len(equipment)),
	}
	for _, e := range equipment {
		if equipmentResp := FromDomainEquipment(e); equipmentResp != nil {
			resp.Items = append(resp.Items, *equipmentResp)
		}
	}
	return resp
}
