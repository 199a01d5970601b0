package models

import (
	"time"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	Name      string   `json:"name"`
	Building  string   `json:"building"`
	Floor     string   `json:"floor"`
	Capacity  int      `json:"capacity"`
	Equipment []string `json:"equipment"`
	ImageURL  *string  `json:"imageUrl,omitempty"`
}

// UpdateRoomRequest запрос на обновление комнаты
type UpdateRoomRequest struct {
	Name      string   `json:"name"`
	Building  string   `json:"building"`
	Floor     string   `json:"floor"`
	Capacity  int      `json:"capacity"`
	Equipment []string `json:"equipment"`
	ImageURL  *string  `json:"imageUrl,omitempty"`
}

// ToDomain конвертирует request в доменную модель
func (r *CreateRoomRequest) ToDomain() *domain.Room {
	return &domain.Room{
		Name:      r.Name,
		Building:  r.Building,
		Floor:     r.Floor,
		Capacity:  r.Capacity,
		Equipment: r.Equipment,
		ImageURL:  r.ImageURL,
	}
}

// ToDomain конвертирует request в доменную модель
func (r *UpdateRoomRequest) ToDomain(id int64) *domain.Room {
	return &domain.Room{
		ID:        id,
		Name:      r.Name,
		Building:  r.Building,
		Floor:     r.Floor,
		Capacity:  r.Capacity,
		Equipment: r.Equipment,
		ImageURL:  r.ImageURL,
	}
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Building  string   `json:"building"`
	Floor     string   `json:"floor"`
	Capacity  int      `json:"capacity"`
	Equipment []string `json:"equipment"`
	ImageURL  *string  `json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	equipment := r.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	return &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Building:  r.Building,
		Floor:     r.Floor,
		Capacity:  r.Capacity,
		Equipment: equipment,
		ImageURL:  r.ImageURL,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}

	return resp
}
