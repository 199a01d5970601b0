package manage_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/MRS-RoomBookingService/internal/service/rooms"
	roomModels "github.com/m04kA/MRS-RoomBookingService/internal/service/rooms/models"
	"github.com/m04kA/MRS-RoomBookingService/pkg/ptr"
)

const (
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRoomNotFound       = "комната не найдена"
	msgInvalidRoomData    = "некорректные данные комнаты"
	msgInvalidImage       = "некорректный файл изображения"
	msgUploadFailed       = "не удалось загрузить изображение"
)

// Фото комнаты не больше 5 МБ
const maxImageSize = 5 << 20

type Handler struct {
	service     RoomService
	fileStorage FileStorageClient
	logger      Logger
}

func NewHandler(service RoomService, fileStorage FileStorageClient, logger Logger) *Handler {
	return &Handler{
		service:     service,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// HandleCreate POST /api/v1/admin/rooms
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req roomModels.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, rooms.ErrInvalidInput) {
			h.logger.Warn("POST /admin/rooms - Invalid room data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoomData)
			return
		}
		h.logger.Error("POST /admin/rooms - Failed to create room: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/rooms - Room created successfully: room_id=%d", room.ID)
	handlers.RespondJSON(w, http.StatusCreated, room)
}

// HandleUpdate PUT /api/v1/admin/rooms/{roomId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	roomID, ok := h.roomID(w, r, "PUT /admin/rooms/{id}")
	if !ok {
		return
	}

	var req roomModels.UpdateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/rooms/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Update(r.Context(), roomID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("PUT /admin/rooms/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("PUT /admin/rooms/{id} - Invalid room data: room_id=%d: %v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidRoomData)

		default:
			h.logger.Error("PUT /admin/rooms/{id} - Failed to update room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/rooms/{id} - Room updated successfully: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, room)
}

// HandleDelete DELETE /api/v1/admin/rooms/{roomId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	roomID, ok := h.roomID(w, r, "DELETE /admin/rooms/{id}")
	if !ok {
		return
	}

	// Фото комнаты убираем из хранилища до удаления записи
	room, err := h.service.GetByID(r.Context(), roomID)
	if err == nil && room.ImageURL != nil {
		if err := h.fileStorage.Remove(r.Context(), *room.ImageURL); err != nil {
			h.logger.Warn("DELETE /admin/rooms/{id} - Failed to remove image: room_id=%d: %v", roomID, err)
		}
	}

	if err := h.service.Delete(r.Context(), roomID); err != nil {
		if errors.Is(err, rooms.ErrRoomNotFound) {
			h.logger.Warn("DELETE /admin/rooms/{id} - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("DELETE /admin/rooms/{id} - Failed to delete room: room_id=%d, error=%v", roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/rooms/{id} - Room deleted successfully: room_id=%d", roomID)
	handlers.RespondNoContent(w)
}

// HandleUploadImage POST /api/v1/admin/rooms/{roomId}/image
// Принимает multipart/form-data с полем "image", загружает файл
// в хранилище и сохраняет публичный URL в карточке комнаты
func (h *Handler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	roomID, ok := h.roomID(w, r, "POST /admin/rooms/{id}/image")
	if !ok {
		return
	}

	room, err := h.service.GetByID(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, rooms.ErrRoomNotFound) {
			h.logger.Warn("POST /admin/rooms/{id}/image - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)
			return
		}
		h.logger.Error("POST /admin/rooms/{id}/image - Failed to get room: room_id=%d, error=%v", roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		h.logger.Warn("POST /admin/rooms/{id}/image - Failed to parse form: room_id=%d: %v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.logger.Warn("POST /admin/rooms/{id}/image - Missing image file: room_id=%d: %v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	imageURL, err := h.fileStorage.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		h.logger.Error("POST /admin/rooms/{id}/image - Upload failed: room_id=%d, error=%v", roomID, err)
		handlers.RespondError(w, http.StatusBadGateway, msgUploadFailed)
		return
	}

	// Старое фото больше не нужно
	if room.ImageURL != nil && *room.ImageURL != imageURL {
		if err := h.fileStorage.Remove(r.Context(), *room.ImageURL); err != nil {
			h.logger.Warn("POST /admin/rooms/{id}/image - Failed to remove old image: room_id=%d: %v", roomID, err)
		}
	}

	updated, err := h.service.Update(r.Context(), roomID, &roomModels.UpdateRoomRequest{
		Name:      room.Name,
		Building:  room.Building,
		Floor:     room.Floor,
		Capacity:  room.Capacity,
		Equipment: room.Equipment,
		ImageURL:  ptr.Ptr(imageURL),
	})
	if err != nil {
		h.logger.Error("POST /admin/rooms/{id}/image - Failed to save image URL: room_id=%d, error=%v", roomID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/rooms/{id}/image - Image uploaded successfully: room_id=%d", roomID)
	handlers.RespondJSON(w, http.StatusOK, updated)
}

// roomID извлекает и валидирует ID комнаты из URL
func (h *Handler) roomID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	vars := mux.Vars(r)
	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid room ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return 0, false
	}
	return roomID, true
}
