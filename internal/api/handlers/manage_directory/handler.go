// Package manage_directory обработчики справочников: отделы, здания, оборудование
// Справочники публично читаются (выпадающие списки формы бронирования)
// и редактируются только из админки
package manage_directory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MRS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/MRS-RoomBookingService/internal/service/directory"
	directoryModels "github.com/m04kA/MRS-RoomBookingService/internal/service/directory/models"
)

const (
	msgInvalidEntryID     = "некорректный ID записи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEntryNotFound      = "запись не найдена"
	msgDuplicateEntry     = "такая запись уже существует"
	msgInvalidEntryData   = "некорректные данные записи"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// --- Departments ---

// HandleListDepartments GET /api/v1/departments
func (h *Handler) HandleListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListDepartments(r.Context())
	if err != nil {
		h.logger.Error("GET /departments - Failed to list departments: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreateDepartment POST /api/v1/admin/departments
func (h *Handler) HandleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req directoryModels.DepartmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/departments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateDepartment(r.Context(), &req)
	if err != nil {
		h.respondWriteError(w, err, "POST /admin/departments")
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, created)
}

// HandleUpdateDepartment PUT /api/v1/admin/departments/{id}
func (h *Handler) HandleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r, "PUT /admin/departments/{id}")
	if !ok {
		return
	}

	var req directoryModels.DepartmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/departments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateDepartment(r.Context(), id, &req); err != nil {
		h.respondWriteError(w, err, "PUT /admin/departments/{id}")
		return
	}

	handlers.RespondNoContent(w)
}

// HandleDeleteDepartment DELETE /api/v1/admin/departments/{id}
func (h *Handler) HandleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r, "DELETE /admin/departments/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteDepartment(r.Context(), id); err != nil {
		h.respondWriteError(w, err, "DELETE /admin/departments/{id}")
		return
	}

	handlers.RespondNoContent(w)
}

// --- Buildings ---

// HandleListBuildings GET /api/v1/buildings
func (h *Handler) HandleListBuildings(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBuildings(r.Context())
	if err != nil {
		h.logger.Error("GET /buildings - Failed to list buildings: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreateBuilding POST /api/v1/admin/buildings
func (h *Handler) HandleCreateBuilding(w http.ResponseWriter, r *http.Request) {
	var req directoryModels.NamedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/buildings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateBuilding(r.Context(), &req)
	if err != nil {
		h.respondWriteError(w, err, "POST /admin/buildings")
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, created)
}

// HandleUpdateBuilding PUT /api/v1/admin/buildings/{id}
func (h *Handler) HandleUpdateBuilding(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r, "PUT /admin/buildings/{id}")
	if !ok {
		return
	}

	var req directoryModels.NamedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/buildings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateBuilding(r.Context(), id, &req); err != nil {
		h.respondWriteError(w, err, "PUT /admin/buildings/{id}")
		return
	}

	handlers.RespondNoContent(w)
}

// HandleDeleteBuilding DELETE /api/v1/admin/buildings/{id}
func (h *Handler) HandleDeleteBuilding(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r, "DELETE /admin/buildings/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteBuilding(r.Context(), id); err != nil {
		h.respondWriteError(w, err, "DELETE /admin/buildings/{id}")
		return
	}

	handlers.RespondNoContent(w)
}

// --- Equipment ---

// HandleListEquipment GET /api/v1/equipment
func (h *Handler) HandleListEquipment(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListEquipment(r.Context())
	if err != nil {
		h.logger.Error("GET /equipment - Failed to list equipment: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreateEquipment POST /api/v1/admin/equipment
func (h *Handler) HandleCreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req directoryModels.NamedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/equipment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.CreateEquipment(r.Context(), &req)
	if err != nil {
		h.respondWriteError(w, err, "POST /admin/equipment")
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, created)
}

// HandleUpdateEquipment PUT /api/v1/admin/equipment/{id}
func (h *Handler) HandleUpdateEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r, "PUT /admin/equipment/{id}")
	if !ok {
		return
	}

	var req directoryModels.NamedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/equipment/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateEquipment(r.Context(), id, &req); err != nil {
		h.respondWriteError(w, err, "PUT /admin/equipment/{id}")
		return
	}

	handlers.RespondNoContent(w)
}

// HandleDeleteEquipment DELETE /api/v1/admin/equipment/{id}
func (h *Handler) HandleDeleteEquipment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r, "DELETE /admin/equipment/{id}")
	if !ok {
		return
	}

	if err := h.service.DeleteEquipment(r.Context(), id); err != nil {
		h.respondWriteError(w, err, "DELETE /admin/equipment/{id}")
		return
	}

	handlers.RespondNoContent(w)
}

// Вспомогательные методы

// entryID извлекает и валидирует ID записи из URL
func (h *Handler) entryID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid entry ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return 0, false
	}
	return id, true
}

// respondWriteError мапит ошибки сервиса справочников на HTTP статусы
func (h *Handler) respondWriteError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, directory.ErrEntryNotFound):
		h.logger.Warn("%s - Entry not found", op)
		handlers.RespondNotFound(w, msgEntryNotFound)

	case errors.Is(err, directory.ErrDuplicateEntry):
		h.logger.Warn("%s - Duplicate entry", op)
		handlers.RespondConflict(w, msgDuplicateEntry)

	case errors.Is(err, directory.ErrInvalidInput):
		h.logger.Warn("%s - Invalid entry data: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidEntryData)

	default:
		h.logger.Error("%s - Failed: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
