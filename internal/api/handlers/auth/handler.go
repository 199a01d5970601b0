package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/MRS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/MRS-RoomBookingService/internal/integrations/authservice"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "не указаны email или пароль"
	msgInvalidCredentials = "неверный email или пароль"
)

type Handler struct {
	client AuthClient
	logger Logger
}

func NewHandler(client AuthClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// HandleLogin POST /api/v1/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Email == "" || req.Password == "" {
		h.logger.Warn("POST /auth/login - Missing credentials")
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	result, err := h.client.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /auth/login - Sign in failed: email=%s, error=%v", req.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - User signed in: email=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, FromSignInResult(result))
}

// HandleLogout POST /api/v1/auth/logout
// Ошибки отзыва токена не фатальны: клиент в любом случае забывает сессию
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r)
	if token != "" {
		if err := h.client.SignOut(r.Context(), token); err != nil {
			h.logger.Warn("POST /auth/logout - Sign out failed: %v", err)
		}
	}

	h.logger.Info("POST /auth/logout - User signed out")
	handlers.RespondNoContent(w)
}

// extractBearerToken достает токен из заголовка Authorization
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
