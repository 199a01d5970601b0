// Package middleware HTTP middleware: авторизация и метрики
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/MRS-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/MRS-RoomBookingService/internal/integrations/authservice"
)

const msgUnauthorized = "требуется авторизация"

type contextKey string

const userContextKey contextKey = "auth_user"

// AuthClient интерфейс клиента сервиса авторизации
type AuthClient interface {
	GetUser(ctx context.Context, accessToken string) (*authservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Bearer-токен через сервис авторизации и кладет
// пользователя в контекст запроса. Защищает админские маршруты
func Auth(client AuthClient, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				logger.Warn("Auth: missing bearer token, path=%s", r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			user, err := client.GetUser(r.Context(), token)
			if err != nil {
				logger.Warn("Auth: token validation failed, path=%s: %v", r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser извлекает авторизованного пользователя из контекста запроса
func GetUser(ctx context.Context) (*authservice.User, bool) {
	user, ok := ctx.Value(userContextKey).(*authservice.User)
	return user, ok
}

// extractBearerToken достает токен из заголовка Authorization
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
