package authservice

// User модель пользователя из сервиса аутентификации
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session сессия пользователя
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// SignInResult результат входа: пользователь и его сессия
type SignInResult struct {
	User    User    `json:"user"`
	Session Session `json:"session"`
}

// ErrorResponse модель ошибки от сервиса аутентификации
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
