package auth

import "github.com/m04kA/MRS-RoomBookingService/internal/integrations/authservice"

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
	ExpiresIn   int          `json:"expiresIn"`
}

// UserResponse модель пользователя
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// FromSignInResult конвертирует результат входа в HTTP response
func FromSignInResult(result *authservice.SignInResult) *LoginResponse {
	return &LoginResponse{
		User: UserResponse{
			ID:    result.User.ID,
			Email: result.User.Email,
			Name:  result.User.Name,
			Role:  result.User.Role,
		},
		AccessToken: result.Session.AccessToken,
		ExpiresIn:   result.Session.ExpiresIn,
	}
}
