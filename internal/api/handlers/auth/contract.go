package auth

import (
	"context"

	"github.com/m04kA/MRS-RoomBookingService/internal/integrations/authservice"
)

type AuthClient interface {
	SignIn(ctx context.Context, email, password string) (*authservice.SignInResult, error)
	SignOut(ctx context.Context, accessToken string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
