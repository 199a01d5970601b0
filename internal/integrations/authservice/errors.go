package authservice

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("authservice client: invalid credentials")

	// ErrUnauthorized возвращается при недействительном или истёкшем токене
	ErrUnauthorized = errors.New("authservice client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
