package directory

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись справочника не найдена
	ErrEntryNotFound = errors.New("directory entry not found")

	// ErrDuplicateEntry возвращается при попытке создать дубликат записи
	ErrDuplicateEntry = errors.New("directory entry already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
