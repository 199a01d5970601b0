package filestorage

import "errors"

var (
	// ErrUploadFailed возвращается, когда хранилище отклонило загрузку
	ErrUploadFailed = errors.New("filestorage client: upload failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("filestorage client: internal error")
)
