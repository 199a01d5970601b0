package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrEmptySelection возвращается, когда не выбран ни один слот
	ErrEmptySelection = errors.New("create_booking: no time slots selected")

	// ErrSlotNotInCatalog возвращается, когда выбранное время не из каталога
	ErrSlotNotInCatalog = errors.New("create_booking: time slot is not in the daily catalog")

	// ErrSlotsNotAdjacent возвращается, когда выбранные слоты не образуют
	// непрерывный интервал
	ErrSlotsNotAdjacent = errors.New("create_booking: selected time slots are not adjacent")

	// ErrSlotInPast возвращается при попытке забронировать прошедший слот
	ErrSlotInPast = errors.New("create_booking: time slot is in the past")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("create_booking: invalid phone number")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается
	// с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
