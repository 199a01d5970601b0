package cancel_booking

// Request модель запроса на отмену бронирования
// Phone - контактный номер, подтверждающий право на отмену
type Request struct {
	BookingID int64  // ID бронирования
	Phone     string // Контактный телефон владельца бронирования
}
