package cancel_booking

// CancelBookingRequest HTTP request model
// Телефон подтверждает право на отмену - должен совпадать
// с контактным номером бронирования
type CancelBookingRequest struct {
	Phone string `json:"phone"`
}
