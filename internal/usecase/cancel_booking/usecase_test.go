package cancel_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	deleteErr error
	deleted   []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_CancelsOwnBooking(t *testing.T) {
	repo := &fakeBookingRepo{
		booking: &domain.Booking{ID: 7, Phone: "0812345678"},
	}
	uc := NewUseCase(repo, noopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 7, Phone: "081-234-5678"})
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, repo.deleted)
}

func TestExecute_PhoneMismatch(t *testing.T) {
	repo := &fakeBookingRepo{
		booking: &domain.Booking{ID: 7, Phone: "0812345678"},
	}
	uc := NewUseCase(repo, noopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 7, Phone: "0899999999"})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := NewUseCase(repo, noopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 7, Phone: "0812345678"})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, noopLogger{})

	err := uc.Execute(context.Background(), &Request{BookingID: 0, Phone: "0812345678"})
	require.ErrorIs(t, err, ErrInvalidInput)

	err = uc.Execute(context.Background(), &Request{BookingID: 7, Phone: "bad"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
