package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/room"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByRoomAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, f.err
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookingRepo *fakeBookingRepo, roomRepo *fakeRoomRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookingRepo, roomRepo, domain.DefaultSlotCatalog(), noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_ReturnsCatalogWithAvailability(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	date := time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{
			{StartTime: "13:00", EndTime: "15:00"},
		}},
		&fakeRoomRepo{room: &domain.Room{ID: 1, Name: "Meeting A", Capacity: 8}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: date})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 13)
	assert.Equal(t, int64(1), resp.RoomID)

	occupied := 0
	for _, s := range resp.Slots {
		if !s.Available {
			occupied++
		}
	}
	assert.Equal(t, 2, occupied)
}

func TestExecute_RoomNotFound(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{err: roomRepo.ErrRoomNotFound},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 42, Date: now.AddDate(0, 0, 1)})
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_PastDateRejected(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeRoomRepo{room: &domain.Room{ID: 1}},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: now.AddDate(0, 0, -1)})
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 0, Date: now})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}
