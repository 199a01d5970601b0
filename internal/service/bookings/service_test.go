package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/MRS-RoomBookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	byID     map[int64]*domain.Booking
	byRoom   []*domain.Booking
	byPhone  []*domain.Booking
	updated  *domain.Booking
	statuses map[int64]domain.BookingStatus
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		byID:     make(map[int64]*domain.Booking),
		statuses: make(map[int64]domain.BookingStatus),
	}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, errBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByPhone(_ context.Context, _ string) ([]*domain.Booking, error) {
	return f.byPhone, nil
}

func (f *fakeBookingRepo) GetByRoomAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.byRoom, nil
}

func (f *fakeBookingRepo) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.byRoom, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) error {
	f.updated = booking
	f.byID[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.byID[id]; !ok {
		return errBookingNotFound
	}
	f.statuses[id] = status
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return errBookingNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Та же sentinel-ошибка, которую мапит сервис
var errBookingNotFound = bookingRepo.ErrBookingNotFound

func updateRequest() *models.UpdateBookingRequest {
	return &models.UpdateBookingRequest{
		RoomID:      1,
		BookingDate: "2025-10-16",
		StartTime:   "10:00",
		EndTime:     "12:00",
		Title:       "Budget review",
		BookedBy:    "Somchai",
		Phone:       "081-234-5678",
		Attendees:   4,
		Status:      "confirmed",
	}
}

func newTestService(repo *fakeBookingRepo) *Service {
	return NewService(repo, &fakeRoomRepo{room: &domain.Room{ID: 1, Capacity: 8}}, fakeTxManager{}, noopLogger{})
}

func TestUpdate_IgnoresOverlapWithItself(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[5] = &domain.Booking{ID: 5, RoomID: 1, StartTime: "10:00", EndTime: "11:00"}
	repo.byRoom = []*domain.Booking{repo.byID[5]}

	svc := newTestService(repo)

	resp, err := svc.Update(context.Background(), 5, updateRequest())
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "12:00", resp.EndTime)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "0812345678", repo.updated.Phone)
}

func TestUpdate_ConflictWithOtherBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[5] = &domain.Booking{ID: 5, RoomID: 1, StartTime: "08:00", EndTime: "09:00"}
	repo.byRoom = []*domain.Booking{
		repo.byID[5],
		{ID: 6, RoomID: 1, StartTime: "11:00", EndTime: "13:00"},
	}

	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), 5, updateRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUpdate_RejectsUnpaddedTime(t *testing.T) {
	// "9:00" лексикографически больше "10:00", поэтому формат без
	// ведущего нуля отклоняется до любых сравнений интервалов
	repo := newFakeBookingRepo()
	repo.byID[5] = &domain.Booking{ID: 5, RoomID: 1, StartTime: "08:00", EndTime: "09:00"}
	repo.byRoom = []*domain.Booking{
		repo.byID[5],
		{ID: 6, RoomID: 1, StartTime: "09:00", EndTime: "10:00"},
	}

	svc := newTestService(repo)

	req := updateRequest()
	req.StartTime = "9:00"
	req.EndTime = "9:30"

	_, err := svc.Update(context.Background(), 5, req)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, repo.updated)
}

func TestUpdate_InvalidTimeRange(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	req := updateRequest()
	req.StartTime = "12:00"
	req.EndTime = "10:00"

	_, err := svc.Update(context.Background(), 5, req)
	require.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestUpdateStatus_Validation(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[5] = &domain.Booking{ID: 5}
	svc := newTestService(repo)

	err := svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, repo.statuses[5])

	err = svc.UpdateStatus(context.Background(), 5, &models.UpdateStatusRequest{Status: "cancelled"})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetByPhone_InvalidPhone(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	_, err := svc.GetByPhone(context.Background(), "12345")
	require.ErrorIs(t, err, ErrInvalidInput)
}
