package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MRS-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/MRS-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/MRS-RoomBookingService/pkg/ptr"
	"github.com/m04kA/MRS-RoomBookingService/pkg/types"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	created.ID = 101
	created.CreatedAt = time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByRoomAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, f.err
}

// fakeTxManager выполняет fn без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestUseCase(bookings *fakeBookingRepo, rooms *fakeRoomRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, rooms, fakeTxManager{}, domain.DefaultSlotCatalog(), noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		RoomID:     1,
		Date:       time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
		TimeSlots:  []types.TimeString{"10:00", "09:00"},
		Title:      "Sprint planning",
		Department: ptr.Ptr("Engineering"),
		BookedBy:   "Somchai",
		Phone:      "081-234-5678",
		Attendees:  4,
	}
}

func TestExecute_CreatesConfirmedBooking(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{}

	uc := newTestUseCase(repo, &fakeRoomRepo{room: &domain.Room{ID: 1, Capacity: 8}}, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Интервал покрывает оба слота, независимо от порядка во входе
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "081-234-5678", resp.Phone)

	require.NotNil(t, repo.created)
	assert.Equal(t, "0812345678", repo.created.Phone)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
}

func TestExecute_OverlapDetectedInTransaction(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{StartTime: "10:00", EndTime: "12:00"},
		},
	}

	uc := newTestUseCase(repo, &fakeRoomRepo{room: &domain.Room{ID: 1, Capacity: 8}}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_TouchingBookingIsNotAConflict(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{StartTime: "11:00", EndTime: "12:00"},
		},
	}

	uc := newTestUseCase(repo, &fakeRoomRepo{room: &domain.Room{ID: 1, Capacity: 8}}, now)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
}

func TestExecute_DatabaseConstraintMapsToSlotNotAvailable(t *testing.T) {
	// Проигрыш гонки: наш снапшот был чист, но вставка упёрлась
	// в exclusion constraint
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}

	uc := newTestUseCase(repo, &fakeRoomRepo{room: &domain.Room{ID: 1, Capacity: 8}}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_RoomNotFound(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{err: roomRepo.ErrRoomNotFound}, now)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_AttendeesOverCapacityIsAllowed(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{}

	uc := newTestUseCase(repo, &fakeRoomRepo{room: &domain.Room{ID: 1, Capacity: 2}}, now)

	req := validRequest()
	req.Attendees = 10

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Attendees)
}

func TestExecute_SelectionErrors(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{room: &domain.Room{ID: 1, Capacity: 8}}, now)

	req := validRequest()
	req.TimeSlots = nil
	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrEmptySelection)

	req = validRequest()
	req.TimeSlots = []types.TimeString{"09:00", "11:00"}
	_, err = uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotsNotAdjacent)

	req = validRequest()
	req.TimeSlots = []types.TimeString{"07:00"}
	_, err = uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotInCatalog)
}

func TestExecute_PastSlotRejected(t *testing.T) {
	now := time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeRoomRepo{room: &domain.Room{ID: 1, Capacity: 8}}, now)

	// Бронирование на сегодня со слотами до полудня
	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotInPast)
}
