package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/scheduling-service/internal/domain"
	slotRepo "github.com/clinicore/scheduling-service/internal/infra/storage/slot"
	"github.com/clinicore/scheduling-service/pkg/ptr"
	"github.com/clinicore/scheduling-service/pkg/types"
)

type fakeSlotRepo struct {
	slots  map[uuid.UUID]*domain.Slot
	nextID int64
}

func newFakeSlotRepo(slots ...*domain.Slot) *fakeSlotRepo {
	repo := &fakeSlotRepo{slots: make(map[uuid.UUID]*domain.Slot), nextID: 100}
	for _, s := range slots {
		repo.slots[s.PublicID] = s
	}
	return repo
}

func (f *fakeSlotRepo) GetByPublicID(_ context.Context, publicID uuid.UUID) (*domain.Slot, error) {
	s, ok := f.slots[publicID]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	f.nextID++
	slot.ID = f.nextID
	f.slots[slot.PublicID] = slot
	return slot, nil
}

func (f *fakeSlotRepo) Update(_ context.Context, slot *domain.Slot) error {
	f.slots[slot.PublicID] = slot
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func bookedSlot() *domain.Slot {
	return &domain.Slot{
		ID:              1,
		PublicID:        uuid.New(),
		ProviderID:      7,
		Date:            time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("09:00"),
		DurationMinutes: 30,
		Status:          domain.SlotBooked,
		Patient:         &domain.PatientInfo{Name: "Anita Shah", Phone: "+1-555-0142", Reason: "Follow-up"},
		Notes:           ptr.Ptr("First visit notes"),
	}
}

func TestExecute_MovesBookingToNewSlot(t *testing.T) {
	origin := bookedSlot()
	repo := newFakeSlotRepo(origin)
	uc := NewUseCase(repo, &fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:       origin.PublicID,
		NewDate:      time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
		NewStartTime: types.TimeString("14:00"),
	})
	require.NoError(t, err)

	// Исходный слот освобожден с аннотацией о переносе
	assert.Equal(t, domain.SlotAvailable, resp.OriginSlot.Status)
	assert.Nil(t, resp.OriginSlot.Patient)
	require.NotNil(t, resp.OriginSlot.Notes)
	assert.Equal(t, "First visit notes (Cancelled - Rescheduled)", *resp.OriginSlot.Notes)

	// Новый слот занят тем же пациентом
	newSlot := resp.NewSlot
	assert.Equal(t, domain.SlotBooked, newSlot.Status)
	require.NotNil(t, newSlot.Patient)
	assert.Equal(t, "Anita Shah", newSlot.Patient.Name)
	assert.Equal(t, "+1-555-0142", newSlot.Patient.Phone)
	assert.Equal(t, int64(7), newSlot.ProviderID)
	assert.Equal(t, types.TimeString("14:00"), newSlot.StartTime)
	assert.Equal(t, 30, newSlot.DurationMinutes)
	require.NotNil(t, newSlot.Notes)
	assert.Equal(t, "Rescheduled from 2025-06-02 09:00", *newSlot.Notes)
	assert.NotEqual(t, origin.PublicID, newSlot.PublicID)

	// Оба слота сохранены
	assert.Len(t, repo.slots, 2)
}

func TestExecute_InheritsDurationUnlessOverridden(t *testing.T) {
	origin := bookedSlot()
	origin.DurationMinutes = 45
	repo := newFakeSlotRepo(origin)
	uc := NewUseCase(repo, &fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:             origin.PublicID,
		NewDate:            time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
		NewStartTime:       types.TimeString("14:00"),
		NewDurationMinutes: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.NewSlot.DurationMinutes)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := NewUseCase(newFakeSlotRepo(), &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:       uuid.New(),
		NewDate:      time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
		NewStartTime: types.TimeString("14:00"),
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotNotBooked(t *testing.T) {
	origin := bookedSlot()
	origin.Status = domain.SlotAvailable
	origin.Patient = nil
	repo := newFakeSlotRepo(origin)
	uc := NewUseCase(repo, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:       origin.PublicID,
		NewDate:      time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
		NewStartTime: types.TimeString("14:00"),
	})
	assert.ErrorIs(t, err, ErrSlotNotBooked)

	// Исходный слот не изменен
	assert.Len(t, repo.slots, 1)
}

func TestExecute_ValidationErrors(t *testing.T) {
	origin := bookedSlot()

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"nil slot id", func(r *Request) { r.SlotID = uuid.Nil }},
		{"zero date", func(r *Request) { r.NewDate = time.Time{} }},
		{"empty time", func(r *Request) { r.NewStartTime = "" }},
		{"malformed time", func(r *Request) { r.NewStartTime = "25:61" }},
		{"duration out of range", func(r *Request) { r.NewDurationMinutes = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(newFakeSlotRepo(origin), &fakeTxManager{}, noopLogger{})

			req := &Request{
				SlotID:       origin.PublicID,
				NewDate:      time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
				NewStartTime: types.TimeString("14:00"),
			}
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
