package book_slot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/scheduling-service/internal/domain"
	slotRepo "github.com/clinicore/scheduling-service/internal/infra/storage/slot"
	"github.com/clinicore/scheduling-service/pkg/types"
)

type fakeSlotRepo struct {
	slots   map[uuid.UUID]*domain.Slot
	updated *domain.Slot
}

func newFakeSlotRepo(slots ...*domain.Slot) *fakeSlotRepo {
	repo := &fakeSlotRepo{slots: make(map[uuid.UUID]*domain.Slot)}
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

func (f *fakeSlotRepo) Update(_ context.Context, slot *domain.Slot) error {
	f.slots[slot.PublicID] = slot
	f.updated = slot
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

func availableSlot() *domain.Slot {
	return &domain.Slot{
		ID:              1,
		PublicID:        uuid.New(),
		ProviderID:      7,
		Date:            time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("09:00"),
		DurationMinutes: 30,
		Status:          domain.SlotAvailable,
	}
}

func TestExecute_BooksAvailableSlot(t *testing.T) {
	slot := availableSlot()
	repo := newFakeSlotRepo(slot)
	uc := NewUseCase(repo, &fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SlotID:       slot.PublicID,
		PatientName:  "  Anita Shah ",
		PatientPhone: "+1-555-0142",
		Reason:       "Annual checkup",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotBooked, resp.Slot.Status)
	require.NotNil(t, resp.Slot.Patient)
	assert.Equal(t, "Anita Shah", resp.Slot.Patient.Name)
	assert.Equal(t, "+1-555-0142", resp.Slot.Patient.Phone)
	assert.Equal(t, "Annual checkup", resp.Slot.Patient.Reason)
	require.NotNil(t, repo.updated)
	assert.Equal(t, domain.SlotBooked, repo.updated.Status)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc := NewUseCase(newFakeSlotRepo(), &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:       uuid.New(),
		PatientName:  "Anita Shah",
		PatientPhone: "+1-555-0142",
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	slot := availableSlot()
	slot.Status = domain.SlotBooked
	slot.Patient = &domain.PatientInfo{Name: "First Patient", Phone: "+1-555-0001"}
	repo := newFakeSlotRepo(slot)
	uc := NewUseCase(repo, &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:       slot.PublicID,
		PatientName:  "Anita Shah",
		PatientPhone: "+1-555-0142",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Исходная запись не затронута
	stored := repo.slots[slot.PublicID]
	assert.Equal(t, "First Patient", stored.Patient.Name)
}

func TestExecute_SlotBlocked(t *testing.T) {
	slot := availableSlot()
	slot.Status = domain.SlotBlocked
	uc := NewUseCase(newFakeSlotRepo(slot), &fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotID:       slot.PublicID,
		PatientName:  "Anita Shah",
		PatientPhone: "+1-555-0142",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	slot := availableSlot()

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"nil slot id", func(r *Request) { r.SlotID = uuid.Nil }},
		{"empty name", func(r *Request) { r.PatientName = "   " }},
		{"empty phone", func(r *Request) { r.PatientPhone = "" }},
		{"name too long", func(r *Request) { r.PatientName = strings.Repeat("x", domain.MaxPatientNameLength+1) }},
		{"phone too long", func(r *Request) { r.PatientPhone = strings.Repeat("5", domain.MaxPatientPhoneLength+1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(newFakeSlotRepo(slot), &fakeTxManager{}, noopLogger{})

			req := &Request{
				SlotID:       slot.PublicID,
				PatientName:  "Anita Shah",
				PatientPhone: "+1-555-0142",
			}
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
