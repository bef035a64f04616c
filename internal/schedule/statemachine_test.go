package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/scheduling-service/internal/domain"
)

func newAvailableSlot() *domain.Slot {
	return &domain.Slot{
		PublicID:        uuid.New(),
		ProviderID:      1,
		Date:            time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		DurationMinutes: 30,
		Status:          domain.SlotAvailable,
	}
}

func janeDoe() domain.PatientInfo {
	return domain.PatientInfo{Name: "Jane Doe", Phone: "+1 (555) 123-4567", Reason: "Regular checkup"}
}

// Инвариант: (status == booked) <=> (patient != nil)
func assertPatientInvariant(t *testing.T, slot *domain.Slot) {
	t.Helper()
	if slot.Status == domain.SlotBooked {
		assert.NotNil(t, slot.Patient)
	} else {
		assert.Nil(t, slot.Patient)
	}
}

func TestBook(t *testing.T) {
	slot := newAvailableSlot()

	require.NoError(t, Book(slot, janeDoe()))
	assert.Equal(t, domain.SlotBooked, slot.Status)
	require.NotNil(t, slot.Patient)
	assert.Equal(t, "Jane Doe", slot.Patient.Name)
	assertPatientInvariant(t, slot)
}

func TestBook_BlockedSlotRejected(t *testing.T) {
	slot := newAvailableSlot()
	require.NoError(t, Block(slot))

	err := Book(slot, janeDoe())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assertPatientInvariant(t, slot)
}

func TestBook_AlreadyBookedRejected(t *testing.T) {
	slot := newAvailableSlot()
	require.NoError(t, Book(slot, janeDoe()))

	err := Book(slot, domain.PatientInfo{Name: "John Smith"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, "Jane Doe", slot.Patient.Name)
}

func TestCancelBooking(t *testing.T) {
	slot := newAvailableSlot()
	require.NoError(t, Book(slot, janeDoe()))

	require.NoError(t, CancelBooking(slot, "Patient request", "called in the morning"))
	assert.Equal(t, domain.SlotAvailable, slot.Status)
	assert.Nil(t, slot.Patient)
	require.NotNil(t, slot.Notes)
	assert.Equal(t, "Cancelled: Patient request - called in the morning", *slot.Notes)
	assertPatientInvariant(t, slot)
}

func TestCancelBooking_AppendsToExistingNotes(t *testing.T) {
	slot := newAvailableSlot()
	existing := "First-time patient"
	slot.Notes = &existing
	require.NoError(t, Book(slot, janeDoe()))

	require.NoError(t, CancelBooking(slot, "No show", ""))
	require.NotNil(t, slot.Notes)
	assert.Equal(t, "First-time patient (Cancelled: No show)", *slot.Notes)
}

func TestCancelBooking_NotBookedRejected(t *testing.T) {
	slot := newAvailableSlot()
	err := CancelBooking(slot, "reason", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestBlockUnblockCycle(t *testing.T) {
	slot := newAvailableSlot()

	require.NoError(t, Block(slot))
	assert.Equal(t, domain.SlotBlocked, slot.Status)
	assertPatientInvariant(t, slot)

	require.NoError(t, Unblock(slot))
	assert.Equal(t, domain.SlotAvailable, slot.Status)
	assertPatientInvariant(t, slot)
}

func TestBlock_BookedSlotRejected(t *testing.T) {
	slot := newAvailableSlot()
	require.NoError(t, Book(slot, janeDoe()))

	assert.ErrorIs(t, Block(slot), ErrInvalidTransition)
	assert.Equal(t, domain.SlotBooked, slot.Status)
}

func TestUnblock_AvailableSlotRejected(t *testing.T) {
	slot := newAvailableSlot()
	assert.ErrorIs(t, Unblock(slot), ErrInvalidTransition)
}

func TestReleaseForReschedule(t *testing.T) {
	slot := newAvailableSlot()
	require.NoError(t, Book(slot, janeDoe()))

	require.NoError(t, ReleaseForReschedule(slot))
	assert.Equal(t, domain.SlotAvailable, slot.Status)
	assert.Nil(t, slot.Patient)
	require.NotNil(t, slot.Notes)
	assert.Contains(t, *slot.Notes, CancelledRescheduledNote)
}

func TestReleaseForReschedule_NotBookedRejected(t *testing.T) {
	slot := newAvailableSlot()
	assert.ErrorIs(t, ReleaseForReschedule(slot), ErrInvalidTransition)
}

func TestEnsureDeletable(t *testing.T) {
	slot := newAvailableSlot()
	assert.NoError(t, EnsureDeletable(slot))

	require.NoError(t, Block(slot))
	assert.NoError(t, EnsureDeletable(slot))

	require.NoError(t, Unblock(slot))
	require.NoError(t, Book(slot, janeDoe()))
	assert.ErrorIs(t, EnsureDeletable(slot), ErrSlotNotDeletable)
}

func TestCancellationNote(t *testing.T) {
	assert.Equal(t, "Cancelled: flu - rest at home", CancellationNote("flu", "rest at home"))
	assert.Equal(t, "Cancelled: flu", CancellationNote("flu", ""))
	assert.Equal(t, "Cancelled: rest at home", CancellationNote("", "rest at home"))
	assert.Equal(t, "Cancelled", CancellationNote("", ""))
}

func TestRescheduledFromNote(t *testing.T) {
	slot := newAvailableSlot()
	assert.Equal(t, "Rescheduled from 2025-01-06 09:00", RescheduledFromNote(slot))
}
