package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/pkg/types"
)

// SlotStatus represents the status of a calendar slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
)

// PatientInfo holds the patient details attached to a booked slot
// Owned by the slot while it is booked, cleared on cancellation
type PatientInfo struct {
	Name   string
	Phone  string
	Reason string
}

// Slot represents a bookable unit of a provider's calendar
type Slot struct {
	ID              int64
	PublicID        uuid.UUID
	ProviderID      int64
	Date            time.Time // calendar date, time part is always midnight
	StartTime       types.TimeString
	DurationMinutes int
	Status          SlotStatus

	// Patient is non-nil if and only if Status == SlotBooked
	Patient *PatientInfo

	// Notes accumulates free-text audit annotations (cancellations, reschedules)
	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the slot can be booked or blocked
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// IsBooked returns true if the slot carries an active booking
func (s *Slot) IsBooked() bool {
	return s.Status == SlotBooked
}

// IsBlocked returns true if the slot is blocked by the provider
func (s *Slot) IsBlocked() bool {
	return s.Status == SlotBlocked
}

// CanBeDeleted returns true if the slot may be hard-deleted
// A booked slot with an active patient must be cancelled first
func (s *Slot) CanBeDeleted() bool {
	return s.Status != SlotBooked
}

// EndTime returns the time the slot ends at
func (s *Slot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}

// AppendNote appends an audit annotation to the slot's notes
// Existing notes are kept, the new annotation is wrapped in parentheses
func (s *Slot) AppendNote(note string) {
	if s.Notes == nil || *s.Notes == "" {
		s.Notes = &note
		return
	}
	combined := *s.Notes + " (" + note + ")"
	s.Notes = &combined
}

// ProviderSlotsFilter filters a provider's slots on read
type ProviderSlotsFilter struct {
	ProviderID int64       // required
	StartDate  *time.Time  // period start (optional)
	EndDate    *time.Time  // period end (optional)
	Status     *SlotStatus // filter by status (optional)
}
