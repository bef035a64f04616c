package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/pkg/types"
)

// AppointmentStatus represents the outcome of a past encounter
type AppointmentStatus string

const (
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// AppointmentRecord is an immutable-after-creation record of a past encounter
// Created when an appointment is finalized; never mutated afterwards
type AppointmentRecord struct {
	ID              int64
	PublicID        uuid.UUID
	ProviderID      int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Patient snapshot at finalization time
	PatientName  string
	PatientPhone *string
	Reason       *string

	Diagnosis    *string
	Prescription *string
	FollowUpDate *time.Time

	CreatedAt time.Time
}

// IsCompleted returns true if the encounter actually took place
func (r *AppointmentRecord) IsCompleted() bool {
	return r.Status == AppointmentCompleted
}

// HasFollowUp returns true if a follow-up visit was scheduled
func (r *AppointmentRecord) HasFollowUp() bool {
	return r.FollowUpDate != nil
}

// ProviderAppointmentsFilter filters a provider's appointment history on read
type ProviderAppointmentsFilter struct {
	ProviderID  int64              // required
	PatientName *string            // substring match (optional)
	StartDate   *time.Time         // period start (optional)
	EndDate     *time.Time         // period end (optional)
	Status      *AppointmentStatus // filter by status (optional)
}
