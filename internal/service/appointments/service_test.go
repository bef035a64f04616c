package appointments

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/scheduling-service/internal/domain"
	appointmentRepo "github.com/clinicore/scheduling-service/internal/infra/storage/appointment"
	"github.com/clinicore/scheduling-service/internal/service/appointments/models"
	"github.com/clinicore/scheduling-service/pkg/ptr"
)

type fakeAppointmentRepo struct {
	records map[uuid.UUID]*domain.AppointmentRecord
	nextID  int64
}

func newFakeAppointmentRepo(records ...*domain.AppointmentRecord) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{records: make(map[uuid.UUID]*domain.AppointmentRecord), nextID: 100}
	for _, r := range records {
		repo.records[r.PublicID] = r
	}
	return repo
}

func (f *fakeAppointmentRepo) Create(_ context.Context, record *domain.AppointmentRecord) (*domain.AppointmentRecord, error) {
	f.nextID++
	record.ID = f.nextID
	record.CreatedAt = time.Now()
	f.records[record.PublicID] = record
	return record, nil
}

func (f *fakeAppointmentRepo) GetByPublicID(_ context.Context, publicID uuid.UUID) (*domain.AppointmentRecord, error) {
	r, ok := f.records[publicID]
	if !ok {
		return nil, appointmentRepo.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeAppointmentRepo) GetByProviderWithFilter(_ context.Context, filter domain.ProviderAppointmentsFilter) ([]*domain.AppointmentRecord, error) {
	var result []*domain.AppointmentRecord
	for _, r := range f.records {
		if r.ProviderID != filter.ProviderID {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		if filter.PatientName != nil &&
			!strings.Contains(strings.ToLower(r.PatientName), strings.ToLower(*filter.PatientName)) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validRequest() *models.RecordAppointmentRequest {
	return &models.RecordAppointmentRequest{
		ProviderID:      7,
		Date:            "2025-06-02",
		StartTime:       "09:00",
		DurationMinutes: 30,
		Status:          "completed",
		PatientName:     "Anita Shah",
		PatientPhone:    ptr.Ptr("+1-555-0142"),
		Diagnosis:       ptr.Ptr("Seasonal allergy"),
		Prescription:    ptr.Ptr("Cetirizine 10mg"),
		FollowUpDate:    ptr.Ptr("2025-06-16"),
	}
}

func TestRecord(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Record(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "Anita Shah", resp.PatientName)
	assert.Equal(t, "2025-06-02", resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	require.NotNil(t, resp.FollowUpDate)
	assert.Equal(t, "2025-06-16", *resp.FollowUpDate)
	assert.Len(t, repo.records, 1)
}

func TestRecord_DefaultDuration(t *testing.T) {
	repo := newFakeAppointmentRepo()
	svc := NewService(repo, noopLogger{})

	req := validRequest()
	req.DurationMinutes = 0

	resp, err := svc.Record(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.DurationMinutes)
}

func TestRecord_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.RecordAppointmentRequest)
	}{
		{"zero provider", func(r *models.RecordAppointmentRequest) { r.ProviderID = 0 }},
		{"empty patient name", func(r *models.RecordAppointmentRequest) { r.PatientName = "  " }},
		{"bad date", func(r *models.RecordAppointmentRequest) { r.Date = "June 2" }},
		{"bad time", func(r *models.RecordAppointmentRequest) { r.StartTime = "9am" }},
		{"unknown status", func(r *models.RecordAppointmentRequest) { r.Status = "done" }},
		{"bad follow-up date", func(r *models.RecordAppointmentRequest) { r.FollowUpDate = ptr.Ptr("next week") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeAppointmentRepo(), noopLogger{})
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Record(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetProviderHistory_FiltersByStatusAndName(t *testing.T) {
	repo := newFakeAppointmentRepo(
		&domain.AppointmentRecord{PublicID: uuid.New(), ProviderID: 7, PatientName: "Anita Shah", Status: domain.AppointmentCompleted},
		&domain.AppointmentRecord{PublicID: uuid.New(), ProviderID: 7, PatientName: "Boris Ivanov", Status: domain.AppointmentCompleted},
		&domain.AppointmentRecord{PublicID: uuid.New(), ProviderID: 7, PatientName: "Anita Shah", Status: domain.AppointmentNoShow},
		&domain.AppointmentRecord{PublicID: uuid.New(), ProviderID: 9, PatientName: "Anita Shah", Status: domain.AppointmentCompleted},
	)
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetProviderHistory(context.Background(), &models.GetHistoryRequest{
		ProviderID:  7,
		PatientName: ptr.Ptr("anita"),
		Status:      ptr.Ptr("completed"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "Anita Shah", resp.Appointments[0].PatientName)
}

func TestGetProviderHistory_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), noopLogger{})

	_, err := svc.GetProviderHistory(context.Background(), &models.GetHistoryRequest{
		ProviderID: 7,
		Status:     ptr.Ptr("finished"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByPublicID_NotFound(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), noopLogger{})

	_, err := svc.GetByPublicID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
