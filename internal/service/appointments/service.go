package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/domain"
	appointmentRepo "github.com/clinicore/scheduling-service/internal/infra/storage/appointment"
	"github.com/clinicore/scheduling-service/internal/service/appointments/models"
	"github.com/clinicore/scheduling-service/pkg/types"
)

// Service сервис истории приемов
// Записи истории неизменяемы после создания
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса истории приемов
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Record фиксирует исход приема в истории
func (s *Service) Record(ctx context.Context, req *models.RecordAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Record: provider=%d, date=%s, time=%s, status=%s",
		req.ProviderID, req.Date, req.StartTime, req.Status)

	record, err := s.buildRecord(req)
	if err != nil {
		s.logger.Warn("Record: validation failed: %v", err)
		return nil, err
	}

	created, err := s.appointmentRepo.Create(ctx, record)
	if err != nil {
		s.logger.Error("Record: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Record - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Record: created record=%s for provider=%d", created.PublicID, req.ProviderID)
	return models.FromDomainAppointment(created), nil
}

// GetByPublicID получает запись истории по публичному идентификатору
func (s *Service) GetByPublicID(ctx context.Context, recordID uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByPublicID: fetching record=%s", recordID)

	record, err := s.appointmentRepo.GetByPublicID(ctx, recordID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrRecordNotFound) {
			s.logger.Warn("GetByPublicID: record=%s not found", recordID)
			return nil, ErrRecordNotFound
		}
		s.logger.Error("GetByPublicID: repository error for record=%s: %v", recordID, err)
		return nil, fmt.Errorf("%w: GetByPublicID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(record), nil
}

// GetProviderHistory получает историю приемов врача
// Поддерживает фильтрацию по периоду, статусу и подстроке имени пациента
func (s *Service) GetProviderHistory(ctx context.Context, req *models.GetHistoryRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetProviderHistory: provider=%d", req.ProviderID)

	if req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetProviderHistory: invalid filter for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	records, err := s.appointmentRepo.GetByProviderWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetProviderHistory: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetProviderHistory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderHistory: fetched %d records for provider=%d", len(records), req.ProviderID)
	return models.FromDomainAppointmentList(records), nil
}

// buildRecord валидирует запрос и собирает domain модель записи
func (s *Service) buildRecord(req *models.RecordAppointmentRequest) (*domain.AppointmentRecord, error) {
	if req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.PatientName)
	if name == "" {
		return nil, fmt.Errorf("%w: patient name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxPatientNameLength {
		return nil, fmt.Errorf("%w: patient name exceeds %d characters", ErrInvalidInput, domain.MaxPatientNameLength)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time format, expected HH:MM", ErrInvalidInput)
	}

	status, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	record := &domain.AppointmentRecord{
		PublicID:        uuid.New(),
		ProviderID:      req.ProviderID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: req.DurationMinutes,
		Status:          status,
		PatientName:     name,
		PatientPhone:    req.PatientPhone,
		Reason:          req.Reason,
		Diagnosis:       req.Diagnosis,
		Prescription:    req.Prescription,
	}

	if record.DurationMinutes == 0 {
		record.DurationMinutes = domain.DefaultSlotDurationMinutes
	}

	if req.FollowUpDate != nil && *req.FollowUpDate != "" {
		followUp, err := time.ParseInLocation(domain.DateFormat, *req.FollowUpDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid follow-up date format, expected YYYY-MM-DD", ErrInvalidInput)
		}
		record.FollowUpDate = &followUp
	}

	return record, nil
}
