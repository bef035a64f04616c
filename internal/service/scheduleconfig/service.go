package scheduleconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicore/scheduling-service/internal/domain"
	configRepo "github.com/clinicore/scheduling-service/internal/infra/storage/scheduleconfig"
	"github.com/clinicore/scheduling-service/internal/service/scheduleconfig/models"
	"github.com/clinicore/scheduling-service/pkg/types"
)

// Service сервис настроек расписания врача
// Настройки задают дефолты массовой генерации слотов
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса настроек расписания
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Get получает настройки расписания врача
// Если врач еще не сохранял настройки, возвращаются общие дефолты
func (s *Service) Get(ctx context.Context, providerID int64) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching schedule config for provider=%d", providerID)

	if providerID <= 0 {
		return nil, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	config, err := s.configRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("Get: no stored config for provider=%d, returning defaults", providerID)
			return models.FromDomainConfig(domain.DefaultScheduleConfig(providerID), true), nil
		}
		s.logger.Error("Get: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(config, false), nil
}

// Update сохраняет настройки расписания врача
// Создает настройки при первом сохранении, иначе перезаписывает
func (s *Service) Update(ctx context.Context, providerID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating schedule config for provider=%d", providerID)

	if providerID <= 0 {
		return nil, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if err := s.validateConfig(req); err != nil {
		s.logger.Warn("Update: validation failed for provider=%d: %v", providerID, err)
		return nil, err
	}

	saved, err := s.configRepo.Upsert(ctx, req.ToDomainConfig(providerID))
	if err != nil {
		s.logger.Error("Update: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: saved schedule config for provider=%d", providerID)
	return models.FromDomainConfig(saved, false), nil
}

// validateConfig валидирует настройки расписания
func (s *Service) validateConfig(req *models.UpdateConfigRequest) error {
	if req.SlotDurationMinutes < domain.MinSlotDurationMinutes || req.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if req.BreakMinutes < domain.MinBreakMinutes || req.BreakMinutes > domain.MaxBreakMinutes {
		return fmt.Errorf("%w: break must be between %d and %d minutes",
			ErrInvalidInput, domain.MinBreakMinutes, domain.MaxBreakMinutes)
	}

	start, err := types.NewTimeStringFromString(req.DayStartTime)
	if err != nil {
		return fmt.Errorf("%w: invalid day start time format, expected HH:MM", ErrInvalidInput)
	}
	end, err := types.NewTimeStringFromString(req.DayEndTime)
	if err != nil {
		return fmt.Errorf("%w: invalid day end time format, expected HH:MM", ErrInvalidInput)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: day start time %s must be before day end time %s", ErrInvalidInput, start, end)
	}

	return nil
}
