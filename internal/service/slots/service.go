package slots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/domain"
	slotRepo "github.com/clinicore/scheduling-service/internal/infra/storage/slot"
	"github.com/clinicore/scheduling-service/internal/schedule"
	"github.com/clinicore/scheduling-service/internal/service/slots/models"
	"github.com/clinicore/scheduling-service/pkg/ptr"
	"github.com/clinicore/scheduling-service/pkg/types"
)

// Service сервис для работы со слотами расписания
type Service struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает одиночный слот со статусом available
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("Create: provider=%d, date=%s, time=%s, duration=%d",
		req.ProviderID, req.Date, req.StartTime, req.DurationMinutes)

	if req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.UTC)
	if err != nil {
		s.logger.Warn("Create: invalid date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		s.logger.Warn("Create: invalid startTime=%s: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: invalid start time format, expected HH:MM", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinSlotDurationMinutes || req.DurationMinutes > domain.MaxSlotDurationMinutes {
		return nil, fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	slot := req.ToDomainSlot(date, startTime)
	slot.PublicID = uuid.New()

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("Create: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created slot=%s for provider=%d", created.PublicID, req.ProviderID)
	return models.FromDomainSlot(created), nil
}

// GetByPublicID получает слот по публичному идентификатору
func (s *Service) GetByPublicID(ctx context.Context, slotID uuid.UUID) (*models.SlotResponse, error) {
	s.logger.Info("GetByPublicID: fetching slot=%s", slotID)

	slot, err := s.slotRepo.GetByPublicID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByPublicID: slot=%s not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByPublicID: repository error for slot=%s: %v", slotID, err)
		return nil, fmt.Errorf("%w: GetByPublicID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// GetDaySchedule получает расписание врача на день со счетчиками статусов
// Слоты возвращаются отсортированными по времени начала
func (s *Service) GetDaySchedule(ctx context.Context, req *models.GetDayScheduleRequest) (*models.DayScheduleResponse, error) {
	s.logger.Info("GetDaySchedule: provider=%d, date=%s", req.ProviderID, req.Date.Format(domain.DateFormat))

	if req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	day := schedule.DateOnly(req.Date)
	var slots []*domain.Slot
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		slots, err = s.slotRepo.GetByProviderWithFilter(txCtx, domain.ProviderSlotsFilter{
			ProviderID: req.ProviderID,
			StartDate:  ptr.Ptr(day),
			EndDate:    ptr.Ptr(day),
		})
		return err
	})
	if err != nil {
		s.logger.Error("GetDaySchedule: repository error for provider=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: GetDaySchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDaySchedule: fetched %d slots for provider=%d on %s",
		len(slots), req.ProviderID, day.Format(domain.DateFormat))

	return &models.DayScheduleResponse{
		ProviderID: req.ProviderID,
		Date:       day.Format(domain.DateFormat),
		Slots:      models.FromDomainSlotList(slots),
		Counts:     schedule.CountsForDay(day, slots),
	}, nil
}

// Cancel отменяет запись пациента: слот возвращается в available,
// причина отмены сохраняется в notes слота
func (s *Service) Cancel(ctx context.Context, slotID uuid.UUID, req *models.CancelBookingRequest) (*models.SlotResponse, error) {
	s.logger.Info("Cancel: cancelling booking on slot=%s", slotID)

	reason := strings.TrimSpace(req.Reason)
	notes := strings.TrimSpace(req.Notes)
	if len(reason) > domain.MaxCancelReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancelReasonLength)
	}
	if len(notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	var result *domain.Slot
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := s.getForUpdate(txCtx, slotID)
		if err != nil {
			return err
		}

		if err := schedule.CancelBooking(slot, reason, notes); err != nil {
			if errors.Is(err, schedule.ErrInvalidTransition) {
				return fmt.Errorf("%w: slot is %s", ErrCannotCancel, slot.Status)
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if err := s.slotRepo.Update(txCtx, slot); err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		result = slot
		return nil
	})
	if err != nil {
		s.logWarnOrError("Cancel", slotID, err)
		return nil, err
	}

	s.logger.Info("Cancel: slot=%s released", slotID)
	return models.FromDomainSlot(result), nil
}

// Block блокирует свободный слот (перерыв, личное время врача)
func (s *Service) Block(ctx context.Context, slotID uuid.UUID) (*models.SlotResponse, error) {
	s.logger.Info("Block: blocking slot=%s", slotID)

	result, err := s.transition(ctx, slotID, func(slot *domain.Slot) error {
		if err := schedule.Block(slot); err != nil {
			if errors.Is(err, schedule.ErrInvalidTransition) {
				return fmt.Errorf("%w: slot is %s", ErrCannotBlock, slot.Status)
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logWarnOrError("Block", slotID, err)
		return nil, err
	}

	s.logger.Info("Block: slot=%s blocked", slotID)
	return models.FromDomainSlot(result), nil
}

// Unblock возвращает заблокированный слот в available
func (s *Service) Unblock(ctx context.Context, slotID uuid.UUID) (*models.SlotResponse, error) {
	s.logger.Info("Unblock: unblocking slot=%s", slotID)

	result, err := s.transition(ctx, slotID, func(slot *domain.Slot) error {
		if err := schedule.Unblock(slot); err != nil {
			if errors.Is(err, schedule.ErrInvalidTransition) {
				return fmt.Errorf("%w: slot is %s", ErrCannotUnblock, slot.Status)
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logWarnOrError("Unblock", slotID, err)
		return nil, err
	}

	s.logger.Info("Unblock: slot=%s released", slotID)
	return models.FromDomainSlot(result), nil
}

// Delete физически удаляет слот
// Слот с активной записью удалить нельзя - сначала отмена записи
func (s *Service) Delete(ctx context.Context, slotID uuid.UUID) error {
	s.logger.Info("Delete: deleting slot=%s", slotID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := s.getForUpdate(txCtx, slotID)
		if err != nil {
			return err
		}

		if err := schedule.EnsureDeletable(slot); err != nil {
			return fmt.Errorf("%w: slot is %s", ErrCannotDelete, slot.Status)
		}

		if err := s.slotRepo.Delete(txCtx, slot.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logWarnOrError("Delete", slotID, err)
		return err
	}

	s.logger.Info("Delete: slot=%s deleted", slotID)
	return nil
}

// Вспомогательные методы

// transition выполняет переход статуса слота в сериализуемой транзакции
func (s *Service) transition(ctx context.Context, slotID uuid.UUID, apply func(*domain.Slot) error) (*domain.Slot, error) {
	var result *domain.Slot
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := s.getForUpdate(txCtx, slotID)
		if err != nil {
			return err
		}

		if err := apply(slot); err != nil {
			return err
		}

		if err := s.slotRepo.Update(txCtx, slot); err != nil {
			return fmt.Errorf("%w: transition - repository error: %v", ErrInternal, err)
		}

		result = slot
		return nil
	})
	return result, err
}

func (s *Service) getForUpdate(ctx context.Context, slotID uuid.UUID) (*domain.Slot, error) {
	slot, err := s.slotRepo.GetByPublicID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}
	return slot, nil
}

func (s *Service) logWarnOrError(op string, slotID uuid.UUID, err error) {
	if errors.Is(err, ErrInternal) {
		s.logger.Error("%s: slot=%s: %v", op, slotID, err)
		return
	}
	s.logger.Warn("%s: slot=%s: %v", op, slotID, err)
}
