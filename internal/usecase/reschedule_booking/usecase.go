package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/clinicore/scheduling-service/internal/domain"
	slotRepo "github.com/clinicore/scheduling-service/internal/infra/storage/slot"
	"github.com/clinicore/scheduling-service/internal/schedule"
	"github.com/clinicore/scheduling-service/pkg/ptr"
)

// UseCase use case переноса существующей записи на другие дату и время
type UseCase struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case переноса записи
// Исходный слот освобождается с аннотацией, запись пациента переносится
// в новый слот. Обе операции выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: slot=%s, newDate=%s, newTime=%s",
		req.SlotID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	var (
		origin  *domain.Slot
		created *domain.Slot
	)

	// 2. Освобождаем исходный слот и создаем новый в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := uc.slotRepo.GetByPublicID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !slot.IsBooked() {
			return fmt.Errorf("%w: slot is %s", ErrSlotNotBooked, slot.Status)
		}

		// Данные пациента снимаем до освобождения исходного слота
		patient := *slot.Patient

		duration := req.NewDurationMinutes
		if duration == 0 {
			duration = slot.DurationMinutes
		}

		newSlot := &domain.Slot{
			PublicID:        uuid.New(),
			ProviderID:      slot.ProviderID,
			Date:            schedule.DateOnly(req.NewDate),
			StartTime:       req.NewStartTime,
			DurationMinutes: duration,
			Status:          domain.SlotBooked,
			Patient:         &patient,
			Notes:           ptr.Ptr(schedule.RescheduledFromNote(slot)),
		}

		if err := schedule.ReleaseForReschedule(slot); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if err := uc.slotRepo.Update(txCtx, slot); err != nil {
			return fmt.Errorf("%w: failed to release origin slot: %v", ErrInternal, err)
		}

		stored, err := uc.slotRepo.Create(txCtx, newSlot)
		if err != nil {
			return fmt.Errorf("%w: failed to create new slot: %v", ErrInternal, err)
		}

		origin = slot
		created = stored
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) || errors.Is(err, ErrSlotNotBooked) {
			uc.logger.Warn("RescheduleBooking: slot=%s: %v", req.SlotID, err)
		} else {
			uc.logger.Error("RescheduleBooking: slot=%s: %v", req.SlotID, err)
		}
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: slot=%s moved to %s %s as slot=%s",
		req.SlotID, created.Date.Format(domain.DateFormat), created.StartTime, created.PublicID)

	return &Response{OriginSlot: origin, NewSlot: created}, nil
}
