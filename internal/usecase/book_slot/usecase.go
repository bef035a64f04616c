package book_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/clinicore/scheduling-service/internal/domain"
	slotRepo "github.com/clinicore/scheduling-service/internal/infra/storage/slot"
	"github.com/clinicore/scheduling-service/internal/schedule"
)

// UseCase use case бронирования слота пациентом
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

// Execute выполняет use case бронирования слота
// Использует сериализуемую транзакцию для предотвращения двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slot=%s, patient=%s", req.SlotID, req.PatientName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Slot

	// 2. Читаем и бронируем слот в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := uc.slotRepo.GetByPublicID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		patient := domain.PatientInfo{
			Name:   strings.TrimSpace(req.PatientName),
			Phone:  strings.TrimSpace(req.PatientPhone),
			Reason: strings.TrimSpace(req.Reason),
		}

		if err := schedule.Book(slot, patient); err != nil {
			if errors.Is(err, schedule.ErrInvalidTransition) {
				return fmt.Errorf("%w: slot is %s", ErrSlotNotAvailable, slot.Status)
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		if err := uc.slotRepo.Update(txCtx, slot); err != nil {
			return fmt.Errorf("%w: failed to update slot: %v", ErrInternal, err)
		}

		result = slot
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) || errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("BookSlot: slot=%s: %v", req.SlotID, err)
		} else {
			uc.logger.Error("BookSlot: slot=%s: %v", req.SlotID, err)
		}
		return nil, err
	}

	uc.logger.Info("BookSlot: slot=%s booked for %s", req.SlotID, result.Patient.Name)
	return &Response{Slot: result}, nil
}
