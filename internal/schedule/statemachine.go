package schedule

import (
	"fmt"

	"github.com/clinicore/scheduling-service/internal/domain"
)

// CancelledRescheduledNote аннотация, добавляемая исходному слоту при переносе записи
const CancelledRescheduledNote = "Cancelled - Rescheduled"

// Переходы статусов слота. Каждый переход, выводящий слот из booked,
// обнуляет patient; каждый переход в booked - заполняет его.

// Book переводит слот available -> booked и прикрепляет данные пациента
func Book(slot *domain.Slot, patient domain.PatientInfo) error {
	if slot.Status != domain.SlotAvailable {
		return fmt.Errorf("%w: cannot book a %s slot", ErrInvalidTransition, slot.Status)
	}

	slot.Status = domain.SlotBooked
	slot.Patient = &patient
	return nil
}

// CancelBooking переводит слот booked -> available, очищает данные пациента
// и добавляет в notes текстовую аннотацию об отмене
func CancelBooking(slot *domain.Slot, reason, notes string) error {
	if slot.Status != domain.SlotBooked {
		return fmt.Errorf("%w: cannot cancel a %s slot", ErrInvalidTransition, slot.Status)
	}

	slot.Status = domain.SlotAvailable
	slot.Patient = nil
	slot.AppendNote(CancellationNote(reason, notes))
	return nil
}

// Block переводит слот available -> blocked
func Block(slot *domain.Slot) error {
	if slot.Status != domain.SlotAvailable {
		return fmt.Errorf("%w: cannot block a %s slot", ErrInvalidTransition, slot.Status)
	}

	slot.Status = domain.SlotBlocked
	slot.Patient = nil
	return nil
}

// Unblock переводит слот blocked -> available
func Unblock(slot *domain.Slot) error {
	if slot.Status != domain.SlotBlocked {
		return fmt.Errorf("%w: cannot unblock a %s slot", ErrInvalidTransition, slot.Status)
	}

	slot.Status = domain.SlotAvailable
	return nil
}

// ReleaseForReschedule освобождает исходный слот при переносе записи:
// booked -> available с аннотацией об отмене из-за переноса
func ReleaseForReschedule(slot *domain.Slot) error {
	if slot.Status != domain.SlotBooked {
		return fmt.Errorf("%w: cannot reschedule a %s slot", ErrInvalidTransition, slot.Status)
	}

	slot.Status = domain.SlotAvailable
	slot.Patient = nil
	slot.AppendNote(CancelledRescheduledNote)
	return nil
}

// EnsureDeletable проверяет, что слот можно физически удалить
// Слот с активной записью удалить нельзя - сначала отмена
func EnsureDeletable(slot *domain.Slot) error {
	if !slot.CanBeDeleted() {
		return ErrSlotNotDeletable
	}
	return nil
}

// CancellationNote формирует текст аннотации об отмене
// Формат повторяет исторические notes: "Cancelled: <reason> - <notes>"
func CancellationNote(reason, notes string) string {
	switch {
	case reason != "" && notes != "":
		return fmt.Sprintf("Cancelled: %s - %s", reason, notes)
	case reason != "":
		return fmt.Sprintf("Cancelled: %s", reason)
	case notes != "":
		return fmt.Sprintf("Cancelled: %s", notes)
	default:
		return "Cancelled"
	}
}

// RescheduledFromNote формирует аннотацию для нового слота,
// ссылающуюся на исходные дату и время записи
func RescheduledFromNote(origin *domain.Slot) string {
	return fmt.Sprintf("Rescheduled from %s %s", origin.Date.Format(domain.DateFormat), origin.StartTime)
}
