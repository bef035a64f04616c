package schedule

import (
	"errors"
	"fmt"

	"github.com/clinicore/scheduling-service/pkg/types"
)

// GenerateTimeSlots генерирует упорядоченный список времён начала слотов
// Начинает с startTime и двигается с шагом durationMinutes + breakMinutes
// Верхняя граница исключается: слот, начинающийся в endTime или позже, не эмитится
// Детерминированная чистая функция - безопасно вызывать повторно для preview и commit
func GenerateTimeSlots(startTime, endTime types.TimeString, durationMinutes, breakMinutes int) ([]types.TimeString, error) {
	if err := startTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidRange, err)
	}
	if err := endTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: end time: %v", ErrInvalidRange, err)
	}
	if !startTime.IsBefore(endTime) {
		return nil, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidRange, startTime, endTime)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive, got %d", ErrInvalidDuration, durationMinutes)
	}
	if breakMinutes < 0 {
		return nil, fmt.Errorf("%w: break must be non-negative, got %d", ErrInvalidDuration, breakMinutes)
	}

	step := durationMinutes + breakMinutes
	slots := make([]types.TimeString, 0)

	current := startTime
	for current.IsBefore(endTime) {
		slots = append(slots, current)

		next, err := current.AddMinutes(step)
		if err != nil {
			// Вышли за пределы суток - генерация окончена
			if errors.Is(err, types.ErrTimeOverflow) {
				break
			}
			return nil, err
		}
		current = next
	}

	return slots, nil
}
