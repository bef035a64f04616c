package schedule

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало диапазона не раньше конца
	// (время начала >= времени конца или дата начала > даты конца)
	ErrInvalidRange = errors.New("schedule: invalid range")

	// ErrInvalidDuration возвращается при недопустимой длительности слота или перерыва
	ErrInvalidDuration = errors.New("schedule: invalid duration")

	// ErrInvalidMonth возвращается при некорректном номере месяца
	ErrInvalidMonth = errors.New("schedule: invalid month")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса слота
	ErrInvalidTransition = errors.New("schedule: invalid slot status transition")

	// ErrSlotNotDeletable возвращается при попытке удалить слот с активной записью
	ErrSlotNotDeletable = errors.New("schedule: booked slot cannot be deleted, cancel it first")
)
