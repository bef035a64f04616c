package schedule

import (
	"time"

	"github.com/clinicore/scheduling-service/internal/domain"
)

// DayCounts счётчики слотов на день для бейджей календарной ячейки
type DayCounts struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Booked    int `json:"booked"`
	Blocked   int `json:"blocked"`
}

// HistoryCounts счётчики записей истории приёмов на день
type HistoryCounts struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	NoShow    int `json:"noShow"`
}

// CountsForDay считает слоты по статусам за указанную дату
// Чистая функция: всегда пересчитывает от исходной коллекции, без кэша
func CountsForDay(date time.Time, slots []*domain.Slot) DayCounts {
	var counts DayCounts

	for _, slot := range slots {
		if !SameDay(slot.Date, date) {
			continue
		}

		counts.Total++
		switch slot.Status {
		case domain.SlotAvailable:
			counts.Available++
		case domain.SlotBooked:
			counts.Booked++
		case domain.SlotBlocked:
			counts.Blocked++
		}
	}

	return counts
}

// HistoryCountsForDay считает записи истории приёмов по статусам за дату
func HistoryCountsForDay(date time.Time, records []*domain.AppointmentRecord) HistoryCounts {
	var counts HistoryCounts

	for _, record := range records {
		if !SameDay(record.Date, date) {
			continue
		}

		counts.Total++
		switch record.Status {
		case domain.AppointmentCompleted:
			counts.Completed++
		case domain.AppointmentCancelled:
			counts.Cancelled++
		case domain.AppointmentNoShow:
			counts.NoShow++
		}
	}

	return counts
}

// SlotsForDay возвращает слоты за дату, сохраняя исходный порядок
func SlotsForDay(date time.Time, slots []*domain.Slot) []*domain.Slot {
	result := make([]*domain.Slot, 0)
	for _, slot := range slots {
		if SameDay(slot.Date, date) {
			result = append(result, slot)
		}
	}
	return result
}
