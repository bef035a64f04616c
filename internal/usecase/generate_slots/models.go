package generate_slots

import (
	"time"

	"github.com/clinicore/scheduling-service/pkg/types"
)

// Request модель запроса на массовую генерацию слотов
// Нулевые StartTime/EndTime/SlotDurationMinutes и nil BreakMinutes
// заполняются из настроек расписания врача (или дефолтов)
type Request struct {
	ProviderID          int64
	StartDate           time.Time
	EndDate             time.Time
	StartTime           types.TimeString
	EndTime             types.TimeString
	SlotDurationMinutes int
	BreakMinutes        *int

	// Weekdays ISO-номера дней недели (понедельник=1 .. воскресенье=7)
	Weekdays []int
}

// Response модель ответа массовой генерации
type Response struct {
	ProviderID   int64
	StartDate    time.Time
	EndDate      time.Time
	SlotsCreated int
	DaysCovered  int
}
