package get_calendar

import (
	"github.com/clinicore/scheduling-service/internal/domain"
	"github.com/clinicore/scheduling-service/internal/schedule"
	getCalendar "github.com/clinicore/scheduling-service/internal/usecase/get_calendar"
)

// CalendarDayResponse одна ячейка календарной сетки
// Выравнивающие ячейки начала и конца месяца передаются как null
type CalendarDayResponse struct {
	Date   string             `json:"date"`
	Counts schedule.DayCounts `json:"counts"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	ProviderID int64                    `json:"providerId"`
	Year       int                      `json:"year"`
	Month      int                      `json:"month"`
	Weeks      [][]*CalendarDayResponse `json:"weeks"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	weeks := make([][]*CalendarDayResponse, 0, len(resp.Weeks))
	for _, week := range resp.Weeks {
		days := make([]*CalendarDayResponse, 0, len(week))
		for _, day := range week {
			if day.Padding {
				days = append(days, nil)
				continue
			}
			days = append(days, &CalendarDayResponse{
				Date:   day.Date.Format(domain.DateFormat),
				Counts: day.Counts,
			})
		}
		weeks = append(weeks, days)
	}

	return &CalendarResponse{
		ProviderID: resp.ProviderID,
		Year:       resp.Year,
		Month:      int(resp.Month),
		Weeks:      weeks,
	}
}
