package get_calendar

import (
	"time"

	"github.com/clinicore/scheduling-service/internal/schedule"
)

// Request модель запроса месячного календаря врача
type Request struct {
	ProviderID int64
	Year       int
	Month      time.Month
}

// Day одна ячейка календарной сетки
// Nil-ячейки матрицы (выравнивание недель) в ответе представлены Padding=true
type Day struct {
	Date    time.Time
	Padding bool
	Counts  schedule.DayCounts
}

// Response модель ответа с календарной сеткой месяца
// Weeks - полные недели с понедельника, включая выравнивающие ячейки
type Response struct {
	ProviderID int64
	Year       int
	Month      time.Month
	Weeks      [][]Day
}
