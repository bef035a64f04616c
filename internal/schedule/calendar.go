package schedule

import (
	"fmt"
	"time"
)

// DaysInWeek количество колонок в календарной сетке
const DaysInWeek = 7

// MonthMatrix строит понедельную матрицу месяца для календарной сетки
// Каждая неделя - ровно 7 ячеек, недели начинаются с понедельника
// Первая неделя дополнена nil слева до дня недели первого числа,
// последняя - nil справа до полных 7 колонок
func MonthMatrix(year int, month time.Month) ([][]*time.Time, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := DaysInMonth(year, month)

	matrix := make([][]*time.Time, 0, 6)
	week := make([]*time.Time, 0, DaysInWeek)

	// Смещение первого числа внутри недели (понедельник = 0)
	offset := ISOWeekday(first) - 1
	for i := 0; i < offset; i++ {
		week = append(week, nil)
	}

	for day := 1; day <= lastDay; day++ {
		if len(week) == DaysInWeek {
			matrix = append(matrix, week)
			week = make([]*time.Time, 0, DaysInWeek)
		}
		d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		week = append(week, &d)
	}

	for len(week) < DaysInWeek {
		week = append(week, nil)
	}
	matrix = append(matrix, week)

	return matrix, nil
}

// DaysInMonth возвращает количество дней в месяце
// День 0 следующего месяца - это последний день текущего
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ISOWeekday возвращает ISO-номер дня недели (понедельник=1 .. воскресенье=7)
// time.Weekday нумерует воскресенье нулём, поэтому оно нормализуется в 7
func ISOWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время, оставляя только дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
