package domain

// Default schedule configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultBreakMinutes        = 0
	DefaultDayStartTime        = "09:00"
	DefaultDayEndTime          = "17:00"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinBreakMinutes        = 0
	MaxBreakMinutes        = 120
	MaxBulkRangeDays       = 92 // one quarter
	MaxNotesLength         = 500
	MaxCancelReasonLength  = 500
	MaxPatientNameLength   = 200
	MaxPatientPhoneLength  = 32
)

// ISO weekday bounds (Monday=1 .. Sunday=7)
const (
	MinISOWeekday = 1
	MaxISOWeekday = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
