package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default slot catalog values
// Каталог фиксированный: почасовые слоты 08:00..20:00 (13 штук),
// слот H:00 занимает интервал [H:00, H+1:00)
const (
	DefaultOpenHour            = 8
	DefaultCloseHour           = 21
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MaxTitleLength      = 200
	MaxBookedByLength   = 100
	MaxDepartmentLength = 100
	MinRoomCapacity     = 1
	MaxRoomCapacity     = 1000
)

// Statistics window sizes for the admin dashboard
const (
	StatsDailyDays     = 7
	StatsMonthlyMonths = 6
)
