package domain

// Business validation constants
const (
	MinSlotDurationMinutes     = 15
	MaxSlotDurationMinutes     = 480 // 8 часов
	DefaultSlotDurationMinutes = 60

	MinDayOfWeek = 0 // воскресенье
	MaxDayOfWeek = 6 // суббота

	MaxEventNameLength  = 255
	MaxSpaceNameLength  = 255
	MaxSpaceImagesCount = 20
	DefaultListLimit    = 50
	MaxListLimit        = 200
)

// Time format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04:05" // YYYY-MM-DD HH:MM:SS
)
