package domain

import "time"

// Space represents a bookable space (room, auditorium, office, etc.)
type Space struct {
	ID           int64
	Name         string
	Description  string
	PricePerHour float64
	Capacity     int
	Images       []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SpacesFilter фильтр для получения списка помещений
type SpacesFilter struct {
	Limit  int
	Offset int
}
