package get_available_slots

import (
	"time"

	"github.com/kmosk/space-reservation-service/internal/availability"
	"github.com/kmosk/space-reservation-service/pkg/types"
)

// Request модель запроса свободных слотов
type Request struct {
	SpaceID             int64 // ID помещения
	SlotDurationMinutes int   // Длительность слота в минутах (15-480)
}

// Slot свободный слот
type Slot struct {
	Start     time.Time        // Полный instant начала
	End       time.Time        // Полный instant конца
	StartTime types.TimeString // Время начала "HH:MM"
	EndTime   types.TimeString // Время конца "HH:MM"
}

// Day свободные слоты одного дня
type Day struct {
	Date      time.Time
	DayOfWeek int
	Slots     []Slot
}

// Response модель ответа со свободными слотами по дням горизонта
type Response struct {
	Days       []Day
	TotalDays  int // Количество дней хотя бы с одним слотом
	TotalSlots int // Суммарное количество слотов
}

func toResponse(days []availability.DaySlots) *Response {
	resp := &Response{Days: make([]Day, 0, len(days))}
	for _, d := range days {
		day := Day{
			Date:      d.Date,
			DayOfWeek: d.DayOfWeek,
			Slots:     make([]Slot, 0, len(d.Slots)),
		}
		for _, s := range d.Slots {
			day.Slots = append(day.Slots, Slot{
				Start:     s.Start,
				End:       s.End,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
			})
		}
		resp.Days = append(resp.Days, day)
		resp.TotalSlots += len(day.Slots)
	}
	resp.TotalDays = len(resp.Days)
	return resp
}
