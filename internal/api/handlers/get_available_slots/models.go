package get_available_slots

import (
	"github.com/kmosk/space-reservation-service/internal/domain"
	getAvailableSlots "github.com/kmosk/space-reservation-service/internal/usecase/get_available_slots"
)

// SlotResponse свободный слот
type SlotResponse struct {
	Start     string `json:"start"`      // "2026-09-07 10:00:00"
	End       string `json:"end"`        // "2026-09-07 11:00:00"
	StartTime string `json:"start_time"` // "10:00"
	EndTime   string `json:"end_time"`   // "11:00"
}

// DayResponse свободные слоты одного дня
type DayResponse struct {
	Date      string          `json:"date"` // "2026-09-07"
	DayOfWeek int             `json:"day_of_week"`
	Slots     []*SlotResponse `json:"slots"`
}

// MetaResponse метаданные выдачи
type MetaResponse struct {
	TotalDays  int `json:"total_days"`
	TotalSlots int `json:"total_slots"`
}

// ListResponse HTTP response model
type ListResponse struct {
	Data []*DayResponse `json:"data"`
	Meta MetaResponse   `json:"meta"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *ListResponse {
	out := &ListResponse{
		Data: make([]*DayResponse, 0, len(resp.Days)),
		Meta: MetaResponse{
			TotalDays:  resp.TotalDays,
			TotalSlots: resp.TotalSlots,
		},
	}
	for _, day := range resp.Days {
		dayResp := &DayResponse{
			Date:      day.Date.Format(domain.DateFormat),
			DayOfWeek: day.DayOfWeek,
			Slots:     make([]*SlotResponse, 0, len(day.Slots)),
		}
		for _, slot := range day.Slots {
			dayResp.Slots = append(dayResp.Slots, &SlotResponse{
				Start:     slot.Start.Format(domain.DateTimeFormat),
				End:       slot.End.Format(domain.DateTimeFormat),
				StartTime: slot.StartTime.String(),
				EndTime:   slot.EndTime.String(),
			})
		}
		out.Data = append(out.Data, dayResp)
	}
	return out
}
