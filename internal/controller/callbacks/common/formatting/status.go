package formatting

import "github.com/Freeeeeet/beachrooms_bot/internal/model"

// AvailabilityDisplay представляет отображение статуса аудитории
type AvailabilityDisplay struct {
	Emoji string
	Label string
}

// GetAvailabilityDisplay возвращает emoji и подпись для статуса аудитории
func GetAvailabilityDisplay(status model.AvailabilityStatus) AvailabilityDisplay {
	displays := map[model.AvailabilityStatus]AvailabilityDisplay{
		model.AvailabilityAvailable: {"🟢", "Available"},
		model.AvailabilityOccupied:  {"🔴", "Occupied"},
		model.AvailabilityUnknown:   {"⚪️", "Unknown"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return AvailabilityDisplay{"❓", "Unknown"}
}

// FormatStatusLine строка статуса: подпись и текст источника, если он отличается
func FormatStatusLine(room model.ClassroomAvailability) string {
	display := GetAvailabilityDisplay(room.Status)
	if room.StatusText == "" || room.StatusText == display.Label {
		return display.Emoji + " " + display.Label
	}
	return display.Emoji + " " + display.Label + " · " + room.StatusText
}
