package formatting

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Freeeeeet/beachrooms_bot/internal/model"
)

type amenityDisplay struct {
	Emoji string
	Label string
}

var amenityDisplays = map[string]amenityDisplay{
	"projector":  {"📽", "Projector"},
	"whiteboard": {"📝", "Whiteboard"},
	"outlets":    {"🔌", "Power Outlets"},
	"computer":   {"💻", "Computers"},
	"smartboard": {"🖥", "Smart Board"},
	"microphone": {"🎤", "Microphone"},
}

// FormatAmenity подпись одного тега оснащения; неизвестные теги выводятся как есть
func FormatAmenity(tag string) string {
	if display, ok := amenityDisplays[tag]; ok {
		return display.Emoji + " " + display.Label
	}
	return "• " + capitalize(strings.ReplaceAll(tag, "_", " "))
}

// FormatAmenities список оснащения в стабильном порядке
func FormatAmenities(amenities model.AmenitySet) []string {
	tags := amenities.Tags()
	labels := make([]string, 0, len(tags))
	for _, tag := range tags {
		labels = append(labels, FormatAmenity(tag))
	}
	return labels
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
