package formatting

import "fmt"

// PluralizeRooms возвращает "1 room" / "3 rooms"
func PluralizeRooms(count int) string {
	if count == 1 {
		return "1 room"
	}
	return fmt.Sprintf("%d rooms", count)
}

// PluralizeSeats возвращает "1 seat" / "40 seats"
func PluralizeSeats(count int) string {
	if count == 1 {
		return "1 seat"
	}
	return fmt.Sprintf("%d seats", count)
}
