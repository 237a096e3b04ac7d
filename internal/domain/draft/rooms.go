package draft

import (
	"fmt"
	"strings"
	"unicode"

	"meraki_estimator/internal/domain/entities"
)

// DefaultRoomArea is the floor area given to rooms added by ResizeRooms.
const DefaultRoomArea = 1.0

// ResizeRooms returns a room list of exactly count rooms, keeping the existing
// rooms in place. New rooms are named "{label} {n}" with DefaultRoomArea.
// count is clamped to at least one room.
func ResizeRooms(existing []entities.DraftRoom, label string, count int) []entities.DraftRoom {
	if count < 1 {
		count = 1
	}
	out := make([]entities.DraftRoom, 0, count)
	for i := 0; i < count; i++ {
		if i < len(existing) {
			out = append(out, existing[i].Clone())
			continue
		}
		out = append(out, entities.DraftRoom{Name: DefaultRoomName(label, i+1), Area: DefaultRoomArea})
	}
	return out
}

func DefaultRoomName(label string, index int) string {
	return fmt.Sprintf("%s %d", label, index)
}

// TitleFromSlug builds a display label for areas that carry none.
func TitleFromSlug(slug string) string {
	s := strings.TrimSpace(slug)
	if s == "" {
		return "Area"
	}
	if s == "entrance-circulation" {
		return "Entrance & Circulation"
	}
	s = strings.ReplaceAll(s, "-", " ")

	var b strings.Builder
	startOfWord := true
	for _, r := range s {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if isWord && startOfWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		startOfWord = !isWord
	}
	return b.String()
}
