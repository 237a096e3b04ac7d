package repository

import (
	"strings"
	"time"
)

// stamp is the updated_at value written next to every key.
func stamp(now time.Time) string {
	return now.UTC().Format(time.RFC3339Nano)
}

func validKey(key string) bool {
	return strings.TrimSpace(key) != ""
}
