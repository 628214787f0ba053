package helpers

import (
	"time"
)

// FormatTimestamp renders an optional publish timestamp for display.
func FormatTimestamp(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
