package format

import (
	"fmt"
	"time"
)

// Placeholder strings rendered for time metrics that are not yet available.
const (
	// ClockPlaceholder stands in for an unknown timestamp.
	ClockPlaceholder = "--:--"
	// DurationPlaceholder stands in for an unknown duration.
	DurationPlaceholder = "--:--:--"
)

// FormatClock renders a timestamp as 24-hour HH:mm.
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// FormatDuration renders a duration as HH:mm:ss, where the hour field is the
// total number of hours and is not wrapped at 24. Sub-second precision is
// truncated. Negative durations carry a leading minus sign.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
}
