package fuzzytime

import (
	"fmt"
	"time"
)

// fuzzy time strings for the version history table, e.g. "just now",
// "3 days ago". the exact timestamp stays available as a tooltip;
// this is only the human-friendly column.

func TimeSpanToFuzzyTimeString(s time.Duration) string {
	if s < 0 { s = 0 }
	minute := int64(s.Minutes())
	hour := int64(s.Hours())
	day := hour / 24
	if minute < 1 { return "just now" }
	if minute == 1 { return "a minute ago" }
	if hour < 1 { return fmt.Sprintf("%d minutes ago", minute) }
	if hour == 1 { return "an hour ago" }
	if day < 1 { return fmt.Sprintf("%d hours ago", hour) }
	if day == 1 { return "a day ago" }
	if day < 7 { return fmt.Sprintf("%d days ago", day) }
	week := day / 7
	if week == 1 { return "a week ago" }
	if day < 30 { return fmt.Sprintf("%d weeks ago", week) }
	month := day / 30
	if month == 1 { return "a month ago" }
	if day < 365 { return fmt.Sprintf("%d months ago", month) }
	year := day / 365
	if year == 1 { return "a year ago" }
	return fmt.Sprintf("%d years ago", year)
}

func TimeToFuzzyTimeString(t time.Time) string {
	return TimeSpanToFuzzyTimeString(time.Since(t))
}
