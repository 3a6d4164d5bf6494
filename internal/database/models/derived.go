package models

import (
	"math"
	"time"
)

// CompletionPercentage returns produced/planned as a rounded percentage in [0, 100].
// A zero or negative planned quantity yields 0.
func CompletionPercentage(produced, planned float64) int {
	if planned <= 0 || produced <= 0 {
		return 0
	}
	pct := int(math.Round(produced / planned * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// IsOverdue is true when plannedEnd has passed and the record is not completed.
func IsOverdue(now time.Time, plannedEnd *time.Time, completed bool) bool {
	if plannedEnd == nil || completed {
		return false
	}
	return now.After(*plannedEnd)
}

// DurationHours returns end-start in hours rounded to two decimals, or 0 if either bound is missing.
func DurationHours(start, end *time.Time) float64 {
	if start == nil || end == nil {
		return 0
	}
	hours := end.Sub(*start).Hours()
	if hours < 0 {
		return 0
	}
	return math.Round(hours*100) / 100
}

// Efficiency returns estimated/actual as a rounded percentage, or 0 unless both are positive.
func Efficiency(estimated, actual float64) int {
	if estimated <= 0 || actual <= 0 {
		return 0
	}
	return int(math.Round(estimated / actual * 100))
}
