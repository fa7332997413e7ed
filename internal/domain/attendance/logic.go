package attendance

import "time"

// Summarize computes the per-status counts shown above the daily list.
func Summarize(records []Record) Summary {
	var summary Summary
	for _, record := range records {
		switch record.Status {
		case StatusPresent:
			summary.Present++
		case StatusAbsent:
			summary.Absent++
		case StatusLate:
			summary.Late++
		}
	}
	return summary
}

// TimeInFor returns the clock-in timestamp to store for a status change:
// the current wall clock unless the employee is absent.
func TimeInFor(status string, now time.Time) *time.Time {
	if status == StatusAbsent {
		return nil
	}
	return &now
}
