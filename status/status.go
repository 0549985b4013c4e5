// Package status derives a timesheet's completion state from its entries.
//
// Every function here is pure: callers pass the entries in and persist the
// returned copies themselves.
package status

import (
	"math"
	"time"

	"ticktock/models"
)

// Summary counts timesheets per status bucket.
type Summary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Incomplete int `json:"incomplete"`
	Missing    int `json:"missing"`
}

// Result is the batch form returned when listing a user's weeks.
type Result struct {
	Timesheets []models.Timesheet `json:"timesheets"`
	Summary    Summary            `json:"summary"`
}

// CalculateStatus classifies a week by its total hours.
func CalculateStatus(totalHours float64) models.Status {
	switch {
	case totalHours == 0:
		return models.StatusMissing
	case totalHours >= models.ExpectedWeeklyHours:
		return models.StatusCompleted
	default:
		return models.StatusIncomplete
	}
}

func CalculateTotalHours(entries []models.TimesheetEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Hours
	}
	return total
}

// TimesheetEntries returns the entries that belong to timesheetID, in input order.
func TimesheetEntries(timesheetID uint, all []models.TimesheetEntry) []models.TimesheetEntry {
	var out []models.TimesheetEntry
	for _, e := range all {
		if e.TimesheetID == timesheetID {
			out = append(out, e)
		}
	}
	return out
}

// UpdateTimesheetStatus returns a copy of ts with TotalHours and Status
// recomputed from all. Neither argument is modified.
func UpdateTimesheetStatus(ts models.Timesheet, all []models.TimesheetEntry) models.Timesheet {
	total := CalculateTotalHours(TimesheetEntries(ts.ID, all))
	ts.TotalHours = total
	ts.Status = CalculateStatus(total)
	if ts.ExpectedHours == 0 {
		ts.ExpectedHours = models.ExpectedWeeklyHours
	}
	return ts
}

func TimesheetStatusSummary(timesheets []models.Timesheet, all []models.TimesheetEntry) Result {
	res := Result{
		Timesheets: make([]models.Timesheet, 0, len(timesheets)),
		Summary:    Summary{Total: len(timesheets)},
	}
	for _, ts := range timesheets {
		updated := UpdateTimesheetStatus(ts, all)
		switch updated.Status {
		case models.StatusCompleted:
			res.Summary.Completed++
		case models.StatusIncomplete:
			res.Summary.Incomplete++
		case models.StatusMissing:
			res.Summary.Missing++
		}
		res.Timesheets = append(res.Timesheets, updated)
	}
	return res
}

func CanSubmitTimesheet(s models.Status) bool {
	return s == models.StatusCompleted
}

func HoursNeeded(totalHours float64) float64 {
	return math.Max(0, models.ExpectedWeeklyHours-totalHours)
}

// IsOverdue reports whether endDate, taken at the start of that day in UTC,
// lies strictly before now. Unparseable dates are never overdue.
func IsOverdue(endDate string, now time.Time) bool {
	end, err := time.Parse(models.DateLayout, endDate)
	if err != nil {
		return false
	}
	return end.Before(now)
}
