package models

import "time"

// DateLayout is the calendar-day form used for every stored date.
const DateLayout = "2006-01-02"

// ExpectedWeeklyHours is the fixed target a week is judged against.
const ExpectedWeeklyHours = 40.0

type Status string

const (
	StatusMissing    Status = "MISSING"
	StatusIncomplete Status = "INCOMPLETE"
	StatusCompleted  Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusMissing, StatusIncomplete, StatusCompleted:
		return true
	}
	return false
}

// Timesheet is one calendar week for one user. Status and TotalHours are
// derived from the week's entries and are only written by the status package.
type Timesheet struct {
	ID            uint    `gorm:"primaryKey" json:"id,string" db:"id"`
	UserID        uint    `gorm:"not null;index" json:"userId,string" db:"user_id"`
	User          *User   `gorm:"foreignKey:UserID" json:"-" db:"-"`
	WeekNumber    int     `gorm:"not null" json:"weekNumber" db:"week_number"`
	DateRange     string  `gorm:"not null;size:100" json:"dateRange" db:"date_range"`
	StartDate     string  `gorm:"not null;size:10" json:"startDate" db:"start_date"`
	EndDate       string  `gorm:"not null;size:10" json:"endDate" db:"end_date"`
	Status        Status  `gorm:"not null;size:20" json:"status" db:"status"`
	TotalHours    float64 `gorm:"not null" json:"totalHours" db:"total_hours"`
	ExpectedHours float64 `gorm:"not null" json:"expectedHours" db:"expected_hours"`
}

// Overlaps reports whether the week shares at least one day with [from, to].
func (t *Timesheet) Overlaps(from, to time.Time) bool {
	start, err := time.Parse(DateLayout, t.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(DateLayout, t.EndDate)
	if err != nil {
		return false
	}
	return !start.After(to) && !end.Before(from)
}

type TimesheetEntry struct {
	ID          uint       `gorm:"primaryKey" json:"id,string" db:"id"`
	TimesheetID uint       `gorm:"not null;index" json:"timesheetId,string" db:"timesheet_id"`
	Timesheet   *Timesheet `gorm:"foreignKey:TimesheetID" json:"-" db:"-"`
	Date        string     `gorm:"not null;size:10" json:"date" db:"date"`
	ProjectName string     `gorm:"not null;size:100" json:"projectName" db:"project_name"`
	TypeOfWork  string     `gorm:"not null;size:100" json:"typeOfWork" db:"type_of_work"`
	Description string     `gorm:"not null;size:500" json:"description" db:"description"`
	Hours       float64    `gorm:"not null" json:"hours" db:"hours"`
}
