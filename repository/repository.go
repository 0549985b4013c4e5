// Package repository defines the persistence boundary of the timesheet
// service and its memory, gorm and sqlite implementations.
package repository

import (
	"context"
	"errors"

	"ticktock/models"
)

var ErrNotFound = errors.New("not found")

type Users interface {
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uint) (*models.User, error)
}

type Timesheets interface {
	// ListTimesheets returns a user's weeks ordered by start date.
	ListTimesheets(ctx context.Context, userID uint) ([]models.Timesheet, error)
	TimesheetByID(ctx context.Context, id uint) (*models.Timesheet, error)
	// SaveTimesheetStatus persists the derived TotalHours and Status of ts.
	// No other field is written.
	SaveTimesheetStatus(ctx context.Context, ts *models.Timesheet) error
}

type Entries interface {
	// ListEntries returns the entries of the given timesheets, or of every
	// timesheet when none is given, ordered by ID.
	ListEntries(ctx context.Context, timesheetIDs ...uint) ([]models.TimesheetEntry, error)
	// CreateEntry stores e and assigns its ID.
	CreateEntry(ctx context.Context, e *models.TimesheetEntry) error
	// UpdateEntry replaces the entry matching e.ID and e.TimesheetID.
	UpdateEntry(ctx context.Context, e *models.TimesheetEntry) error
	DeleteEntry(ctx context.Context, timesheetID, entryID uint) error
}

type Catalog interface {
	Projects(ctx context.Context) ([]models.Project, error)
	WorkTypes(ctx context.Context) ([]models.WorkType, error)
}

type Store interface {
	Users
	Timesheets
	Entries
	Catalog
}
