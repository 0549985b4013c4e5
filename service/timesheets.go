// Package service ties the store to the status and validation engines.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"ticktock/models"
	"ticktock/repository"
	"ticktock/status"
	"ticktock/validation"
)

var (
	ErrTimesheetNotFound = fmt.Errorf("timesheet %w", repository.ErrNotFound)
	ErrEntryNotFound     = fmt.Errorf("entry %w", repository.ErrNotFound)
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidDateRange  = errors.New("invalid date range")
)

// InputError carries the per-field messages of a rejected entry.
type InputError struct {
	Fields validation.Errors
}

func (e *InputError) Error() string { return "invalid input: " + e.Fields.Error() }
func (e *InputError) Unwrap() error { return ErrInvalidInput }

// Catalog is the option lists of the entry form.
type Catalog struct {
	Projects  []string `json:"projects"`
	WorkTypes []string `json:"workTypes"`
}

// Filter narrows a timesheet listing. Dates are inclusive ISO days and only
// apply when both are set. Status narrows the returned weeks but not the
// summary counts.
type Filter struct {
	StartDate string
	EndDate   string
	Status    models.Status
}

// EntryInput is the user-editable part of an entry.
type EntryInput struct {
	Date        string
	ProjectName string
	TypeOfWork  string
	Description string
	Hours       string
}

type Detail struct {
	Timesheet   models.Timesheet        `json:"timesheet"`
	Entries     []models.TimesheetEntry `json:"entries"`
	HoursNeeded float64                 `json:"hoursNeeded"`
	CanSubmit   bool                    `json:"canSubmit"`
	Overdue     bool                    `json:"overdue"`
}

type Timesheets struct {
	store repository.Store
	locks *lockTable
	now   func() time.Time
}

func NewTimesheets(store repository.Store) *Timesheets {
	return &Timesheets{store: store, locks: newLockTable(), now: time.Now}
}

// WithClock replaces the wall clock used for overdue checks.
func (s *Timesheets) WithClock(now func() time.Time) *Timesheets {
	s.now = now
	return s
}

func (s *Timesheets) Catalog(ctx context.Context) (Catalog, error) {
	projects, err := s.store.Projects(ctx)
	if err != nil {
		return Catalog{}, err
	}
	types, err := s.store.WorkTypes(ctx)
	if err != nil {
		return Catalog{}, err
	}
	return Catalog{Projects: models.ProjectNames(projects), WorkTypes: models.WorkTypeNames(types)}, nil
}

func (s *Timesheets) List(ctx context.Context, userID uint, f Filter) (status.Result, error) {
	timesheets, err := s.store.ListTimesheets(ctx, userID)
	if err != nil {
		return status.Result{}, err
	}

	if f.StartDate != "" && f.EndDate != "" {
		from, err := time.Parse(models.DateLayout, f.StartDate)
		if err != nil {
			return status.Result{}, fmt.Errorf("%w: startDate %q", ErrInvalidDateRange, f.StartDate)
		}
		to, err := time.Parse(models.DateLayout, f.EndDate)
		if err != nil {
			return status.Result{}, fmt.Errorf("%w: endDate %q", ErrInvalidDateRange, f.EndDate)
		}
		inRange := timesheets[:0]
		for _, ts := range timesheets {
			if ts.Overlaps(from, to) {
				inRange = append(inRange, ts)
			}
		}
		timesheets = inRange
	}

	var entries []models.TimesheetEntry
	if len(timesheets) > 0 {
		entries, err = s.store.ListEntries(ctx, ids(timesheets)...)
		if err != nil {
			return status.Result{}, err
		}
	}
	res := status.TimesheetStatusSummary(timesheets, entries)

	if f.Status != "" {
		filtered := make([]models.Timesheet, 0, len(res.Timesheets))
		for _, ts := range res.Timesheets {
			if ts.Status == f.Status {
				filtered = append(filtered, ts)
			}
		}
		res.Timesheets = filtered
	}
	return res, nil
}

func ids(timesheets []models.Timesheet) []uint {
	out := make([]uint, 0, len(timesheets))
	for _, ts := range timesheets {
		out = append(out, ts.ID)
	}
	return out
}

// owned loads a timesheet and hides weeks that belong to someone else.
func (s *Timesheets) owned(ctx context.Context, userID, timesheetID uint) (*models.Timesheet, error) {
	ts, err := s.store.TimesheetByID(ctx, timesheetID)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && ts.UserID != userID) {
		return nil, ErrTimesheetNotFound
	}
	return ts, err
}

func (s *Timesheets) Entries(ctx context.Context, userID, timesheetID uint) ([]models.TimesheetEntry, error) {
	if _, err := s.owned(ctx, userID, timesheetID); err != nil {
		return nil, err
	}
	entries, err := s.store.ListEntries(ctx, timesheetID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.TimesheetEntry{}
	}
	return entries, nil
}

func (s *Timesheets) Detail(ctx context.Context, userID, timesheetID uint) (*Detail, error) {
	ts, err := s.owned(ctx, userID, timesheetID)
	if err != nil {
		return nil, err
	}
	entries, err := s.store.ListEntries(ctx, timesheetID)
	if err != nil {
		return nil, err
	}
	updated := status.UpdateTimesheetStatus(*ts, entries)

	sorted := append([]models.TimesheetEntry{}, entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	return &Detail{
		Timesheet:   updated,
		Entries:     sorted,
		HoursNeeded: status.HoursNeeded(updated.TotalHours),
		CanSubmit:   status.CanSubmitTimesheet(updated.Status),
		Overdue:     status.IsOverdue(updated.EndDate, s.now()),
	}, nil
}

func checkEntry(in EntryInput) (float64, error) {
	errs := validation.ValidateEntry(validation.EntryValues{
		Date:        in.Date,
		ProjectName: in.ProjectName,
		TypeOfWork:  in.TypeOfWork,
		Description: in.Description,
		Hours:       in.Hours,
	})
	if len(errs) > 0 {
		return 0, &InputError{Fields: errs}
	}
	hours, _ := validation.ParseHours(in.Hours)
	return hours, nil
}

// mutate runs fn under the timesheet's lock and then recomputes and saves
// the week's derived fields before releasing it.
func (s *Timesheets) mutate(ctx context.Context, userID, timesheetID uint, fn func(ts *models.Timesheet) error) (*models.Timesheet, error) {
	release, err := s.locks.acquire(ctx, timesheetID)
	if err != nil {
		return nil, err
	}
	defer release()

	ts, err := s.owned(ctx, userID, timesheetID)
	if err != nil {
		return nil, err
	}
	if err := fn(ts); err != nil {
		return nil, err
	}

	entries, err := s.store.ListEntries(ctx, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("reload entries: %w", err)
	}
	updated := status.UpdateTimesheetStatus(*ts, entries)
	if err := s.store.SaveTimesheetStatus(ctx, &updated); err != nil {
		return nil, fmt.Errorf("save timesheet status: %w", err)
	}
	return &updated, nil
}

func (s *Timesheets) CreateEntry(ctx context.Context, userID, timesheetID uint, in EntryInput) (*models.TimesheetEntry, *models.Timesheet, error) {
	var entry *models.TimesheetEntry
	ts, err := s.mutate(ctx, userID, timesheetID, func(*models.Timesheet) error {
		hours, err := checkEntry(in)
		if err != nil {
			return err
		}
		entry = &models.TimesheetEntry{
			TimesheetID: timesheetID,
			Date:        in.Date,
			ProjectName: in.ProjectName,
			TypeOfWork:  in.TypeOfWork,
			Description: in.Description,
			Hours:       hours,
		}
		return s.store.CreateEntry(ctx, entry)
	})
	if err != nil {
		return nil, nil, err
	}
	return entry, ts, nil
}

// UpdateEntry replaces an entry's project, work type, description and hours.
// The stored date is kept whatever in.Date holds.
func (s *Timesheets) UpdateEntry(ctx context.Context, userID, timesheetID, entryID uint, in EntryInput) (*models.TimesheetEntry, *models.Timesheet, error) {
	var entry *models.TimesheetEntry
	ts, err := s.mutate(ctx, userID, timesheetID, func(*models.Timesheet) error {
		current, err := s.findEntry(ctx, timesheetID, entryID)
		if err != nil {
			return err
		}
		in.Date = current.Date
		hours, err := checkEntry(in)
		if err != nil {
			return err
		}
		current.ProjectName = in.ProjectName
		current.TypeOfWork = in.TypeOfWork
		current.Description = in.Description
		current.Hours = hours
		if err := s.store.UpdateEntry(ctx, current); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrEntryNotFound
			}
			return err
		}
		entry = current
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return entry, ts, nil
}

func (s *Timesheets) DeleteEntry(ctx context.Context, userID, timesheetID, entryID uint) (*models.Timesheet, error) {
	return s.mutate(ctx, userID, timesheetID, func(*models.Timesheet) error {
		err := s.store.DeleteEntry(ctx, timesheetID, entryID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEntryNotFound
		}
		return err
	})
}

func (s *Timesheets) findEntry(ctx context.Context, timesheetID, entryID uint) (*models.TimesheetEntry, error) {
	entries, err := s.store.ListEntries(ctx, timesheetID)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ID == entryID {
			e := e
			return &e, nil
		}
	}
	return nil, ErrEntryNotFound
}
