package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"ticktock/models"
)

// SQLStore is the embedded sqlite store, accessed through sqlx.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

const (
	userColumns      = `id, email, name, password_hash`
	timesheetColumns = `id, user_id, week_number, date_range, start_date, end_date, status, total_hours, expected_hours`
	entryColumns     = `id, timesheet_id, date, project_name, type_of_work, description, hours`
)

func noRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE email = ? COLLATE NOCASE`, email)
	if err != nil {
		return nil, noRows(err)
	}
	return &user, nil
}

func (s *SQLStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	if err != nil {
		return nil, noRows(err)
	}
	return &user, nil
}

func (s *SQLStore) ListTimesheets(ctx context.Context, userID uint) ([]models.Timesheet, error) {
	var timesheets []models.Timesheet
	err := s.db.SelectContext(ctx, &timesheets,
		`SELECT `+timesheetColumns+` FROM timesheets WHERE user_id = ? ORDER BY start_date, id`, userID)
	return timesheets, err
}

func (s *SQLStore) TimesheetByID(ctx context.Context, id uint) (*models.Timesheet, error) {
	var ts models.Timesheet
	err := s.db.GetContext(ctx, &ts, `SELECT `+timesheetColumns+` FROM timesheets WHERE id = ?`, id)
	if err != nil {
		return nil, noRows(err)
	}
	return &ts, nil
}

func (s *SQLStore) SaveTimesheetStatus(ctx context.Context, ts *models.Timesheet) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE timesheets SET total_hours = ?, status = ? WHERE id = ?`, ts.TotalHours, ts.Status, ts.ID)
	if err != nil {
		return err
	}
	return affected(res)
}

func (s *SQLStore) ListEntries(ctx context.Context, timesheetIDs ...uint) ([]models.TimesheetEntry, error) {
	var entries []models.TimesheetEntry
	if len(timesheetIDs) == 0 {
		err := s.db.SelectContext(ctx, &entries, `SELECT `+entryColumns+` FROM timesheet_entries ORDER BY id`)
		return entries, err
	}
	query, args, err := sqlx.In(`SELECT `+entryColumns+` FROM timesheet_entries WHERE timesheet_id IN (?) ORDER BY id`, timesheetIDs)
	if err != nil {
		return nil, err
	}
	err = s.db.SelectContext(ctx, &entries, s.db.Rebind(query), args...)
	return entries, err
}

func (s *SQLStore) CreateEntry(ctx context.Context, e *models.TimesheetEntry) error {
	res, err := s.db.NamedExecContext(ctx, `
		INSERT INTO timesheet_entries (timesheet_id, date, project_name, type_of_work, description, hours)
		VALUES (:timesheet_id, :date, :project_name, :type_of_work, :description, :hours)
	`, e)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint(id)
	return nil
}

func (s *SQLStore) UpdateEntry(ctx context.Context, e *models.TimesheetEntry) error {
	res, err := s.db.NamedExecContext(ctx, `
		UPDATE timesheet_entries
		SET date = :date, project_name = :project_name, type_of_work = :type_of_work,
			description = :description, hours = :hours
		WHERE id = :id AND timesheet_id = :timesheet_id
	`, e)
	if err != nil {
		return err
	}
	return affected(res)
}

func (s *SQLStore) DeleteEntry(ctx context.Context, timesheetID, entryID uint) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM timesheet_entries WHERE id = ? AND timesheet_id = ?`, entryID, timesheetID)
	if err != nil {
		return err
	}
	return affected(res)
}

func (s *SQLStore) Projects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.SelectContext(ctx, &projects, `SELECT id, name FROM projects ORDER BY id`)
	return projects, err
}

func (s *SQLStore) WorkTypes(ctx context.Context) ([]models.WorkType, error) {
	var types []models.WorkType
	err := s.db.SelectContext(ctx, &types, `SELECT id, name FROM work_types ORDER BY id`)
	return types, err
}
