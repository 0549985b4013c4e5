package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"ticktock/seed"
)

// OpenSQLite opens the embedded database at path (":memory:" works), creates
// the schema and loads data when the users table is empty.
func OpenSQLite(path string, data *seed.Data) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One connection keeps ":memory:" a single database and serializes writers.
	db.SetMaxOpenConns(1)

	if err := migrateSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if data != nil {
		if err := seedSQLite(db, data); err != nil {
			db.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return db, nil
}

func migrateSQLite(db *sqlx.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE COLLATE NOCASE,
			name TEXT NOT NULL,
			password_hash TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS timesheets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id),
			week_number INTEGER NOT NULL,
			date_range TEXT NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'MISSING',
			total_hours REAL NOT NULL DEFAULT 0,
			expected_hours REAL NOT NULL DEFAULT 40
		)`,
		`CREATE INDEX IF NOT EXISTS idx_timesheets_user_id ON timesheets(user_id)`,
		`CREATE TABLE IF NOT EXISTS timesheet_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			timesheet_id INTEGER NOT NULL REFERENCES timesheets(id),
			date TEXT NOT NULL,
			project_name TEXT NOT NULL,
			type_of_work TEXT NOT NULL,
			description TEXT NOT NULL,
			hours REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_timesheet_entries_timesheet_id ON timesheet_entries(timesheet_id)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS work_types (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`,
	}
	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

func seedSQLite(db *sqlx.DB, data *seed.Data) error {
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM users`); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	inserts := []struct {
		query string
		rows  interface{}
		n     int
	}{
		{`INSERT INTO users (id, email, name, password_hash) VALUES (:id, :email, :name, :password_hash)`, data.Users, len(data.Users)},
		{`INSERT INTO timesheets (id, user_id, week_number, date_range, start_date, end_date, status, total_hours, expected_hours)
			VALUES (:id, :user_id, :week_number, :date_range, :start_date, :end_date, :status, :total_hours, :expected_hours)`, data.Timesheets, len(data.Timesheets)},
		{`INSERT INTO timesheet_entries (id, timesheet_id, date, project_name, type_of_work, description, hours)
			VALUES (:id, :timesheet_id, :date, :project_name, :type_of_work, :description, :hours)`, data.Entries, len(data.Entries)},
		{`INSERT INTO projects (id, name) VALUES (:id, :name)`, data.Projects, len(data.Projects)},
		{`INSERT INTO work_types (id, name) VALUES (:id, :name)`, data.WorkTypes, len(data.WorkTypes)},
	}
	for _, ins := range inserts {
		if ins.n == 0 {
			continue
		}
		if _, err := tx.NamedExec(ins.query, ins.rows); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("Seeded %d users, %d timesheets, %d entries", len(data.Users), len(data.Timesheets), len(data.Entries))
	return nil
}
