package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ticktock/models"
	"ticktock/seed"
)

// OpenPostgres connects through gorm, migrates the schema and loads data when
// the users table is empty.
func OpenPostgres(dsn string, logSQL bool, data *seed.Data) (*gorm.DB, error) {
	level := logger.Warn
	if logSQL {
		level = logger.Info
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate the schema
	err = db.AutoMigrate(&models.User{}, &models.Timesheet{}, &models.TimesheetEntry{}, &models.Project{}, &models.WorkType{})
	if err != nil {
		return nil, err
	}

	if data != nil {
		if err := seedPostgres(db, data); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return db, nil
}

func seedPostgres(db *gorm.DB, data *seed.Data) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&data.Users).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Timesheets).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Entries).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.Projects).Error; err != nil {
			return err
		}
		if err := tx.Create(&data.WorkTypes).Error; err != nil {
			return err
		}
		// Rows were inserted with explicit IDs; move each sequence past them.
		for _, table := range []string{"users", "timesheets", "timesheet_entries", "projects", "work_types"} {
			stmt := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))`, table)
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Seeded %d users, %d timesheets, %d entries", len(data.Users), len(data.Timesheets), len(data.Entries))
	return nil
}
