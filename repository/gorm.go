package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ticktock/models"
)

// GormStore is the postgres-backed store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *GormStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *GormStore) ListTimesheets(ctx context.Context, userID uint) ([]models.Timesheet, error) {
	var timesheets []models.Timesheet
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date asc, id asc").
		Find(&timesheets).Error
	return timesheets, err
}

func (s *GormStore) TimesheetByID(ctx context.Context, id uint) (*models.Timesheet, error) {
	var ts models.Timesheet
	if err := s.db.WithContext(ctx).First(&ts, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &ts, nil
}

func (s *GormStore) SaveTimesheetStatus(ctx context.Context, ts *models.Timesheet) error {
	result := s.db.WithContext(ctx).Model(&models.Timesheet{}).
		Where("id = ?", ts.ID).
		Updates(map[string]interface{}{
			"total_hours": ts.TotalHours,
			"status":      ts.Status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListEntries(ctx context.Context, timesheetIDs ...uint) ([]models.TimesheetEntry, error) {
	query := s.db.WithContext(ctx).Order("id asc")
	if len(timesheetIDs) > 0 {
		query = query.Where("timesheet_id IN ?", timesheetIDs)
	}
	var entries []models.TimesheetEntry
	err := query.Find(&entries).Error
	return entries, err
}

func (s *GormStore) CreateEntry(ctx context.Context, e *models.TimesheetEntry) error {
	e.ID = 0
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *GormStore) UpdateEntry(ctx context.Context, e *models.TimesheetEntry) error {
	result := s.db.WithContext(ctx).Model(&models.TimesheetEntry{}).
		Where("id = ? AND timesheet_id = ?", e.ID, e.TimesheetID).
		Updates(map[string]interface{}{
			"date":         e.Date,
			"project_name": e.ProjectName,
			"type_of_work": e.TypeOfWork,
			"description":  e.Description,
			"hours":        e.Hours,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteEntry(ctx context.Context, timesheetID, entryID uint) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND timesheet_id = ?", entryID, timesheetID).
		Delete(&models.TimesheetEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Projects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.WithContext(ctx).Order("id asc").Find(&projects).Error
	return projects, err
}

func (s *GormStore) WorkTypes(ctx context.Context) ([]models.WorkType, error) {
	var types []models.WorkType
	err := s.db.WithContext(ctx).Order("id asc").Find(&types).Error
	return types, err
}
