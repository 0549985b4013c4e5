package repository

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"ticktock/models"
	"ticktock/seed"
)

// MemoryStore keeps everything in process memory. Entry IDs come from a
// counter that starts after the seeded entries.
type MemoryStore struct {
	mu         sync.RWMutex
	users      []models.User
	timesheets []models.Timesheet
	entries    []models.TimesheetEntry
	projects   []models.Project
	workTypes  []models.WorkType
	nextID     uint
}

func NewMemoryStore(data *seed.Data) *MemoryStore {
	s := &MemoryStore{}
	if data != nil {
		s.users = slices.Clone(data.Users)
		s.timesheets = slices.Clone(data.Timesheets)
		s.entries = slices.Clone(data.Entries)
		s.projects = slices.Clone(data.Projects)
		s.workTypes = slices.Clone(data.WorkTypes)
	}
	s.nextID = uint(len(s.entries)) + 1
	return s
}

func (s *MemoryStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UserByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) ListTimesheets(_ context.Context, userID uint) ([]models.Timesheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Timesheet
	for _, ts := range s.timesheets {
		if ts.UserID == userID {
			out = append(out, ts)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartDate < out[j].StartDate })
	return out, nil
}

func (s *MemoryStore) TimesheetByID(_ context.Context, id uint) (*models.Timesheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.timesheetIndex(id); i >= 0 {
		ts := s.timesheets[i]
		return &ts, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) SaveTimesheetStatus(_ context.Context, ts *models.Timesheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.timesheetIndex(ts.ID)
	if i < 0 {
		return ErrNotFound
	}
	s.timesheets[i].TotalHours = ts.TotalHours
	s.timesheets[i].Status = ts.Status
	return nil
}

func (s *MemoryStore) timesheetIndex(id uint) int {
	for i, ts := range s.timesheets {
		if ts.ID == id {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) ListEntries(_ context.Context, timesheetIDs ...uint) ([]models.TimesheetEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TimesheetEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if len(timesheetIDs) == 0 || slices.Contains(timesheetIDs, e.TimesheetID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateEntry(_ context.Context, e *models.TimesheetEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextID
	s.nextID++
	s.entries = append(s.entries, *e)
	return nil
}

func (s *MemoryStore) UpdateEntry(_ context.Context, e *models.TimesheetEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.entryIndex(e.TimesheetID, e.ID)
	if i < 0 {
		return ErrNotFound
	}
	s.entries[i] = *e
	return nil
}

func (s *MemoryStore) DeleteEntry(_ context.Context, timesheetID, entryID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.entryIndex(timesheetID, entryID)
	if i < 0 {
		return ErrNotFound
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return nil
}

func (s *MemoryStore) entryIndex(timesheetID, entryID uint) int {
	for i, e := range s.entries {
		if e.ID == entryID && e.TimesheetID == timesheetID {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) Projects(_ context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.projects), nil
}

func (s *MemoryStore) WorkTypes(_ context.Context) ([]models.WorkType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.workTypes), nil
}
