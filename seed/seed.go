// Package seed holds the bootstrap data every store starts from.
package seed

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"ticktock/models"
	"ticktock/status"
)

type Data struct {
	Users      []models.User
	Timesheets []models.Timesheet
	Entries    []models.TimesheetEntry
	Projects   []models.Project
	WorkTypes  []models.WorkType
}

type credentials struct {
	id       uint
	email    string
	password string
	name     string
}

var users = []credentials{
	{1, "john.doe@example.com", "password123", "John Doe"},
	{2, "test@example.com", "test123", "Test User"},
}

var weeks = []models.Timesheet{
	{ID: 1, UserID: 1, WeekNumber: 1, DateRange: "1 - 5 January, 2024", StartDate: "2024-01-01", EndDate: "2024-01-05"},
	{ID: 2, UserID: 1, WeekNumber: 2, DateRange: "8 - 12 January, 2024", StartDate: "2024-01-08", EndDate: "2024-01-12"},
	{ID: 3, UserID: 1, WeekNumber: 3, DateRange: "15 - 19 January, 2024", StartDate: "2024-01-15", EndDate: "2024-01-19"},
	{ID: 4, UserID: 1, WeekNumber: 4, DateRange: "22 - 26 January, 2024", StartDate: "2024-01-22", EndDate: "2024-01-26"},
	{ID: 5, UserID: 1, WeekNumber: 5, DateRange: "29 January - 2 February, 2024", StartDate: "2024-01-29", EndDate: "2024-02-02"},
	{ID: 6, UserID: 1, WeekNumber: 6, DateRange: "5 - 9 February, 2024", StartDate: "2024-02-05", EndDate: "2024-02-09"},
	{ID: 7, UserID: 1, WeekNumber: 7, DateRange: "12 - 16 February, 2024", StartDate: "2024-02-12", EndDate: "2024-02-16"},
	{ID: 8, UserID: 1, WeekNumber: 8, DateRange: "19 - 23 February, 2024", StartDate: "2024-02-19", EndDate: "2024-02-23"},
}

func e(id, ts uint, date, project, work, desc string, hours float64) models.TimesheetEntry {
	return models.TimesheetEntry{ID: id, TimesheetID: ts, Date: date, ProjectName: project, TypeOfWork: work, Description: desc, Hours: hours}
}

var entries = []models.TimesheetEntry{
	e(1, 4, "2024-01-21", "Homepage Development", "Bug fixes", "Fixed navigation menu responsive issues", 4),
	e(2, 4, "2024-01-21", "Homepage Development", "Feature Development", "Implemented user authentication flow", 4),
	e(3, 4, "2024-01-22", "Homepage Development", "Code Review", "Reviewed PR for payment integration", 4),
	e(4, 4, "2024-01-22", "Homepage Development", "Testing", "Wrote unit tests for API endpoints", 4),
	e(5, 4, "2024-01-22", "Homepage Development", "Documentation", "Updated API documentation", 4),
	e(6, 4, "2024-01-23", "Homepage Development", "Feature Development", "Built dashboard analytics component", 4),
	e(7, 4, "2024-01-23", "Homepage Development", "Bug fixes", "Fixed data loading issues", 4),
	e(8, 4, "2024-01-23", "Homepage Development", "Refactoring", "Optimized component rendering", 4),
	e(9, 4, "2024-01-24", "Homepage Development", "Feature Development", "Implemented search functionality", 4),
	e(10, 4, "2024-01-24", "Homepage Development", "Testing", "Integration testing for new features", 4),
	e(11, 3, "2024-01-15", "E-commerce Platform", "Feature Development", "Shopping cart implementation", 8),
	e(12, 3, "2024-01-16", "E-commerce Platform", "Bug fixes", "Product page layout fixes", 6),
	e(13, 3, "2024-01-17", "E-commerce Platform", "Code Review", "Reviewed checkout flow changes", 4),
	e(14, 3, "2024-01-18", "E-commerce Platform", "Feature Development", "Payment gateway integration", 6),
	e(15, 3, "2024-01-19", "E-commerce Platform", "Testing", "End-to-end testing", 4),
}

var projectNames = []string{
	"Homepage Development",
	"E-commerce Platform",
	"Mobile App",
	"API Integration",
	"Dashboard Redesign",
	"Customer Portal",
}

var workTypeNames = []string{
	"Feature Development",
	"Bug fixes",
	"Code Review",
	"Testing",
	"Documentation",
	"Refactoring",
	"Meeting",
	"Research",
}

// Default returns the bootstrap data with passwords hashed at bcrypt.DefaultCost.
func Default() (*Data, error) {
	return Build(bcrypt.DefaultCost)
}

// Build returns fresh copies of the bootstrap data. Week status and totals are
// derived from the seeded entries.
func Build(hashCost int) (*Data, error) {
	d := &Data{
		Timesheets: make([]models.Timesheet, len(weeks)),
		Entries:    make([]models.TimesheetEntry, len(entries)),
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), hashCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.email, err)
		}
		d.Users = append(d.Users, models.User{ID: u.id, Email: u.email, Name: u.name, PasswordHash: string(hash)})
	}
	copy(d.Entries, entries)
	for i, ts := range weeks {
		d.Timesheets[i] = status.UpdateTimesheetStatus(ts, d.Entries)
	}
	for i, name := range projectNames {
		d.Projects = append(d.Projects, models.Project{ID: uint(i + 1), Name: name})
	}
	for i, name := range workTypeNames {
		d.WorkTypes = append(d.WorkTypes, models.WorkType{ID: uint(i + 1), Name: name})
	}
	return d, nil
}
