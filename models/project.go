package models

// Project and WorkType back the option lists of the entry form.
type Project struct {
	ID   uint   `gorm:"primaryKey" json:"id" db:"id"`
	Name string `gorm:"uniqueIndex;not null;size:100" json:"name" db:"name"`
}

type WorkType struct {
	ID   uint   `gorm:"primaryKey" json:"id" db:"id"`
	Name string `gorm:"uniqueIndex;not null;size:100" json:"name" db:"name"`
}

func ProjectNames(projects []Project) []string {
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names
}

func WorkTypeNames(types []WorkType) []string {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, t.Name)
	}
	return names
}
