package models

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id,string" db:"id"`
	Email        string `gorm:"uniqueIndex;not null;size:200" json:"email" db:"email"`
	Name         string `gorm:"not null;size:200" json:"name" db:"name"`
	PasswordHash string `gorm:"not null" json:"-" db:"password_hash"`
}

func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
