package entity

import (
	"net/mail"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	Role     Role   `gorm:"not null" json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Active   bool   `gorm:"default:true" json:"active"`
}

// Validate checks the stored fields. rawPassword is the pre-hash input
// when creating or changing the password; pass "" to skip that check.
func (u *User) Validate(rawPassword string) error {
	var ve ValidationError
	if len(u.Username) < 3 {
		ve.Add("username", "must be at least 3 characters")
	}
	if rawPassword != "" && len(rawPassword) < 6 {
		ve.Add("password", "must be at least 6 characters")
	}
	if !u.Role.Valid() {
		ve.Add("role", "must be admin, manager or kitchen")
	}
	if u.Email != "" {
		if _, err := mail.ParseAddress(u.Email); err != nil {
			ve.Add("email", "invalid email address")
		}
	}
	return ve.Err()
}
