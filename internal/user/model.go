package user

import "gorm.io/gorm"

// User is an agency staff login identity.
type User struct {
	gorm.Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"size:255;not null;unique" json:"email"`
	Password string `json:"-"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"isAdmin"`
}
