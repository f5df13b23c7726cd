package client

import "gorm.io/gorm"

// Client is a brand the agency quotes campaigns for.
type Client struct {
	gorm.Model
	CompanyName string `gorm:"size:255;not null" json:"companyName"`
	ContactName string `gorm:"size:255" json:"contactName"`
	Email       string `gorm:"size:255" json:"email"`
	Phone       string `gorm:"size:50" json:"phone"`
	Notes       string `json:"notes"`
}
