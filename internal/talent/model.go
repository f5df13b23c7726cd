package talent

import "gorm.io/gorm"

// Talent is a represented creator. Social fields mirror the roster import:
// follower counts come in as display strings ("1.2M") and stay that way.
type Talent struct {
	gorm.Model
	Name            string `gorm:"size:255;not null" json:"name"`
	Category        string `gorm:"size:100" json:"category"`
	Status          string `gorm:"size:50;not null;default:'active'" json:"status"`
	AvatarURL       string `json:"avatarUrl"`
	InstagramHandle string `json:"instagramHandle"`
	Followers       string `gorm:"size:50" json:"followers"`
	TikTokHandle    string `json:"tiktokHandle"`
	TikTokFollowers string `gorm:"size:50" json:"tiktokFollowers"`
	SourceURL       string `json:"sourceUrl"`
	Bio             string `json:"bio"`
}
