package rate

import "gorm.io/gorm"

// Rate is the configured base price for one talent×deliverable pair, in
// minor currency units. No record means "no rate configured"; a stored 0 is
// treated as unsellable just like absence.
type Rate struct {
	gorm.Model
	TalentID      uint  `gorm:"not null;index;uniqueIndex:idx_rate_pair" json:"talentId"`
	DeliverableID uint  `gorm:"not null;index;uniqueIndex:idx_rate_pair" json:"deliverableId"`
	BaseRate      int64 `gorm:"not null;default:0" json:"baseRate"`
}
