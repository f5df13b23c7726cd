package deliverable

import (
	"gorm.io/gorm"

	"github.com/rosterhq/api-agency/internal/pricing"
)

// Deliverable defines what can be sold, not its price for a specific talent.
type Deliverable struct {
	gorm.Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Category string `gorm:"size:50;not null;index" json:"category"`
	IsAddon  bool   `gorm:"not null;default:false" json:"isAddon"`
	// DefaultMultiplier seeds new addon rules; nil means flat/manual pricing.
	DefaultMultiplier *float64 `json:"defaultMultiplier"`
	DisplayOrder      int      `gorm:"not null;default:0" json:"displayOrder"`
}

// AddonRule makes an addon deliverable available when its base deliverable is
// selected, priced at base_rate × multiplier. A nil multiplier marks a
// flat-priced addon that requires manual rate entry.
type AddonRule struct {
	gorm.Model
	BaseDeliverableID  uint     `gorm:"not null;index" json:"baseDeliverableId"`
	AddonDeliverableID uint     `gorm:"not null;index" json:"addonDeliverableId"`
	Multiplier         *float64 `json:"multiplier"`
	IsActive           bool     `gorm:"not null;default:true" json:"isActive"`
}

// PricingInfo converts the record into the shape the pricing core consumes.
func (d Deliverable) PricingInfo() pricing.DeliverableInfo {
	return pricing.DeliverableInfo{
		Name:         d.Name,
		Category:     pricing.Category(d.Category),
		DisplayOrder: d.DisplayOrder,
	}
}
