// internal/quote/model.go
package quote

import (
	"time"

	"gorm.io/gorm"

	"github.com/rosterhq/api-agency/internal/pricing"
)

// Quote statuses.
const (
	StatusDraft    = "draft"
	StatusSent     = "sent"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// ValidStatus reports whether s is a known quote status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// Quote is a point-in-time snapshot of a priced campaign. Line items and
// totals are immutable once persisted; later edits create a new quote and a
// revision note rather than mutating the snapshot.
type Quote struct {
	gorm.Model
	ClientID     uint   `gorm:"not null;index" json:"clientId"`
	CampaignName string `gorm:"size:255;not null" json:"campaignName"`
	Status       string `gorm:"size:50;not null;default:'draft';index" json:"status"`
	CreatedByID  uint   `gorm:"index" json:"createdById"`

	CommissionRatePercent float64 `gorm:"not null;default:0" json:"commissionRatePercent"`
	ASFRatePercent        float64 `gorm:"not null;default:0" json:"asfRatePercent"`
	ASFEnabled            bool    `gorm:"not null;default:false" json:"asfEnabled"`

	TalentFees  int64 `gorm:"not null;default:0" json:"talentFees"`
	Commissions int64 `gorm:"not null;default:0" json:"commissions"`
	ASFTotal    int64 `gorm:"not null;default:0" json:"asfTotal"`
	Total       int64 `gorm:"not null;default:0" json:"total"`

	LineItems []LineItem `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"lineItems"`
	Revisions []Revision `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE" json:"revisions,omitempty"`
}

// LineItem is one persisted row of a quote. The primary key is the UUID the
// composer generated during the quote-building session.
type LineItem struct {
	ID              string `gorm:"primaryKey;size:36" json:"id"`
	QuoteID         uint   `gorm:"not null;index" json:"quoteId"`
	TalentID        uint   `gorm:"not null" json:"talentId"`
	TalentName      string `gorm:"size:255;not null" json:"talentName"`
	DeliverableID   uint   `gorm:"not null" json:"deliverableId"`
	DeliverableName string `gorm:"size:255;not null" json:"deliverableName"`
	Category        string `gorm:"size:50;not null" json:"category"`
	Quantity        int    `gorm:"not null;default:1" json:"quantity"`
	UnitPrice       int64  `gorm:"not null;default:0" json:"unitPrice"`
	LineTotal       int64  `gorm:"not null;default:0" json:"lineTotal"`

	CreatedAt time.Time `json:"createdAt"`
}

// Revision is a free-text note recorded against a quote's history.
type Revision struct {
	gorm.Model
	QuoteID  uint   `gorm:"not null;index" json:"quoteId"`
	AuthorID uint   `json:"authorId"`
	Note     string `gorm:"not null" json:"note"`
}

// fromPricing converts a computed line item into its persisted form.
func fromPricing(quoteID uint, li pricing.LineItem) LineItem {
	return LineItem{
		ID:              li.ID,
		QuoteID:         quoteID,
		TalentID:        li.TalentID,
		TalentName:      li.TalentName,
		DeliverableID:   li.DeliverableID,
		DeliverableName: li.DeliverableName,
		Category:        string(li.Category),
		Quantity:        li.Quantity,
		UnitPrice:       li.UnitPrice,
		LineTotal:       li.Total(),
	}
}
