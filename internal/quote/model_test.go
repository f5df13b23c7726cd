package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rosterhq/api-agency/internal/pricing"
)

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusDraft))
	assert.True(t, ValidStatus(StatusAccepted))
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}

func TestFromPricingStoresCategoryAwareLineTotal(t *testing.T) {
	content := pricing.LineItem{
		ID:              "li-1",
		TalentID:        1,
		TalentName:      "Ava",
		DeliverableID:   10,
		DeliverableName: "Instagram Post",
		Category:        pricing.CategoryContent,
		Quantity:        3,
		UnitPrice:       100000,
	}
	row := fromPricing(7, content)
	assert.Equal(t, "li-1", row.ID)
	assert.Equal(t, uint(7), row.QuoteID)
	assert.Equal(t, int64(300000), row.LineTotal)

	// agency_fee line totals are the unit price itself
	fee := pricing.LineItem{
		ID:        "li-2",
		Category:  pricing.CategoryAgencyFee,
		Quantity:  3,
		UnitPrice: 70000,
	}
	row = fromPricing(7, fee)
	assert.Equal(t, int64(70000), row.LineTotal)
}
