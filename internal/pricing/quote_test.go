package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boostingRule() Rule {
	return Rule{
		BaseDeliverableID:  10,
		AddonDeliverableID: 30,
		AddonName:          "Talent Boosting",
		AddonCategory:      CategoryTalentBoosting,
		Multiplier:         multiplier(0.30),
		Active:             true,
	}
}

func TestBuildQuote(t *testing.T) {
	c := testComposer()
	settings := Settings{CommissionRatePercent: 15, ASFRatePercent: 5, ASFEnabled: true}

	result, err := c.BuildQuote(
		[]Selection{{TalentID: 1, DeliverableID: 10, Quantity: 1}},
		[]AddonSelection{{TalentID: 1, DeliverableID: 30, BaseDeliverableID: 10, Quantity: 1}},
		[]CustomSelection{{TalentID: 2, DeliverableID: 11, Rate: 42000, Quantity: 1}},
		[]Rule{boostingRule()},
		settings,
	)
	require.NoError(t, err)
	require.Len(t, result.Items, 3)

	assert.Equal(t, int64(100000), result.Items[0].UnitPrice)
	assert.Equal(t, int64(30000), result.Items[1].UnitPrice) // 100000 × 0.30
	assert.Equal(t, int64(42000), result.Items[2].UnitPrice)

	// 100000 + 30000 + 42000 fees; 15% commission and 5% ASF per line
	assert.Equal(t, Totals{
		TalentFees:  172000,
		Commissions: 15000 + 4500 + 6300,
		ASFTotal:    5000 + 1500 + 2100,
		Total:       206400,
	}, result.Totals)
}

func TestBuildQuoteDropsAddonWithoutBase(t *testing.T) {
	c := testComposer()

	// the boosting selection references base 11, but only base 10 is selected
	result, err := c.BuildQuote(
		[]Selection{{TalentID: 1, DeliverableID: 10, Quantity: 1}},
		[]AddonSelection{{TalentID: 1, DeliverableID: 30, BaseDeliverableID: 11, Quantity: 1}},
		nil,
		[]Rule{boostingRule()},
		Settings{},
	)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, uint(10), result.Items[0].DeliverableID)
}

func TestBuildQuoteFailsOnUnpricedBase(t *testing.T) {
	c := testComposer()

	_, err := c.BuildQuote(
		[]Selection{{TalentID: 3, DeliverableID: 10, Quantity: 1}},
		nil, nil, nil, Settings{},
	)
	assert.ErrorIs(t, err, ErrNoRate)
}

func TestBuildQuoteSurfacesManualAddons(t *testing.T) {
	c := testComposer()
	exclusivity := Rule{
		BaseDeliverableID:  10,
		AddonDeliverableID: 40,
		AddonName:          "Exclusivity",
		AddonCategory:      CategoryExclusivity,
		Active:             true,
	}

	result, err := c.BuildQuote(
		[]Selection{{TalentID: 1, DeliverableID: 10, Quantity: 1}},
		nil, nil,
		[]Rule{exclusivity},
		Settings{},
	)
	require.NoError(t, err)
	require.Len(t, result.ManualAddons, 1)
	assert.Equal(t, "Exclusivity", result.ManualAddons[0].DeliverableName)
	// manual addons never become line items on their own
	assert.Len(t, result.Items, 1)
}

func TestBuildQuoteDeterministicApartFromIDs(t *testing.T) {
	settings := Settings{CommissionRatePercent: 15, ASFRatePercent: 5, ASFEnabled: true}
	bases := []Selection{
		{TalentID: 1, DeliverableID: 10, Quantity: 2},
		{TalentID: 2, DeliverableID: 10, Quantity: 1},
	}
	addons := []AddonSelection{{TalentID: 1, DeliverableID: 30, BaseDeliverableID: 10, Quantity: 1}}
	rules := []Rule{boostingRule()}

	first, err := testComposer().BuildQuote(bases, addons, nil, rules, settings)
	require.NoError(t, err)
	second, err := testComposer().BuildQuote(bases, addons, nil, rules, settings)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
