package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multiplier(f float64) *float64 { return &f }

func TestComputeAddonsDerivesRates(t *testing.T) {
	bases := []BaseSelection{
		{TalentID: 1, TalentName: "Ava", DeliverableID: 10, DeliverableName: "Instagram Post", DisplayOrder: 1, Rate: 100000},
	}
	rules := []Rule{
		{BaseDeliverableID: 10, AddonDeliverableID: 30, AddonName: "Talent Boosting", AddonCategory: CategoryTalentBoosting, Multiplier: multiplier(0.30), Active: true},
	}

	calculated, manual := ComputeAddons(bases, rules)
	require.Len(t, calculated, 1)
	assert.Empty(t, manual)
	assert.Equal(t, int64(30000), calculated[0].Rate)
	assert.Equal(t, uint(10), calculated[0].BaseDeliverableID)
	assert.Equal(t, CategoryTalentBoosting, calculated[0].Category)
}

func TestComputeAddonsDropsDeselectedBase(t *testing.T) {
	rules := []Rule{
		{BaseDeliverableID: 10, AddonDeliverableID: 30, AddonName: "Talent Boosting", AddonCategory: CategoryTalentBoosting, Multiplier: multiplier(0.30), Active: true},
	}
	bases := []BaseSelection{{TalentID: 1, DeliverableID: 10, Rate: 100000}}

	calculated, _ := ComputeAddons(bases, rules)
	require.Len(t, calculated, 1)

	// base deselected: the dependent addon has no independent existence
	calculated, _ = ComputeAddons(nil, rules)
	assert.Empty(t, calculated)
}

func TestComputeAddonsIgnoresInactiveRules(t *testing.T) {
	bases := []BaseSelection{{TalentID: 1, DeliverableID: 10, Rate: 100000}}
	rules := []Rule{
		{BaseDeliverableID: 10, AddonDeliverableID: 30, Multiplier: multiplier(0.30), Active: false},
		{BaseDeliverableID: 99, AddonDeliverableID: 30, Multiplier: multiplier(0.30), Active: true},
	}
	calculated, manual := ComputeAddons(bases, rules)
	assert.Empty(t, calculated)
	assert.Empty(t, manual)
}

func TestComputeAddonsManualWhenMultiplierNil(t *testing.T) {
	bases := []BaseSelection{{TalentID: 1, DeliverableID: 10, DeliverableName: "Instagram Post", Rate: 100000}}
	rules := []Rule{
		{BaseDeliverableID: 10, AddonDeliverableID: 40, AddonName: "Exclusivity", AddonCategory: CategoryExclusivity, Multiplier: nil, Active: true},
	}
	calculated, manual := ComputeAddons(bases, rules)
	assert.Empty(t, calculated)
	require.Len(t, manual, 1)
	assert.Equal(t, "Exclusivity", manual[0].DeliverableName)
	assert.Equal(t, "Instagram Post", manual[0].BaseName)
}

func TestComputeAddonsIdentityIsAddonBasePair(t *testing.T) {
	// the same addon against two bases yields two independent entries,
	// each with its own derived rate
	bases := []BaseSelection{
		{TalentID: 1, DeliverableID: 10, DeliverableName: "Instagram Post", DisplayOrder: 1, Rate: 100000},
		{TalentID: 1, DeliverableID: 11, DeliverableName: "Reel", DisplayOrder: 2, Rate: 150000},
	}
	rules := []Rule{
		{BaseDeliverableID: 10, AddonDeliverableID: 30, AddonName: "Talent Boosting", AddonCategory: CategoryTalentBoosting, Multiplier: multiplier(0.30), Active: true},
		{BaseDeliverableID: 11, AddonDeliverableID: 30, AddonName: "Talent Boosting", AddonCategory: CategoryTalentBoosting, Multiplier: multiplier(0.20), Active: true},
	}
	calculated, _ := ComputeAddons(bases, rules)
	require.Len(t, calculated, 2)
	assert.Equal(t, int64(30000), calculated[0].Rate)
	assert.Equal(t, uint(10), calculated[0].BaseDeliverableID)
	assert.Equal(t, int64(30000), calculated[1].Rate)
	assert.Equal(t, uint(11), calculated[1].BaseDeliverableID)
}

func TestComputeAddonsOrderingAndIdempotence(t *testing.T) {
	bases := []BaseSelection{
		{TalentID: 1, DeliverableID: 11, DisplayOrder: 2, Rate: 150000},
		{TalentID: 1, DeliverableID: 10, DisplayOrder: 1, Rate: 100000},
	}
	rules := []Rule{
		{BaseDeliverableID: 10, AddonDeliverableID: 30, AddonCategory: CategoryTalentBoosting, Multiplier: multiplier(0.30), Active: true},
		{BaseDeliverableID: 11, AddonDeliverableID: 20, AddonCategory: CategoryPaidAdRights, Multiplier: multiplier(0.50), Active: true},
		{BaseDeliverableID: 10, AddonDeliverableID: 20, AddonCategory: CategoryPaidAdRights, Multiplier: multiplier(0.50), Active: true},
	}

	first, _ := ComputeAddons(bases, rules)
	require.Len(t, first, 3)
	// grouped by addon category, then base display order
	assert.Equal(t, CategoryPaidAdRights, first[0].Category)
	assert.Equal(t, uint(10), first[0].BaseDeliverableID)
	assert.Equal(t, CategoryPaidAdRights, first[1].Category)
	assert.Equal(t, uint(11), first[1].BaseDeliverableID)
	assert.Equal(t, CategoryTalentBoosting, first[2].Category)

	second, _ := ComputeAddons(bases, rules)
	assert.Equal(t, first, second)
}
