package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgencyFeeUnitPrice(t *testing.T) {
	cases := []struct {
		months int
		want   int64
	}{
		{1, 50000},
		{2, 60000},
		{3, 70000},
		{4, 80000},
		{12, 160000},
		// quantities below 1 floor to the first-month price
		{0, 50000},
		{-3, 50000},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, AgencyFeeUnitPrice(c.months), "months=%d", c.months)
	}
}

func TestSpecFor(t *testing.T) {
	agency := SpecFor(CategoryAgencyFee)
	assert.False(t, agency.IncludedInASF)
	// quantity is baked into the unit price, never multiplied again
	assert.Equal(t, int64(70000), agency.UnitPrice(0, 3))
	assert.Equal(t, int64(70000), agency.LineTotal(70000, 3))

	content := SpecFor(CategoryContent)
	assert.True(t, content.IncludedInASF)
	assert.Equal(t, int64(25000), content.UnitPrice(25000, 4))
	assert.Equal(t, int64(100000), content.LineTotal(25000, 4))

	// unknown categories fall back to linear pricing
	other := SpecFor(Category("bespoke"))
	assert.True(t, other.IncludedInASF)
	assert.Equal(t, int64(200), other.LineTotal(100, 2))
}

func TestPercentOfRoundsHalfUpPerLine(t *testing.T) {
	// 333 × 15% = 49.95 → 50
	assert.Equal(t, int64(50), PercentOf(333, 15))
	assert.Equal(t, int64(0), PercentOf(0, 15))
	assert.Equal(t, int64(7500), PercentOf(50000, 15))
	// 1 × 0.5% = 0.005 → ties round up
	assert.Equal(t, int64(1), PercentOf(100, 0.5))
}

func TestMultiplyRate(t *testing.T) {
	assert.Equal(t, int64(30000), MultiplyRate(100000, 0.30))
	assert.Equal(t, int64(50), MultiplyRate(333, 0.15))
	assert.Equal(t, int64(0), MultiplyRate(0, 0.30))
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategoryUGC))
	assert.True(t, ValidCategory(CategoryAgencyFee))
	assert.False(t, ValidCategory(Category("merchandise")))
}
