// internal/pricing/category.go
package pricing

import "math"

// Category classifies what kind of deliverable a line item sells.
type Category string

const (
	CategoryContent        Category = "content"
	CategoryUGC            Category = "ugc"
	CategoryPaidAdRights   Category = "paid_ad_rights"
	CategoryTalentBoosting Category = "talent_boosting"
	CategoryExclusivity    Category = "exclusivity"
	CategoryAgencyFee      Category = "agency_fee"
)

// ValidCategory reports whether c is one of the known deliverable categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryContent, CategoryUGC, CategoryPaidAdRights,
		CategoryTalentBoosting, CategoryExclusivity, CategoryAgencyFee:
		return true
	}
	return false
}

// Agency service fee tiers, in minor currency units: $500 for the first
// month, $100 for every month after it.
const (
	agencyFeeFirstMonth = 50000
	agencyFeeExtraMonth = 10000
)

// AgencyFeeUnitPrice returns the tiered agency-service-fee price for the
// given number of months. The quantity on an agency_fee line encodes months
// and the returned unit price already contains the whole tier total, so the
// line total for this category is the unit price itself, never multiplied by
// quantity again. Quantities below 1 floor to the first-month price.
func AgencyFeeUnitPrice(months int) int64 {
	extra := months - 1
	if extra < 0 {
		extra = 0
	}
	return agencyFeeFirstMonth + agencyFeeExtraMonth*int64(extra)
}

// CategorySpec describes how a category is priced and which percentage
// markups apply to it. Adding a category means adding one table entry, not
// new branches in the calculators.
type CategorySpec struct {
	// UnitPrice derives the stored unit price from the configured base rate
	// and the requested quantity.
	UnitPrice func(baseRate int64, quantity int) int64
	// LineTotal computes the line total from the stored unit price and
	// quantity.
	LineTotal func(unitPrice int64, quantity int) int64
	// IncludedInASF marks whether the agency-service-fee percentage applies
	// to lines of this category. agency_fee lines are exempt: they already
	// are a service fee. Commission still applies to them (observed product
	// behavior; the asymmetry is deliberate).
	IncludedInASF bool
}

func linearUnitPrice(baseRate int64, _ int) int64 { return baseRate }

func linearLineTotal(unitPrice int64, quantity int) int64 {
	return unitPrice * int64(quantity)
}

var agencyFeeSpec = CategorySpec{
	UnitPrice: func(_ int64, quantity int) int64 { return AgencyFeeUnitPrice(quantity) },
	LineTotal: func(unitPrice int64, _ int) int64 { return unitPrice },
}

var defaultSpec = CategorySpec{
	UnitPrice:     linearUnitPrice,
	LineTotal:     linearLineTotal,
	IncludedInASF: true,
}

var categorySpecs = map[Category]CategorySpec{
	CategoryAgencyFee: agencyFeeSpec,
}

// SpecFor returns the pricing spec for a category. Categories without a
// special entry price linearly and participate in ASF.
func SpecFor(c Category) CategorySpec {
	if s, ok := categorySpecs[c]; ok {
		return s
	}
	return defaultSpec
}

// roundHalfUp rounds a non-negative float to the nearest integer minor unit,
// ties away from zero. All derived money in the engine goes through this so
// recomputation can never drift.
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// MultiplyRate derives an addon rate from a base rate and a fractional
// multiplier, rounded half-up to the nearest minor unit.
func MultiplyRate(baseRate int64, multiplier float64) int64 {
	return roundHalfUp(float64(baseRate) * multiplier)
}

// PercentOf applies a percentage (15 means 15%) to an amount in minor units,
// rounded half-up per call. Callers sum per-line results, never round the
// aggregate.
func PercentOf(amount int64, percent float64) int64 {
	return roundHalfUp(float64(amount) * percent / 100)
}
