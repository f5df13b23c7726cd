// internal/pricing/totals.go
package pricing

// Settings carries the per-computation markup configuration. Rates are plain
// percentages: 15 means 15%.
type Settings struct {
	CommissionRatePercent float64 `json:"commissionRatePercent"`
	ASFRatePercent        float64 `json:"asfRatePercent"`
	ASFEnabled            bool    `json:"asfEnabled"`
}

// Totals is the derived aggregate of a line-item set, all in minor units.
type Totals struct {
	TalentFees  int64 `json:"talentFees"`
	Commissions int64 `json:"commissions"`
	ASFTotal    int64 `json:"asfTotal"`
	Total       int64 `json:"total"`
}

// ComputeTotals aggregates the line items. Commission applies to every line,
// agency_fee included; ASF applies only to categories marked IncludedInASF
// and only when enabled. Each line's contribution is rounded half-up before
// summing — never round the aggregate — so totals recompute bit-identically
// for identical inputs and line edits cannot shift other lines by a cent.
// An empty item list yields all zeros.
func ComputeTotals(items []LineItem, s Settings) Totals {
	var t Totals
	for _, li := range items {
		total := li.Total()
		t.TalentFees += total
		t.Commissions += PercentOf(total, s.CommissionRatePercent)
		if s.ASFEnabled && SpecFor(li.Category).IncludedInASF {
			t.ASFTotal += PercentOf(total, s.ASFRatePercent)
		}
	}
	t.Total = t.TalentFees + t.Commissions + t.ASFTotal
	return t
}
