// internal/pricing/ratebook.go
package pricing

// rateKey identifies one talent×deliverable rate entry.
type rateKey struct {
	talentID      uint
	deliverableID uint
}

// RateBook is a read-only snapshot of the configured base rates, in minor
// currency units. Absence of an entry means "no rate configured" and resolves
// to 0; a stored 0 is indistinguishable from absent on purpose, both are
// unsellable. The book knows nothing about agency-fee tiering — callers
// bypass it entirely for that category.
type RateBook struct {
	rates map[rateKey]int64
}

// NewRateBook returns an empty rate book.
func NewRateBook() *RateBook {
	return &RateBook{rates: make(map[rateKey]int64)}
}

// Set records the base rate for a talent×deliverable pair.
func (b *RateBook) Set(talentID, deliverableID uint, minorUnits int64) {
	b.rates[rateKey{talentID, deliverableID}] = minorUnits
}

// Get returns the configured base rate for the pair, or 0 when none exists.
// Safe to call on a nil or empty book, so callers can render optimistically
// before rates have loaded.
func (b *RateBook) Get(talentID, deliverableID uint) int64 {
	if b == nil {
		return 0
	}
	return b.rates[rateKey{talentID, deliverableID}]
}

// Len reports how many rate entries the snapshot holds.
func (b *RateBook) Len() int {
	if b == nil {
		return 0
	}
	return len(b.rates)
}
