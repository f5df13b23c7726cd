// internal/pricing/composer.go
package pricing

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrInvalidQuantity rejects quantities below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrNoRate rejects adding a line for a pair with no configured rate.
	ErrNoRate = errors.New("no rate configured for this talent and deliverable")
	// ErrEmptyBulkAdd reports a bulk add in which no talent had a usable rate.
	ErrEmptyBulkAdd = errors.New("no talents have rates for this deliverable")
	// ErrNegativeRate rejects custom items with a negative manual rate.
	ErrNegativeRate = errors.New("manual rate must be zero or positive")
	// ErrUnknownDeliverable rejects references to deliverables outside the snapshot.
	ErrUnknownDeliverable = errors.New("unknown deliverable")
	// ErrUnknownTalent rejects references to talents outside the snapshot.
	ErrUnknownTalent = errors.New("unknown talent")
)

// DeliverableInfo is the slice of a deliverable the composer needs.
type DeliverableInfo struct {
	Name         string
	Category     Category
	DisplayOrder int
}

// Composer assembles quote line items from user selections against a fixed
// reference-data snapshot. All operations take the current item slice and
// return a new one; the input is never mutated, so a failed operation leaves
// the caller's state exactly as it was.
type Composer struct {
	Book         *RateBook
	Deliverables map[uint]DeliverableInfo
	Talents      map[uint]string

	// NewID generates line-item identifiers. Overridable in tests; defaults
	// to random UUIDs.
	NewID func() string
}

// NewComposer builds a composer over the given snapshot.
func NewComposer(book *RateBook, deliverables map[uint]DeliverableInfo, talents map[uint]string) *Composer {
	return &Composer{
		Book:         book,
		Deliverables: deliverables,
		Talents:      talents,
		NewID:        uuid.NewString,
	}
}

func (c *Composer) newItem(talentID, deliverableID uint, quantity int, unitPrice int64) (LineItem, error) {
	d, ok := c.Deliverables[deliverableID]
	if !ok {
		return LineItem{}, ErrUnknownDeliverable
	}
	name, ok := c.Talents[talentID]
	if !ok {
		return LineItem{}, ErrUnknownTalent
	}
	return LineItem{
		ID:              c.NewID(),
		TalentID:        talentID,
		TalentName:      name,
		DeliverableID:   deliverableID,
		DeliverableName: d.Name,
		Category:        d.Category,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
	}, nil
}

// AddItem appends one line for the pair at the resolved rate. Duplicate
// (talent, deliverable) pairs are allowed as distinct rows; nothing merges.
// agency_fee bypasses the rate book and prices via the tier table; every
// other category requires a configured rate above 0. On error the original
// slice comes back untouched.
func (c *Composer) AddItem(items []LineItem, talentID, deliverableID uint, quantity int) ([]LineItem, error) {
	if quantity < 1 {
		return items, ErrInvalidQuantity
	}
	d, ok := c.Deliverables[deliverableID]
	if !ok {
		return items, ErrUnknownDeliverable
	}

	var unit int64
	if d.Category == CategoryAgencyFee {
		unit = SpecFor(d.Category).UnitPrice(0, quantity)
	} else {
		rate := c.Book.Get(talentID, deliverableID)
		if rate <= 0 {
			return items, ErrNoRate
		}
		unit = SpecFor(d.Category).UnitPrice(rate, quantity)
	}

	li, err := c.newItem(talentID, deliverableID, quantity, unit)
	if err != nil {
		return items, err
	}
	return append(cloneItems(items), li), nil
}

// AddBulk applies AddItem semantics per talent. Talents without a usable rate
// are skipped rather than failing the batch; when every talent is skipped
// nothing is added and a single ErrEmptyBulkAdd is returned. The add is
// all-or-nothing over the valid subset — callers never observe a partial
// batch.
func (c *Composer) AddBulk(items []LineItem, talentIDs []uint, deliverableID uint, quantity int) ([]LineItem, error) {
	if quantity < 1 {
		return items, ErrInvalidQuantity
	}
	out := cloneItems(items)
	added := 0
	for _, tid := range talentIDs {
		next, err := c.AddItem(out, tid, deliverableID, quantity)
		if err != nil {
			continue
		}
		out = next
		added++
	}
	if added == 0 {
		return items, ErrEmptyBulkAdd
	}
	return out, nil
}

// AddCustomItem appends a line at a caller-supplied rate, bypassing the rate
// book. Used for off-rate-card or negotiated pricing; a zero rate is allowed
// here, a negative one is not.
func (c *Composer) AddCustomItem(items []LineItem, talentID, deliverableID uint, manualRate int64, quantity int) ([]LineItem, error) {
	if quantity < 1 {
		return items, ErrInvalidQuantity
	}
	if manualRate < 0 {
		return items, ErrNegativeRate
	}
	li, err := c.newItem(talentID, deliverableID, quantity, manualRate)
	if err != nil {
		return items, err
	}
	return append(cloneItems(items), li), nil
}

// AddCalculatedAddon appends a line for an addon the engine derived.
func (c *Composer) AddCalculatedAddon(items []LineItem, addon CalculatedAddon, quantity int) ([]LineItem, error) {
	if quantity < 1 {
		return items, ErrInvalidQuantity
	}
	return append(cloneItems(items), LineItem{
		ID:              c.NewID(),
		TalentID:        addon.TalentID,
		TalentName:      addon.TalentName,
		DeliverableID:   addon.DeliverableID,
		DeliverableName: addon.DeliverableName,
		Category:        addon.Category,
		Quantity:        quantity,
		UnitPrice:       addon.Rate,
	}), nil
}

// UpdateQuantity sets a new quantity on the identified line. Quantities below
// 1 are ignored, returning the slice unchanged. For agency_fee lines the unit
// price is re-derived from the tier formula: quantity and unit price are
// coupled for that category only.
func UpdateQuantity(items []LineItem, id string, quantity int) []LineItem {
	if quantity < 1 {
		return items
	}
	out := cloneItems(items)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		out[i].Quantity = quantity
		if out[i].Category == CategoryAgencyFee {
			out[i].UnitPrice = SpecFor(CategoryAgencyFee).UnitPrice(0, quantity)
		}
		return out
	}
	return items
}

// RemoveItem drops the identified line. Confirmation is the caller's problem;
// once invoked the removal is unconditional.
func RemoveItem(items []LineItem, id string) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, li := range items {
		if li.ID != id {
			out = append(out, li)
		}
	}
	return out
}

// DuplicateItem appends a copy of the identified line under a fresh ID,
// placed directly after the original.
func (c *Composer) DuplicateItem(items []LineItem, id string) []LineItem {
	for i, li := range items {
		if li.ID != id {
			continue
		}
		dup := li
		dup.ID = c.NewID()
		out := make([]LineItem, 0, len(items)+1)
		out = append(out, items[:i+1]...)
		out = append(out, dup)
		out = append(out, items[i+1:]...)
		return out
	}
	return items
}

func cloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
