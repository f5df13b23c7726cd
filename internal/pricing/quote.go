// internal/pricing/quote.go
package pricing

import "fmt"

// Selection is a direct (talent, deliverable, quantity) pick.
type Selection struct {
	TalentID      uint `json:"talentId"`
	DeliverableID uint `json:"deliverableId"`
	Quantity      int  `json:"quantity"`
}

// AddonSelection picks a derived addon. BaseDeliverableID names the base the
// addon hangs off: the same addon deliverable against two bases is two
// distinct selections with independent quantities.
type AddonSelection struct {
	TalentID          uint `json:"talentId"`
	DeliverableID     uint `json:"deliverableId"`
	BaseDeliverableID uint `json:"baseDeliverableId"`
	Quantity          int  `json:"quantity"`
}

// CustomSelection is an off-rate-card pick with a caller-supplied rate.
type CustomSelection struct {
	TalentID      uint  `json:"talentId"`
	DeliverableID uint  `json:"deliverableId"`
	Rate          int64 `json:"rate"`
	Quantity      int   `json:"quantity"`
}

// QuoteResult is the assembled, persistable output of one computation.
type QuoteResult struct {
	Items        []LineItem    `json:"items"`
	Totals       Totals        `json:"totals"`
	ManualAddons []ManualAddon `json:"manualAddons"`
}

// BuildQuote assembles line items and totals from the selections against the
// composer's snapshot. Pure: same selections, rates, rules and settings give
// the same items and totals (line-item IDs aside), and it can be re-run
// safely after a persistence failure.
//
// Base selections that cannot be priced fail the whole build — a persisted
// quote never silently drops a requested line. Addon selections are filtered
// against the freshly computed addon set, so an addon whose base is no longer
// selected simply disappears instead of orphaning a stale rate.
func (c *Composer) BuildQuote(bases []Selection, addons []AddonSelection, custom []CustomSelection, rules []Rule, settings Settings) (QuoteResult, error) {
	var items []LineItem
	var err error

	baseSelections := make([]BaseSelection, 0, len(bases))
	for _, sel := range bases {
		items, err = c.AddItem(items, sel.TalentID, sel.DeliverableID, sel.Quantity)
		if err != nil {
			return QuoteResult{}, fmt.Errorf("talent %d, deliverable %d: %w", sel.TalentID, sel.DeliverableID, err)
		}
		d := c.Deliverables[sel.DeliverableID]
		baseSelections = append(baseSelections, BaseSelection{
			TalentID:        sel.TalentID,
			TalentName:      c.Talents[sel.TalentID],
			DeliverableID:   sel.DeliverableID,
			DeliverableName: d.Name,
			DisplayOrder:    d.DisplayOrder,
			Rate:            c.Book.Get(sel.TalentID, sel.DeliverableID),
		})
	}

	calculated, manual := ComputeAddons(baseSelections, rules)
	for _, ca := range calculated {
		qty, ok := selectedAddonQuantity(addons, ca)
		if !ok {
			continue
		}
		items, err = c.AddCalculatedAddon(items, ca, qty)
		if err != nil {
			return QuoteResult{}, fmt.Errorf("addon %q: %w", ca.DeliverableName, err)
		}
	}

	for _, sel := range custom {
		items, err = c.AddCustomItem(items, sel.TalentID, sel.DeliverableID, sel.Rate, sel.Quantity)
		if err != nil {
			return QuoteResult{}, fmt.Errorf("custom item for talent %d: %w", sel.TalentID, err)
		}
	}

	return QuoteResult{
		Items:        items,
		Totals:       ComputeTotals(items, settings),
		ManualAddons: manual,
	}, nil
}

func selectedAddonQuantity(addons []AddonSelection, ca CalculatedAddon) (int, bool) {
	for _, sel := range addons {
		if sel.TalentID == ca.TalentID &&
			sel.DeliverableID == ca.DeliverableID &&
			sel.BaseDeliverableID == ca.BaseDeliverableID {
			return sel.Quantity, true
		}
	}
	return 0, false
}
