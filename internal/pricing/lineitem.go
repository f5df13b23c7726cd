// internal/pricing/lineitem.go
package pricing

// LineItem is one priced row of a quote under construction. ID is a
// client-generated UUID, unique within the quote-building session. Names are
// denormalized for display so a persisted quote stays readable even after
// reference data changes.
type LineItem struct {
	ID              string   `json:"id"`
	TalentID        uint     `json:"talentId"`
	TalentName      string   `json:"talentName"`
	DeliverableID   uint     `json:"deliverableId"`
	DeliverableName string   `json:"deliverableName"`
	Category        Category `json:"category"`
	Quantity        int      `json:"quantity"`
	UnitPrice       int64    `json:"unitPrice"`
}

// Total returns the line total per the category's pricing spec: unit×quantity
// for ordinary categories, the unit price alone for agency_fee (its quantity
// is already baked into the unit price).
func (li LineItem) Total() int64 {
	return SpecFor(li.Category).LineTotal(li.UnitPrice, li.Quantity)
}

// TalentGroup is a read-only projection of line items by talent, for display.
// It is derived on demand and never a second source of truth.
type TalentGroup struct {
	TalentID   uint       `json:"talentId"`
	TalentName string     `json:"talentName"`
	Items      []LineItem `json:"items"`
	Subtotal   int64      `json:"subtotal"`
}

// GroupByTalent groups items by talent, preserving first-appearance order of
// talents and the item order within each group.
func GroupByTalent(items []LineItem) []TalentGroup {
	var groups []TalentGroup
	index := make(map[uint]int)
	for _, li := range items {
		i, ok := index[li.TalentID]
		if !ok {
			i = len(groups)
			index[li.TalentID] = i
			groups = append(groups, TalentGroup{TalentID: li.TalentID, TalentName: li.TalentName})
		}
		groups[i].Items = append(groups[i].Items, li)
		groups[i].Subtotal += li.Total()
	}
	return groups
}
