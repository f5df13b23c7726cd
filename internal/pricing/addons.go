// internal/pricing/addons.go
package pricing

import "sort"

// BaseSelection is one currently-selected (talent, base deliverable) pick the
// addon engine derives from.
type BaseSelection struct {
	TalentID        uint
	TalentName      string
	DeliverableID   uint
	DeliverableName string
	DisplayOrder    int
	Rate            int64
}

// Rule is one active base→addon mapping. A nil Multiplier marks a
// flat/manually-priced addon (e.g. exclusivity) that is surfaced but never
// auto-priced.
type Rule struct {
	BaseDeliverableID  uint
	AddonDeliverableID uint
	AddonName          string
	AddonCategory      Category
	Multiplier         *float64
	Active             bool
}

// CalculatedAddon is a derived addon line offer. Its identity is the
// (addon deliverable, base deliverable) pair per talent: the same addon
// against two different base deliverables yields two independent entries,
// each with its own derived rate.
type CalculatedAddon struct {
	TalentID          uint
	TalentName        string
	DeliverableID     uint
	DeliverableName   string
	Category          Category
	BaseDeliverableID uint
	BaseName          string
	Rate              int64

	baseOrder int
}

// ManualAddon is an addon made available by a null-multiplier rule; the rate
// must be entered by hand, so it is excluded from automatic line generation.
type ManualAddon struct {
	TalentID          uint
	TalentName        string
	DeliverableID     uint
	DeliverableName   string
	Category          Category
	BaseDeliverableID uint
	BaseName          string
}

// ComputeAddons derives the full addon set for the given base selections and
// rules. Addons have no independent existence: they are recomputed from
// scratch on every call, so deselecting a base item drops its dependents on
// the next computation. Output is grouped by addon category, then ordered by
// the base deliverable's display order; identical inputs always produce the
// identical set.
func ComputeAddons(bases []BaseSelection, rules []Rule) ([]CalculatedAddon, []ManualAddon) {
	var calculated []CalculatedAddon
	var manual []ManualAddon

	for _, base := range bases {
		for _, rule := range rules {
			if !rule.Active || rule.BaseDeliverableID != base.DeliverableID {
				continue
			}
			if rule.Multiplier == nil {
				manual = append(manual, ManualAddon{
					TalentID:          base.TalentID,
					TalentName:        base.TalentName,
					DeliverableID:     rule.AddonDeliverableID,
					DeliverableName:   rule.AddonName,
					Category:          rule.AddonCategory,
					BaseDeliverableID: base.DeliverableID,
					BaseName:          base.DeliverableName,
				})
				continue
			}
			if *rule.Multiplier <= 0 {
				continue
			}
			calculated = append(calculated, CalculatedAddon{
				TalentID:          base.TalentID,
				TalentName:        base.TalentName,
				DeliverableID:     rule.AddonDeliverableID,
				DeliverableName:   rule.AddonName,
				Category:          rule.AddonCategory,
				BaseDeliverableID: base.DeliverableID,
				BaseName:          base.DeliverableName,
				Rate:              MultiplyRate(base.Rate, *rule.Multiplier),
				baseOrder:         base.DisplayOrder,
			})
		}
	}

	sort.SliceStable(calculated, func(i, j int) bool {
		if calculated[i].Category != calculated[j].Category {
			return calculated[i].Category < calculated[j].Category
		}
		return calculated[i].baseOrder < calculated[j].baseOrder
	})
	sort.SliceStable(manual, func(i, j int) bool {
		if manual[i].Category != manual[j].Category {
			return manual[i].Category < manual[j].Category
		}
		return manual[i].BaseDeliverableID < manual[j].BaseDeliverableID
	})

	return calculated, manual
}
