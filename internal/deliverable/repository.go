// internal/deliverable/repository.go
package deliverable

import (
	"gorm.io/gorm"

	"github.com/rosterhq/api-agency/internal/pricing"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(d *Deliverable) error {
	return r.DB.Create(d).Error
}

func (r *Repository) FindByID(id uint) (*Deliverable, error) {
	var d Deliverable
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) ListAll() ([]Deliverable, error) {
	var list []Deliverable
	err := r.DB.Order("display_order, name").Find(&list).Error
	return list, err
}

func (r *Repository) Update(d *Deliverable) error {
	return r.DB.Save(d).Error
}

func (r *Repository) Delete(d *Deliverable) error {
	return r.DB.Delete(d).Error
}

// Index returns the id→info snapshot the pricing composer works against.
func (r *Repository) Index() (map[uint]pricing.DeliverableInfo, error) {
	list, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	index := make(map[uint]pricing.DeliverableInfo, len(list))
	for _, d := range list {
		index[d.ID] = d.PricingInfo()
	}
	return index, nil
}

func (r *Repository) CreateRule(rule *AddonRule) error {
	return r.DB.Create(rule).Error
}

func (r *Repository) FindRuleByID(id uint) (*AddonRule, error) {
	var rule AddonRule
	if err := r.DB.First(&rule, id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *Repository) ListRules(activeOnly bool) ([]AddonRule, error) {
	var rules []AddonRule
	q := r.DB.Order("base_deliverable_id, addon_deliverable_id")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Find(&rules).Error
	return rules, err
}

func (r *Repository) UpdateRule(rule *AddonRule) error {
	return r.DB.Save(rule).Error
}

func (r *Repository) DeleteRule(rule *AddonRule) error {
	return r.DB.Delete(rule).Error
}

// ActivePricingRules loads the active rules joined with their addon
// deliverables, in the shape the addon engine consumes.
func (r *Repository) ActivePricingRules() ([]pricing.Rule, error) {
	rules, err := r.ListRules(true)
	if err != nil {
		return nil, err
	}
	index, err := r.Index()
	if err != nil {
		return nil, err
	}

	out := make([]pricing.Rule, 0, len(rules))
	for _, rule := range rules {
		addon, ok := index[rule.AddonDeliverableID]
		if !ok {
			// rule pointing at a deleted deliverable; skip rather than fail
			continue
		}
		out = append(out, pricing.Rule{
			BaseDeliverableID:  rule.BaseDeliverableID,
			AddonDeliverableID: rule.AddonDeliverableID,
			AddonName:          addon.Name,
			AddonCategory:      addon.Category,
			Multiplier:         rule.Multiplier,
			Active:             rule.IsActive,
		})
	}
	return out, nil
}
