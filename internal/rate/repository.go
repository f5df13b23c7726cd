// internal/rate/repository.go
package rate

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rosterhq/api-agency/internal/pricing"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Upsert creates or replaces the rate for a pair.
func (r *Repository) Upsert(rate *Rate) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "talent_id"}, {Name: "deliverable_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"base_rate", "updated_at"}),
	}).Create(rate).Error
}

func (r *Repository) FindByPair(talentID, deliverableID uint) (*Rate, error) {
	var rate Rate
	err := r.DB.Where("talent_id = ? AND deliverable_id = ?", talentID, deliverableID).First(&rate).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *Repository) ListByTalent(talentID uint) ([]Rate, error) {
	var rates []Rate
	err := r.DB.Where("talent_id = ?", talentID).Order("deliverable_id").Find(&rates).Error
	return rates, err
}

func (r *Repository) Delete(rate *Rate) error {
	return r.DB.Delete(rate).Error
}

// LoadBook reads every rate into the immutable snapshot the pricing core
// resolves against.
func (r *Repository) LoadBook() (*pricing.RateBook, error) {
	var rates []Rate
	if err := r.DB.Find(&rates).Error; err != nil {
		return nil, err
	}
	book := pricing.NewRateBook()
	for _, rate := range rates {
		book.Set(rate.TalentID, rate.DeliverableID, rate.BaseRate)
	}
	return book, nil
}
