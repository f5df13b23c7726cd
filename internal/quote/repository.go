// internal/quote/repository.go
package quote

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CreateWithItems persists the quote and its line items in one transaction.
// Either the whole snapshot lands or nothing does.
func (r *Repository) CreateWithItems(q *Quote, items []LineItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].QuoteID = q.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) FindByID(id uint) (*Quote, error) {
	var q Quote
	err := r.DB.Preload("LineItems").Preload("Revisions").First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *Repository) ListAll() ([]Quote, error) {
	var quotes []Quote
	err := r.DB.Preload("LineItems").Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

func (r *Repository) ListByClient(clientID uint) ([]Quote, error) {
	var quotes []Quote
	err := r.DB.Preload("LineItems").Where("client_id = ?", clientID).
		Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

func (r *Repository) ListByStatus(status string) ([]Quote, error) {
	var quotes []Quote
	err := r.DB.Preload("LineItems").Where("status = ?", status).
		Order("created_at DESC").Find(&quotes).Error
	return quotes, err
}

func (r *Repository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&Quote{}).Where("id = ?", id).Update("status", status).Error
}

func (r *Repository) Delete(q *Quote) error {
	return r.DB.Delete(q).Error
}

func (r *Repository) CreateRevision(rev *Revision) error {
	return r.DB.Create(rev).Error
}

func (r *Repository) ListRevisions(quoteID uint) ([]Revision, error) {
	var revs []Revision
	err := r.DB.Where("quote_id = ?", quoteID).Order("created_at").Find(&revs).Error
	return revs, err
}
