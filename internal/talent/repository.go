// internal/talent/repository.go
package talent

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(t *Talent) error {
	return r.DB.Create(t).Error
}

func (r *Repository) FindByID(id uint) (*Talent, error) {
	var t Talent
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) ListAll() ([]Talent, error) {
	var talents []Talent
	err := r.DB.Order("name").Find(&talents).Error
	return talents, err
}

func (r *Repository) ListByStatus(status string) ([]Talent, error) {
	var talents []Talent
	err := r.DB.Where("status = ?", status).Order("name").Find(&talents).Error
	return talents, err
}

func (r *Repository) Update(t *Talent) error {
	return r.DB.Save(t).Error
}

func (r *Repository) Delete(t *Talent) error {
	return r.DB.Delete(t).Error
}

// NameIndex returns an id→name map for denormalizing line items.
func (r *Repository) NameIndex() (map[uint]string, error) {
	talents, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	index := make(map[uint]string, len(talents))
	for _, t := range talents {
		index[t.ID] = t.Name
	}
	return index, nil
}
