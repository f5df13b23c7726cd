// internal/client/repository.go
package client

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Client) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByID(id uint) (*Client, error) {
	var c Client
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListAll() ([]Client, error) {
	var clients []Client
	err := r.DB.Order("company_name").Find(&clients).Error
	return clients, err
}

func (r *Repository) Update(c *Client) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Delete(c *Client) error {
	return r.DB.Delete(c).Error
}
