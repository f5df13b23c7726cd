// internal/user/repository.go
package user

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(u *User) error {
	return r.DB.Create(u).Error
}

func (r *Repository) FindByID(id uint) (*User, error) {
	var u User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindByEmail(email string) (*User, error) {
	var u User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) ListAll() ([]User, error) {
	var users []User
	err := r.DB.Order("name").Find(&users).Error
	return users, err
}
