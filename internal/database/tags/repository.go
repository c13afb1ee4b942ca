// Package tags provides database operations for lesson tags.
package tags

import (
	"gorm.io/gorm"

	"github.com/edtailor/backend/internal/entities"
)

// Repository handles all tag database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new tags repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreate retrieves a tag by name or creates it. Tag names are globally
// unique.
func (r *Repository) GetOrCreate(name string) (*entities.Tag, error) {
	var tag entities.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err == gorm.ErrRecordNotFound {
		tag = entities.Tag{Name: name}
		if err := r.db.Create(&tag).Error; err != nil {
			return nil, err
		}
		return &tag, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// GetByID retrieves a tag by ID.
func (r *Repository) GetByID(id uint) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// List retrieves all tags in primary-key order.
func (r *Repository) List() ([]entities.Tag, error) {
	var tags []entities.Tag
	err := r.db.Order("id ASC").Find(&tags).Error
	return tags, err
}

// Delete removes a tag and its lesson associations.
func (r *Repository) Delete(id uint) error {
	var tag entities.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&tag).Error
}
