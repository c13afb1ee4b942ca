// Package categories provides database operations for the category catalog.
//
// This package implements the CategoryStore interface defined in
// internal/http/categories.go.
package categories

import (
	"gorm.io/gorm"

	"github.com/edtailor/backend/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves all categories for a language in primary-key order.
func (r *Repository) List(language string) ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Where("language = ?", language).Order("id ASC").Find(&categories).Error
	return categories, err
}

// GetByID retrieves a category by ID.
func (r *Repository) GetByID(id uint) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// GetBySlug retrieves a category by its slug. Slugs are globally unique.
func (r *Repository) GetBySlug(slug string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Create inserts a new category. Duplicate slugs surface as a storage error.
func (r *Repository) Create(category *entities.Category) error {
	return r.db.Create(category).Error
}

// Update overwrites every base field of an existing category. Missing
// optional values in the input clear the stored ones; nothing is merged.
func (r *Repository) Update(id uint, in *entities.Category) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}

	category.Name = in.Name
	category.Description = in.Description
	category.Slug = in.Slug
	category.ParentID = in.ParentID
	category.IconURL = in.IconURL
	category.Language = in.Language

	if err := r.db.Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category. Its topics, their lessons and any join rows go
// with it via the schema's cascade rules.
func (r *Repository) Delete(id uint) error {
	var category entities.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&category).Error
}

// ListTopics retrieves the topics under a category, filtered by language.
// Returns gorm.ErrRecordNotFound when the category itself does not exist.
func (r *Repository) ListTopics(categoryID uint, language string) ([]entities.Topic, error) {
	var category entities.Category
	if err := r.db.First(&category, categoryID).Error; err != nil {
		return nil, err
	}

	var topics []entities.Topic
	err := r.db.Where("category_id = ? AND language = ?", categoryID, language).
		Order("id ASC").Find(&topics).Error
	return topics, err
}
