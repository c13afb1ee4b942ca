// Package topics provides database operations for topics within categories.
package topics

import (
	"gorm.io/gorm"

	"github.com/edtailor/backend/internal/entities"
)

// Repository handles all topic database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new topics repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves all topics for a language in primary-key order.
func (r *Repository) List(language string) ([]entities.Topic, error) {
	var topics []entities.Topic
	err := r.db.Where("language = ?", language).Order("id ASC").Find(&topics).Error
	return topics, err
}

// GetByID retrieves a topic by ID.
func (r *Repository) GetByID(id uint) (*entities.Topic, error) {
	var topic entities.Topic
	if err := r.db.First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// GetBySlug retrieves a topic by its slug. Slugs are globally unique.
func (r *Repository) GetBySlug(slug string) (*entities.Topic, error) {
	var topic entities.Topic
	if err := r.db.Where("slug = ?", slug).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// Create inserts a new topic.
func (r *Repository) Create(topic *entities.Topic) error {
	return r.db.Create(topic).Error
}

// Update overwrites every base field of an existing topic.
func (r *Repository) Update(id uint, in *entities.Topic) (*entities.Topic, error) {
	var topic entities.Topic
	if err := r.db.First(&topic, id).Error; err != nil {
		return nil, err
	}

	topic.CategoryID = in.CategoryID
	topic.Name = in.Name
	topic.Description = in.Description
	topic.Slug = in.Slug
	topic.Language = in.Language

	if err := r.db.Save(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

// Delete removes a topic and, via cascade, its lessons.
func (r *Repository) Delete(id uint) error {
	var topic entities.Topic
	if err := r.db.First(&topic, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&topic).Error
}
