// Package garments provides database operations for the garment
// encyclopedia.
package garments

import (
	"gorm.io/gorm"

	"github.com/edtailor/backend/internal/entities"
)

// Repository handles all garment database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new garments repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves all garments for a language in primary-key order.
func (r *Repository) List(language string) ([]entities.Garment, error) {
	var garments []entities.Garment
	err := r.db.Where("language = ?", language).Order("id ASC").Find(&garments).Error
	return garments, err
}

// GetByID retrieves a garment by ID.
func (r *Repository) GetByID(id uint) (*entities.Garment, error) {
	var garment entities.Garment
	if err := r.db.First(&garment, id).Error; err != nil {
		return nil, err
	}
	return &garment, nil
}

// GetByNameAndLanguage retrieves a garment by its seeding natural key.
func (r *Repository) GetByNameAndLanguage(name, language string) (*entities.Garment, error) {
	var garment entities.Garment
	err := r.db.Where("name = ? AND language = ?", name, language).First(&garment).Error
	if err != nil {
		return nil, err
	}
	return &garment, nil
}

// Create inserts a new garment.
func (r *Repository) Create(garment *entities.Garment) error {
	return r.db.Create(garment).Error
}

// Update overwrites every base field of an existing garment.
func (r *Repository) Update(id uint, in *entities.Garment) (*entities.Garment, error) {
	var garment entities.Garment
	if err := r.db.First(&garment, id).Error; err != nil {
		return nil, err
	}

	garment.Name = in.Name
	garment.Description = in.Description
	garment.GarmentType = in.GarmentType
	garment.FormalityLevel = in.FormalityLevel
	garment.ConstructionDetails = in.ConstructionDetails
	garment.KeyFeatures = in.KeyFeatures
	garment.HistoricalContext = in.HistoricalContext
	garment.StylingTips = in.StylingTips
	garment.ImageURL = in.ImageURL
	garment.Language = in.Language

	if err := r.db.Save(&garment).Error; err != nil {
		return nil, err
	}
	return &garment, nil
}

// Delete removes a garment and its join rows.
func (r *Repository) Delete(id uint) error {
	var garment entities.Garment
	if err := r.db.First(&garment, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&garment).Error
}
