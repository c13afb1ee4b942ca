// Package fabrics provides database operations for the fabric reference
// library.
package fabrics

import (
	"gorm.io/gorm"

	"github.com/edtailor/backend/internal/entities"
)

// Repository handles all fabric database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new fabrics repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves all fabrics for a language in primary-key order.
func (r *Repository) List(language string) ([]entities.Fabric, error) {
	var fabrics []entities.Fabric
	err := r.db.Where("language = ?", language).Order("id ASC").Find(&fabrics).Error
	return fabrics, err
}

// GetByID retrieves a fabric by ID.
func (r *Repository) GetByID(id uint) (*entities.Fabric, error) {
	var fabric entities.Fabric
	if err := r.db.First(&fabric, id).Error; err != nil {
		return nil, err
	}
	return &fabric, nil
}

// GetByNameAndLanguage retrieves a fabric by its seeding natural key.
func (r *Repository) GetByNameAndLanguage(name, language string) (*entities.Fabric, error) {
	var fabric entities.Fabric
	err := r.db.Where("name = ? AND language = ?", name, language).First(&fabric).Error
	if err != nil {
		return nil, err
	}
	return &fabric, nil
}

// Create inserts a new fabric.
func (r *Repository) Create(fabric *entities.Fabric) error {
	return r.db.Create(fabric).Error
}

// Update overwrites every base field of an existing fabric.
func (r *Repository) Update(id uint, in *entities.Fabric) (*entities.Fabric, error) {
	var fabric entities.Fabric
	if err := r.db.First(&fabric, id).Error; err != nil {
		return nil, err
	}

	fabric.Name = in.Name
	fabric.Description = in.Description
	fabric.FiberContent = in.FiberContent
	fabric.FiberType = in.FiberType
	fabric.Weight = in.Weight
	fabric.WeaveType = in.WeaveType
	fabric.Drape = in.Drape
	fabric.Texture = in.Texture
	fabric.CareInstructions = in.CareInstructions
	fabric.CommonUses = in.CommonUses
	fabric.Properties = in.Properties
	fabric.Season = in.Season
	fabric.ImageURL = in.ImageURL
	fabric.Language = in.Language

	if err := r.db.Save(&fabric).Error; err != nil {
		return nil, err
	}
	return &fabric, nil
}

// Delete removes a fabric and its join rows.
func (r *Repository) Delete(id uint) error {
	var fabric entities.Fabric
	if err := r.db.First(&fabric, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&fabric).Error
}

// AddGarment links a garment to a fabric with an optional usage note
// (e.g. "classic suiting weight for structured jackets").
func (r *Repository) AddGarment(fabricID, garmentID uint, usageNote string) error {
	var fabric entities.Fabric
	if err := r.db.First(&fabric, fabricID).Error; err != nil {
		return err
	}
	var garment entities.Garment
	if err := r.db.First(&garment, garmentID).Error; err != nil {
		return err
	}
	return r.db.Create(&entities.FabricGarment{
		FabricID:  fabricID,
		GarmentID: garmentID,
		UsageNote: usageNote,
	}).Error
}

// RemoveGarment unlinks a garment from a fabric.
func (r *Repository) RemoveGarment(fabricID, garmentID uint) error {
	return r.db.Where("fabric_id = ? AND garment_id = ?", fabricID, garmentID).
		Delete(&entities.FabricGarment{}).Error
}

// GetWithGarments retrieves a fabric with its linked garments preloaded.
func (r *Repository) GetWithGarments(id uint) (*entities.Fabric, error) {
	var fabric entities.Fabric
	if err := r.db.Preload("Garments").First(&fabric, id).Error; err != nil {
		return nil, err
	}
	return &fabric, nil
}
