// Package terms provides database operations for the terminology glossary.
package terms

import (
	"gorm.io/gorm"

	"github.com/edtailor/backend/internal/entities"
)

// Repository handles all glossary term database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new terms repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List retrieves all terms for a language in primary-key order.
func (r *Repository) List(language string) ([]entities.Term, error) {
	var terms []entities.Term
	err := r.db.Where("language = ?", language).Order("id ASC").Find(&terms).Error
	return terms, err
}

// GetByID retrieves a term by ID.
func (r *Repository) GetByID(id uint) (*entities.Term, error) {
	var term entities.Term
	if err := r.db.First(&term, id).Error; err != nil {
		return nil, err
	}
	return &term, nil
}

// GetByTermAndLanguage retrieves a term by its (term, language) natural key.
func (r *Repository) GetByTermAndLanguage(name, language string) (*entities.Term, error) {
	var term entities.Term
	err := r.db.Where("term = ? AND language = ?", name, language).First(&term).Error
	if err != nil {
		return nil, err
	}
	return &term, nil
}

// Create inserts a new term. The (term, language) pair is unique; the same
// word may exist once per language.
func (r *Repository) Create(term *entities.Term) error {
	return r.db.Create(term).Error
}

// Update overwrites every base field of an existing term.
func (r *Repository) Update(id uint, in *entities.Term) (*entities.Term, error) {
	var term entities.Term
	if err := r.db.First(&term, id).Error; err != nil {
		return nil, err
	}

	term.Term = in.Term
	term.Definition = in.Definition
	term.Category = in.Category
	term.Pronunciation = in.Pronunciation
	term.ImageURL = in.ImageURL
	term.Language = in.Language

	if err := r.db.Save(&term).Error; err != nil {
		return nil, err
	}
	return &term, nil
}

// Delete removes a term and its join rows.
func (r *Repository) Delete(id uint) error {
	var term entities.Term
	if err := r.db.First(&term, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&term).Error
}
