// Package lessons provides database operations for lessons and their
// cross-references into the fabric library, garment encyclopedia,
// terminology glossary and tags.
package lessons

import (
	"gorm.io/gorm"

	"github.com/edtailor/backend/internal/entities"
)

// Repository handles all lesson database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new lessons repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAll retrieves every lesson regardless of language, in primary-key
// order. The collection route deliberately skips the language filter that
// every other resource applies.
func (r *Repository) ListAll() ([]entities.Lesson, error) {
	var lessons []entities.Lesson
	err := r.db.Order("id ASC").Find(&lessons).Error
	return lessons, err
}

// ListByTopic retrieves the lessons under a topic, filtered by language.
// Returns gorm.ErrRecordNotFound when the topic itself does not exist.
func (r *Repository) ListByTopic(topicID uint, language string) ([]entities.Lesson, error) {
	var topic entities.Topic
	if err := r.db.First(&topic, topicID).Error; err != nil {
		return nil, err
	}

	var lessons []entities.Lesson
	err := r.db.Where("topic_id = ? AND language = ?", topicID, language).
		Order("id ASC").Find(&lessons).Error
	return lessons, err
}

// GetByID retrieves a lesson by ID.
func (r *Repository) GetByID(id uint) (*entities.Lesson, error) {
	var lesson entities.Lesson
	if err := r.db.First(&lesson, id).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// GetWithRefs retrieves a lesson with its fabrics, garments, terms and tags
// preloaded.
func (r *Repository) GetWithRefs(id uint) (*entities.Lesson, error) {
	var lesson entities.Lesson
	err := r.db.Preload("Fabrics").Preload("Garments").
		Preload("Terms").Preload("Tags").First(&lesson, id).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// GetBySlug retrieves a lesson by its slug. Slugs are globally unique.
func (r *Repository) GetBySlug(slug string) (*entities.Lesson, error) {
	var lesson entities.Lesson
	if err := r.db.Where("slug = ?", slug).First(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// Create inserts a new lesson.
func (r *Repository) Create(lesson *entities.Lesson) error {
	return r.db.Create(lesson).Error
}

// Update overwrites every base field of an existing lesson. Cross-references
// are managed separately and survive the update.
func (r *Repository) Update(id uint, in *entities.Lesson) (*entities.Lesson, error) {
	var lesson entities.Lesson
	if err := r.db.First(&lesson, id).Error; err != nil {
		return nil, err
	}

	lesson.TopicID = in.TopicID
	lesson.Title = in.Title
	lesson.Slug = in.Slug
	lesson.Summary = in.Summary
	lesson.Content = in.Content
	lesson.ReadingTimeMinutes = in.ReadingTimeMinutes
	lesson.DifficultyLevel = in.DifficultyLevel
	lesson.ImageURL = in.ImageURL
	lesson.Language = in.Language

	if err := r.db.Save(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// Delete removes a lesson and its join rows.
func (r *Repository) Delete(id uint) error {
	var lesson entities.Lesson
	if err := r.db.First(&lesson, id).Error; err != nil {
		return err
	}
	return r.db.Delete(&lesson).Error
}

// AddFabric links a fabric to a lesson with an optional note describing the
// relationship.
func (r *Repository) AddFabric(lessonID, fabricID uint, note string) error {
	var lesson entities.Lesson
	if err := r.db.First(&lesson, lessonID).Error; err != nil {
		return err
	}
	var fabric entities.Fabric
	if err := r.db.First(&fabric, fabricID).Error; err != nil {
		return err
	}
	return r.db.Create(&entities.LessonFabric{
		LessonID: lessonID,
		FabricID: fabricID,
		Note:     note,
	}).Error
}

// RemoveFabric unlinks a fabric from a lesson.
func (r *Repository) RemoveFabric(lessonID, fabricID uint) error {
	return r.db.Where("lesson_id = ? AND fabric_id = ?", lessonID, fabricID).
		Delete(&entities.LessonFabric{}).Error
}

// AddGarment links a garment to a lesson with an optional note.
func (r *Repository) AddGarment(lessonID, garmentID uint, note string) error {
	var lesson entities.Lesson
	if err := r.db.First(&lesson, lessonID).Error; err != nil {
		return err
	}
	var garment entities.Garment
	if err := r.db.First(&garment, garmentID).Error; err != nil {
		return err
	}
	return r.db.Create(&entities.LessonGarment{
		LessonID:  lessonID,
		GarmentID: garmentID,
		Note:      note,
	}).Error
}

// RemoveGarment unlinks a garment from a lesson.
func (r *Repository) RemoveGarment(lessonID, garmentID uint) error {
	return r.db.Where("lesson_id = ? AND garment_id = ?", lessonID, garmentID).
		Delete(&entities.LessonGarment{}).Error
}

// AddTerm links a glossary term to a lesson.
func (r *Repository) AddTerm(lessonID, termID uint) error {
	var lesson entities.Lesson
	if err := r.db.First(&lesson, lessonID).Error; err != nil {
		return err
	}
	var term entities.Term
	if err := r.db.First(&term, termID).Error; err != nil {
		return err
	}
	return r.db.Model(&lesson).Association("Terms").Append(&term)
}

// RemoveTerm unlinks a glossary term from a lesson.
func (r *Repository) RemoveTerm(lessonID, termID uint) error {
	var lesson entities.Lesson
	if err := r.db.First(&lesson, lessonID).Error; err != nil {
		return err
	}
	var term entities.Term
	if err := r.db.First(&term, termID).Error; err != nil {
		return err
	}
	return r.db.Model(&lesson).Association("Terms").Delete(&term)
}

// AddTag attaches a tag to a lesson.
func (r *Repository) AddTag(lessonID, tagID uint) error {
	var lesson entities.Lesson
	if err := r.db.First(&lesson, lessonID).Error; err != nil {
		return err
	}
	var tag entities.Tag
	if err := r.db.First(&tag, tagID).Error; err != nil {
		return err
	}
	return r.db.Model(&lesson).Association("Tags").Append(&tag)
}

// RemoveTag detaches a tag from a lesson.
func (r *Repository) RemoveTag(lessonID, tagID uint) error {
	var lesson entities.Lesson
	if err := r.db.First(&lesson, lessonID).Error; err != nil {
		return err
	}
	var tag entities.Tag
	if err := r.db.First(&tag, tagID).Error; err != nil {
		return err
	}
	return r.db.Model(&lesson).Association("Tags").Delete(&tag)
}
