package entities

import (
	"time"
)

// DefaultLanguage is the ISO 639-1 code assumed when a record or a request
// does not specify one.
const DefaultLanguage = "en"

// Category is the top-level organization for content (e.g. Fabrics,
// Tailoring, Styling). Categories may nest one level via ParentID.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Slug        string    `gorm:"uniqueIndex;size:200;not null" json:"slug"`
	ParentID    *uint     `json:"parent_id,omitempty"`
	IconURL     string    `gorm:"size:500" json:"icon_url,omitempty"`
	Language    string    `gorm:"size:2;not null;default:'en';index" json:"language"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Declared for the cascade constraint; child listings go through
	// explicit repository queries, never through preloaded graphs.
	Topics []Topic `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// Topic groups lessons within a category (e.g. Natural Fibers,
// Suit Construction).
type Topic struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategoryID  uint      `gorm:"index;not null" json:"category_id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Slug        string    `gorm:"uniqueIndex;size:200;not null" json:"slug"`
	Language    string    `gorm:"size:2;not null;default:'en';index" json:"language"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Lessons []Lesson `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"-"`
}

// Lesson is an individual learning unit. Lessons cross-reference the fabric
// library, the garment encyclopedia, the terminology glossary and free-form
// tags through join tables.
type Lesson struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	TopicID            uint      `gorm:"index;not null" json:"topic_id"`
	Title              string    `gorm:"size:300;not null" json:"title"`
	Slug               string    `gorm:"uniqueIndex;size:300;not null" json:"slug"`
	Summary            string    `gorm:"type:text" json:"summary,omitempty"`
	Content            string    `gorm:"type:text;not null" json:"content"`
	ReadingTimeMinutes *int      `json:"reading_time_minutes,omitempty"`
	DifficultyLevel    string    `gorm:"size:50" json:"difficulty_level,omitempty"` // Beginner, Intermediate, Advanced
	ImageURL           string    `gorm:"size:500" json:"image_url,omitempty"`
	Language           string    `gorm:"size:2;not null;default:'en';index" json:"language"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Fabrics  []Fabric  `gorm:"many2many:lesson_fabrics;constraint:OnDelete:CASCADE" json:"fabrics,omitempty"`
	Garments []Garment `gorm:"many2many:lesson_garments;constraint:OnDelete:CASCADE" json:"garments,omitempty"`
	Terms    []Term    `gorm:"many2many:lesson_terms;constraint:OnDelete:CASCADE" json:"terms,omitempty"`
	Tags     []Tag     `gorm:"many2many:lesson_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

func (Topic) TableName() string {
	return "topics"
}

func (Lesson) TableName() string {
	return "lessons"
}
