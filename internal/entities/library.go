package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Fabric is an entry in the fabric reference library.
type Fabric struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Name             string         `gorm:"index;size:200;not null" json:"name"`
	Description      string         `gorm:"type:text" json:"description,omitempty"`
	FiberContent     string         `gorm:"size:200" json:"fiber_content,omitempty"` // e.g. "100% Wool"
	FiberType        string         `gorm:"size:100" json:"fiber_type,omitempty"`    // Natural, Synthetic, Semi-synthetic
	Weight           string         `gorm:"size:100" json:"weight,omitempty"`        // Lightweight, Medium, Heavy
	WeaveType        string         `gorm:"size:100" json:"weave_type,omitempty"`    // Plain, Twill, Satin, Knit
	Drape            string         `gorm:"size:100" json:"drape,omitempty"`         // Soft, Structured, Crisp
	Texture          string         `gorm:"size:200" json:"texture,omitempty"`
	CareInstructions string         `gorm:"type:text" json:"care_instructions,omitempty"`
	CommonUses       string         `gorm:"type:text" json:"common_uses,omitempty"`
	Properties       datatypes.JSON `json:"properties,omitempty"`
	Season           string         `gorm:"size:100" json:"season,omitempty"` // Summer, Winter, All-season
	ImageURL         string         `gorm:"size:500" json:"image_url,omitempty"`
	Language         string         `gorm:"size:2;not null;default:'en';index" json:"language"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`

	Garments []Garment `gorm:"many2many:fabric_garments;constraint:OnDelete:CASCADE" json:"garments,omitempty"`
}

// Garment is an entry in the clothing-item encyclopedia.
type Garment struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Name                string    `gorm:"index;size:200;not null" json:"name"`
	Description         string    `gorm:"type:text" json:"description,omitempty"`
	GarmentType         string    `gorm:"size:100" json:"garment_type,omitempty"`    // Outerwear, Shirt, Trousers, Accessory
	FormalityLevel      string    `gorm:"size:100" json:"formality_level,omitempty"` // Casual, Business, Formal
	ConstructionDetails string    `gorm:"type:text" json:"construction_details,omitempty"`
	KeyFeatures         string    `gorm:"type:text" json:"key_features,omitempty"`
	HistoricalContext   string    `gorm:"type:text" json:"historical_context,omitempty"`
	StylingTips         string    `gorm:"type:text" json:"styling_tips,omitempty"`
	ImageURL            string    `gorm:"size:500" json:"image_url,omitempty"`
	Language            string    `gorm:"size:2;not null;default:'en';index" json:"language"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Term is a glossary entry. The same term may exist once per language.
type Term struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Term          string    `gorm:"size:200;not null;uniqueIndex:idx_terms_term_language" json:"term"`
	Definition    string    `gorm:"type:text;not null" json:"definition"`
	Category      string    `gorm:"size:100" json:"category,omitempty"` // Construction, Design, Tailoring
	Pronunciation string    `gorm:"size:200" json:"pronunciation,omitempty"`
	ImageURL      string    `gorm:"size:500" json:"image_url,omitempty"`
	Language      string    `gorm:"size:2;not null;default:'en';index;uniqueIndex:idx_terms_term_language" json:"language"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Tag is a free-form label attached to lessons.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Fabric) TableName() string {
	return "fabrics"
}

func (Garment) TableName() string {
	return "garments"
}

func (Term) TableName() string {
	return "terms"
}

func (Tag) TableName() string {
	return "tags"
}
