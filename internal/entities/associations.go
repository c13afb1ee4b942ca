package entities

// Join models for the many-to-many relationships that carry an annotation
// column. They are registered with SetupJoinTable so the note survives
// association writes; the annotation describes the nature of the link, not
// just its existence.

// LessonFabric links a lesson to a fabric it references.
type LessonFabric struct {
	LessonID uint   `gorm:"primaryKey" json:"lesson_id"`
	FabricID uint   `gorm:"primaryKey" json:"fabric_id"`
	Note     string `gorm:"type:text" json:"note,omitempty"`
}

// LessonGarment links a lesson to a garment it references.
type LessonGarment struct {
	LessonID  uint   `gorm:"primaryKey" json:"lesson_id"`
	GarmentID uint   `gorm:"primaryKey" json:"garment_id"`
	Note      string `gorm:"type:text" json:"note,omitempty"`
}

// FabricGarment links a fabric to a garment it is commonly used for.
type FabricGarment struct {
	FabricID  uint   `gorm:"primaryKey" json:"fabric_id"`
	GarmentID uint   `gorm:"primaryKey" json:"garment_id"`
	UsageNote string `gorm:"type:text" json:"usage_note,omitempty"`
}

func (LessonFabric) TableName() string {
	return "lesson_fabrics"
}

func (LessonGarment) TableName() string {
	return "lesson_garments"
}

func (FabricGarment) TableName() string {
	return "fabric_garments"
}
