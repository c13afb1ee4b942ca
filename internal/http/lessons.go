package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edtailor/backend/internal/entities"
)

// LessonStore defines database operations for lesson management, including
// the cross-references into fabrics, garments, terms and tags.
type LessonStore interface {
	ListAll() ([]entities.Lesson, error)
	ListByTopic(topicID uint, language string) ([]entities.Lesson, error)
	GetByID(id uint) (*entities.Lesson, error)
	GetWithRefs(id uint) (*entities.Lesson, error)
	Create(lesson *entities.Lesson) error
	Update(id uint, in *entities.Lesson) (*entities.Lesson, error)
	Delete(id uint) error
	AddFabric(lessonID, fabricID uint, note string) error
	RemoveFabric(lessonID, fabricID uint) error
	AddGarment(lessonID, garmentID uint, note string) error
	RemoveGarment(lessonID, garmentID uint) error
	AddTerm(lessonID, termID uint) error
	RemoveTerm(lessonID, termID uint) error
	AddTag(lessonID, tagID uint) error
	RemoveTag(lessonID, tagID uint) error
}

// TagStore defines the tag operations the lessons controller needs.
type TagStore interface {
	GetOrCreate(name string) (*entities.Tag, error)
}

type LessonsController struct {
	store LessonStore
	tags  TagStore
}

func NewLessonsController(store LessonStore, tags TagStore) *LessonsController {
	return &LessonsController{store: store, tags: tags}
}

// LessonRequest carries the full set of mutable lesson fields.
type LessonRequest struct {
	TopicID            uint   `json:"topic_id" binding:"required"`
	Title              string `json:"title" binding:"required"`
	Slug               string `json:"slug" binding:"required"`
	Summary            string `json:"summary"`
	Content            string `json:"content" binding:"required"`
	ReadingTimeMinutes *int   `json:"reading_time_minutes"`
	DifficultyLevel    string `json:"difficulty_level"`
	ImageURL           string `json:"image_url"`
	Language           string `json:"language"`
}

func (req *LessonRequest) toEntity() *entities.Lesson {
	language := req.Language
	if language == "" {
		language = entities.DefaultLanguage
	}
	return &entities.Lesson{
		TopicID:            req.TopicID,
		Title:              req.Title,
		Slug:               req.Slug,
		Summary:            req.Summary,
		Content:            req.Content,
		ReadingTimeMinutes: req.ReadingTimeMinutes,
		DifficultyLevel:    req.DifficultyLevel,
		ImageURL:           req.ImageURL,
		Language:           language,
	}
}

// List returns every lesson across all languages. Unlike the other list
// endpoints this one takes no language filter.
// GET /api/lessons
func (lc *LessonsController) List(c *gin.Context) {
	lessons, err := lc.store.ListAll()
	if err != nil {
		respondInternalError(c, err, "list lessons")
		return
	}
	c.JSON(http.StatusOK, lessons)
}

// Get returns a single lesson
// GET /api/lessons/:id
func (lc *LessonsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lesson, err := lc.store.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Lesson", id)
			return
		}
		respondInternalError(c, err, "get lesson")
		return
	}
	c.JSON(http.StatusOK, lesson)
}

// GetReferences returns a lesson with its fabrics, garments, terms and tags
// GET /api/lessons/:id/references
func (lc *LessonsController) GetReferences(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lesson, err := lc.store.GetWithRefs(id)
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Lesson", id)
			return
		}
		respondInternalError(c, err, "get lesson references")
		return
	}
	c.JSON(http.StatusOK, lesson)
}

// Create creates a new lesson
// POST /api/lessons
func (lc *LessonsController) Create(c *gin.Context) {
	var req LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	lesson := req.toEntity()
	if err := lc.store.Create(lesson); err != nil {
		respondInternalError(c, err, "create lesson")
		return
	}
	respondCreated(c, lesson)
}

// Update replaces every base field of a lesson; cross-references survive
// PUT /api/lessons/:id
func (lc *LessonsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	lesson, err := lc.store.Update(id, req.toEntity())
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Lesson", id)
			return
		}
		respondInternalError(c, err, "update lesson")
		return
	}
	c.JSON(http.StatusOK, lesson)
}

// Delete removes a lesson
// DELETE /api/lessons/:id
func (lc *LessonsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := lc.store.Delete(id); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Lesson", id)
			return
		}
		respondInternalError(c, err, "delete lesson")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListByTopic returns the lessons under a topic
// GET /api/topics/:id/lessons?language=en
func (lc *LessonsController) ListByTopic(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lessons, err := lc.store.ListByTopic(id, languageParam(c))
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Topic", id)
			return
		}
		respondInternalError(c, err, "list topic lessons")
		return
	}
	c.JSON(http.StatusOK, lessons)
}

// AddFabric links a fabric to a lesson
// POST /api/lessons/:id/fabrics
func (lc *LessonsController) AddFabric(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		FabricID uint   `json:"fabric_id" binding:"required"`
		Note     string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := lc.store.AddFabric(id, req.FabricID, req.Note); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Lesson or Fabric", id)
			return
		}
		respondInternalError(c, err, "add fabric to lesson")
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveFabric unlinks a fabric from a lesson
// DELETE /api/lessons/:id/fabrics/:fabricID
func (lc *LessonsController) RemoveFabric(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	fabricID, ok := parseIDParam(c, "fabricID")
	if !ok {
		return
	}

	if err := lc.store.RemoveFabric(id, fabricID); err != nil {
		respondInternalError(c, err, "remove fabric from lesson")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddGarment links a garment to a lesson
// POST /api/lessons/:id/garments
func (lc *LessonsController) AddGarment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		GarmentID uint   `json:"garment_id" binding:"required"`
		Note      string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := lc.store.AddGarment(id, req.GarmentID, req.Note); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Lesson or Garment", id)
			return
		}
		respondInternalError(c, err, "add garment to lesson")
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveGarment unlinks a garment from a lesson
// DELETE /api/lessons/:id/garments/:garmentID
func (lc *LessonsController) RemoveGarment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	garmentID, ok := parseIDParam(c, "garmentID")
	if !ok {
		return
	}

	if err := lc.store.RemoveGarment(id, garmentID); err != nil {
		respondInternalError(c, err, "remove garment from lesson")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddTerm links a glossary term to a lesson
// POST /api/lessons/:id/terms
func (lc *LessonsController) AddTerm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		TermID uint `json:"term_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := lc.store.AddTerm(id, req.TermID); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Lesson or Term", id)
			return
		}
		respondInternalError(c, err, "add term to lesson")
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveTerm unlinks a glossary term from a lesson
// DELETE /api/lessons/:id/terms/:termID
func (lc *LessonsController) RemoveTerm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	termID, ok := parseIDParam(c, "termID")
	if !ok {
		return
	}

	if err := lc.store.RemoveTerm(id, termID); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Lesson or Term", id)
			return
		}
		respondInternalError(c, err, "remove term from lesson")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddTag attaches a tag to a lesson, creating the tag if needed
// POST /api/lessons/:id/tags
func (lc *LessonsController) AddTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	tag, err := lc.tags.GetOrCreate(req.Name)
	if err != nil {
		respondInternalError(c, err, "get or create tag")
		return
	}

	if err := lc.store.AddTag(id, tag.ID); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Lesson", id)
			return
		}
		respondInternalError(c, err, "add tag to lesson")
		return
	}
	respondCreated(c, tag)
}

// RemoveTag detaches a tag from a lesson
// DELETE /api/lessons/:id/tags/:tagID
func (lc *LessonsController) RemoveTag(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "tagID")
	if !ok {
		return
	}

	if err := lc.store.RemoveTag(id, tagID); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Lesson or Tag", id)
			return
		}
		respondInternalError(c, err, "remove tag from lesson")
		return
	}
	c.Status(http.StatusNoContent)
}
