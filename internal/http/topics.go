package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edtailor/backend/internal/entities"
)

// TopicStore defines database operations for topic management.
type TopicStore interface {
	List(language string) ([]entities.Topic, error)
	GetByID(id uint) (*entities.Topic, error)
	Create(topic *entities.Topic) error
	Update(id uint, in *entities.Topic) (*entities.Topic, error)
	Delete(id uint) error
}

type TopicsController struct {
	store TopicStore
}

func NewTopicsController(store TopicStore) *TopicsController {
	return &TopicsController{store: store}
}

// TopicRequest carries the full set of mutable topic fields.
type TopicRequest struct {
	CategoryID  uint   `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Slug        string `json:"slug" binding:"required"`
	Language    string `json:"language"`
}

func (req *TopicRequest) toEntity() *entities.Topic {
	language := req.Language
	if language == "" {
		language = entities.DefaultLanguage
	}
	return &entities.Topic{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Slug:        req.Slug,
		Language:    language,
	}
}

// List returns all topics for a language
// GET /api/topics?language=en
func (tc *TopicsController) List(c *gin.Context) {
	topics, err := tc.store.List(languageParam(c))
	if err != nil {
		respondInternalError(c, err, "list topics")
		return
	}
	c.JSON(http.StatusOK, topics)
}

// Get returns a single topic
// GET /api/topics/:id
func (tc *TopicsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	topic, err := tc.store.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Topic", id)
			return
		}
		respondInternalError(c, err, "get topic")
		return
	}
	c.JSON(http.StatusOK, topic)
}

// Create creates a new topic
// POST /api/topics
func (tc *TopicsController) Create(c *gin.Context) {
	var req TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	topic := req.toEntity()
	if err := tc.store.Create(topic); err != nil {
		respondInternalError(c, err, "create topic")
		return
	}
	respondCreated(c, topic)
}

// Update replaces every field of a topic
// PUT /api/topics/:id
func (tc *TopicsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	topic, err := tc.store.Update(id, req.toEntity())
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Topic", id)
			return
		}
		respondInternalError(c, err, "update topic")
		return
	}
	c.JSON(http.StatusOK, topic)
}

// Delete removes a topic and cascades to its lessons
// DELETE /api/topics/:id
func (tc *TopicsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := tc.store.Delete(id); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Topic", id)
			return
		}
		respondInternalError(c, err, "delete topic")
		return
	}
	c.Status(http.StatusNoContent)
}
