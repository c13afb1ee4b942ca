package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edtailor/backend/internal/entities"
)

// CategoryStore defines database operations for category management.
type CategoryStore interface {
	List(language string) ([]entities.Category, error)
	GetByID(id uint) (*entities.Category, error)
	Create(category *entities.Category) error
	Update(id uint, in *entities.Category) (*entities.Category, error)
	Delete(id uint) error
	ListTopics(categoryID uint, language string) ([]entities.Topic, error)
}

type CategoriesController struct {
	store CategoryStore
}

func NewCategoriesController(store CategoryStore) *CategoriesController {
	return &CategoriesController{store: store}
}

// CategoryRequest carries the full set of mutable category fields. Updates
// replace every field; omitted optional values clear the stored ones.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Slug        string `json:"slug" binding:"required"`
	ParentID    *uint  `json:"parent_id"`
	IconURL     string `json:"icon_url"`
	Language    string `json:"language"`
}

func (req *CategoryRequest) toEntity() *entities.Category {
	language := req.Language
	if language == "" {
		language = entities.DefaultLanguage
	}
	return &entities.Category{
		Name:        req.Name,
		Description: req.Description,
		Slug:        req.Slug,
		ParentID:    req.ParentID,
		IconURL:     req.IconURL,
		Language:    language,
	}
}

// List returns all categories for a language
// GET /api/categories?language=en
func (cc *CategoriesController) List(c *gin.Context) {
	categories, err := cc.store.List(languageParam(c))
	if err != nil {
		respondInternalError(c, err, "list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Get returns a single category
// GET /api/categories/:id
func (cc *CategoriesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := cc.store.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Category", id)
			return
		}
		respondInternalError(c, err, "get category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// Create creates a new category
// POST /api/categories
func (cc *CategoriesController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	category := req.toEntity()
	if err := cc.store.Create(category); err != nil {
		respondInternalError(c, err, "create category")
		return
	}
	respondCreated(c, category)
}

// Update replaces every field of a category
// PUT /api/categories/:id
func (cc *CategoriesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	category, err := cc.store.Update(id, req.toEntity())
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Category", id)
			return
		}
		respondInternalError(c, err, "update category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// Delete removes a category and cascades to its topics and lessons
// DELETE /api/categories/:id
func (cc *CategoriesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.store.Delete(id); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Category", id)
			return
		}
		respondInternalError(c, err, "delete category")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTopics returns the topics under a category
// GET /api/categories/:id/topics?language=en
func (cc *CategoriesController) ListTopics(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	topics, err := cc.store.ListTopics(id, languageParam(c))
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Category", id)
			return
		}
		respondInternalError(c, err, "list category topics")
		return
	}
	c.JSON(http.StatusOK, topics)
}
