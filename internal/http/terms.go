package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edtailor/backend/internal/entities"
)

// TermStore defines database operations for the terminology glossary.
type TermStore interface {
	List(language string) ([]entities.Term, error)
	GetByID(id uint) (*entities.Term, error)
	Create(term *entities.Term) error
	Update(id uint, in *entities.Term) (*entities.Term, error)
	Delete(id uint) error
}

type TermsController struct {
	store TermStore
}

func NewTermsController(store TermStore) *TermsController {
	return &TermsController{store: store}
}

// TermRequest carries the full set of mutable term fields.
type TermRequest struct {
	Term          string `json:"term" binding:"required"`
	Definition    string `json:"definition" binding:"required"`
	Category      string `json:"category"`
	Pronunciation string `json:"pronunciation"`
	ImageURL      string `json:"image_url"`
	Language      string `json:"language"`
}

func (req *TermRequest) toEntity() *entities.Term {
	language := req.Language
	if language == "" {
		language = entities.DefaultLanguage
	}
	return &entities.Term{
		Term:          req.Term,
		Definition:    req.Definition,
		Category:      req.Category,
		Pronunciation: req.Pronunciation,
		ImageURL:      req.ImageURL,
		Language:      language,
	}
}

// List returns all terms for a language
// GET /api/terms?language=en
func (tc *TermsController) List(c *gin.Context) {
	terms, err := tc.store.List(languageParam(c))
	if err != nil {
		respondInternalError(c, err, "list terms")
		return
	}
	c.JSON(http.StatusOK, terms)
}

// Get returns a single term
// GET /api/terms/:id
func (tc *TermsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	term, err := tc.store.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Term", id)
			return
		}
		respondInternalError(c, err, "get term")
		return
	}
	c.JSON(http.StatusOK, term)
}

// Create creates a new term
// POST /api/terms
func (tc *TermsController) Create(c *gin.Context) {
	var req TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	term := req.toEntity()
	if err := tc.store.Create(term); err != nil {
		respondInternalError(c, err, "create term")
		return
	}
	respondCreated(c, term)
}

// Update replaces every field of a term
// PUT /api/terms/:id
func (tc *TermsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	term, err := tc.store.Update(id, req.toEntity())
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Term", id)
			return
		}
		respondInternalError(c, err, "update term")
		return
	}
	c.JSON(http.StatusOK, term)
}

// Delete removes a term
// DELETE /api/terms/:id
func (tc *TermsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := tc.store.Delete(id); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Term", id)
			return
		}
		respondInternalError(c, err, "delete term")
		return
	}
	c.Status(http.StatusNoContent)
}
