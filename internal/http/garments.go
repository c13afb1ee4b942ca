package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edtailor/backend/internal/entities"
)

// GarmentStore defines database operations for the garment encyclopedia.
type GarmentStore interface {
	List(language string) ([]entities.Garment, error)
	GetByID(id uint) (*entities.Garment, error)
	Create(garment *entities.Garment) error
	Update(id uint, in *entities.Garment) (*entities.Garment, error)
	Delete(id uint) error
}

type GarmentsController struct {
	store GarmentStore
}

func NewGarmentsController(store GarmentStore) *GarmentsController {
	return &GarmentsController{store: store}
}

// GarmentRequest carries the full set of mutable garment fields.
type GarmentRequest struct {
	Name                string `json:"name" binding:"required"`
	Description         string `json:"description"`
	GarmentType         string `json:"garment_type"`
	FormalityLevel      string `json:"formality_level"`
	ConstructionDetails string `json:"construction_details"`
	KeyFeatures         string `json:"key_features"`
	HistoricalContext   string `json:"historical_context"`
	StylingTips         string `json:"styling_tips"`
	ImageURL            string `json:"image_url"`
	Language            string `json:"language"`
}

func (req *GarmentRequest) toEntity() *entities.Garment {
	language := req.Language
	if language == "" {
		language = entities.DefaultLanguage
	}
	return &entities.Garment{
		Name:                req.Name,
		Description:         req.Description,
		GarmentType:         req.GarmentType,
		FormalityLevel:      req.FormalityLevel,
		ConstructionDetails: req.ConstructionDetails,
		KeyFeatures:         req.KeyFeatures,
		HistoricalContext:   req.HistoricalContext,
		StylingTips:         req.StylingTips,
		ImageURL:            req.ImageURL,
		Language:            language,
	}
}

// List returns all garments for a language
// GET /api/garments?language=en
func (gc *GarmentsController) List(c *gin.Context) {
	garments, err := gc.store.List(languageParam(c))
	if err != nil {
		respondInternalError(c, err, "list garments")
		return
	}
	c.JSON(http.StatusOK, garments)
}

// Get returns a single garment
// GET /api/garments/:id
func (gc *GarmentsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	garment, err := gc.store.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Garment", id)
			return
		}
		respondInternalError(c, err, "get garment")
		return
	}
	c.JSON(http.StatusOK, garment)
}

// Create creates a new garment
// POST /api/garments
func (gc *GarmentsController) Create(c *gin.Context) {
	var req GarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	garment := req.toEntity()
	if err := gc.store.Create(garment); err != nil {
		respondInternalError(c, err, "create garment")
		return
	}
	respondCreated(c, garment)
}

// Update replaces every field of a garment
// PUT /api/garments/:id
func (gc *GarmentsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req GarmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	garment, err := gc.store.Update(id, req.toEntity())
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Garment", id)
			return
		}
		respondInternalError(c, err, "update garment")
		return
	}
	c.JSON(http.StatusOK, garment)
}

// Delete removes a garment
// DELETE /api/garments/:id
func (gc *GarmentsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := gc.store.Delete(id); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Garment", id)
			return
		}
		respondInternalError(c, err, "delete garment")
		return
	}
	c.Status(http.StatusNoContent)
}
