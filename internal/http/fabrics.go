package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/edtailor/backend/internal/entities"
)

// FabricStore defines database operations for the fabric library.
type FabricStore interface {
	List(language string) ([]entities.Fabric, error)
	GetByID(id uint) (*entities.Fabric, error)
	GetWithGarments(id uint) (*entities.Fabric, error)
	Create(fabric *entities.Fabric) error
	Update(id uint, in *entities.Fabric) (*entities.Fabric, error)
	Delete(id uint) error
	AddGarment(fabricID, garmentID uint, usageNote string) error
	RemoveGarment(fabricID, garmentID uint) error
}

type FabricsController struct {
	store FabricStore
}

func NewFabricsController(store FabricStore) *FabricsController {
	return &FabricsController{store: store}
}

// FabricRequest carries the full set of mutable fabric fields.
type FabricRequest struct {
	Name             string         `json:"name" binding:"required"`
	Description      string         `json:"description"`
	FiberContent     string         `json:"fiber_content"`
	FiberType        string         `json:"fiber_type"`
	Weight           string         `json:"weight"`
	WeaveType        string         `json:"weave_type"`
	Drape            string         `json:"drape"`
	Texture          string         `json:"texture"`
	CareInstructions string         `json:"care_instructions"`
	CommonUses       string         `json:"common_uses"`
	Properties       datatypes.JSON `json:"properties"`
	Season           string         `json:"season"`
	ImageURL         string         `json:"image_url"`
	Language         string         `json:"language"`
}

func (req *FabricRequest) toEntity() *entities.Fabric {
	language := req.Language
	if language == "" {
		language = entities.DefaultLanguage
	}
	return &entities.Fabric{
		Name:             req.Name,
		Description:      req.Description,
		FiberContent:     req.FiberContent,
		FiberType:        req.FiberType,
		Weight:           req.Weight,
		WeaveType:        req.WeaveType,
		Drape:            req.Drape,
		Texture:          req.Texture,
		CareInstructions: req.CareInstructions,
		CommonUses:       req.CommonUses,
		Properties:       req.Properties,
		Season:           req.Season,
		ImageURL:         req.ImageURL,
		Language:         language,
	}
}

// List returns all fabrics for a language
// GET /api/fabrics?language=en
func (fc *FabricsController) List(c *gin.Context) {
	fabrics, err := fc.store.List(languageParam(c))
	if err != nil {
		respondInternalError(c, err, "list fabrics")
		return
	}
	c.JSON(http.StatusOK, fabrics)
}

// Get returns a single fabric
// GET /api/fabrics/:id
func (fc *FabricsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fabric, err := fc.store.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Fabric", id)
			return
		}
		respondInternalError(c, err, "get fabric")
		return
	}
	c.JSON(http.StatusOK, fabric)
}

// Create creates a new fabric
// POST /api/fabrics
func (fc *FabricsController) Create(c *gin.Context) {
	var req FabricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	fabric := req.toEntity()
	if err := fc.store.Create(fabric); err != nil {
		respondInternalError(c, err, "create fabric")
		return
	}
	respondCreated(c, fabric)
}

// Update replaces every field of a fabric
// PUT /api/fabrics/:id
func (fc *FabricsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req FabricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	fabric, err := fc.store.Update(id, req.toEntity())
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Fabric", id)
			return
		}
		respondInternalError(c, err, "update fabric")
		return
	}
	c.JSON(http.StatusOK, fabric)
}

// Delete removes a fabric
// DELETE /api/fabrics/:id
func (fc *FabricsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := fc.store.Delete(id); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Fabric", id)
			return
		}
		respondInternalError(c, err, "delete fabric")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListGarments returns the garments linked to a fabric
// GET /api/fabrics/:id/garments
func (fc *FabricsController) ListGarments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fabric, err := fc.store.GetWithGarments(id)
	if err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Fabric", id)
			return
		}
		respondInternalError(c, err, "list fabric garments")
		return
	}
	c.JSON(http.StatusOK, fabric.Garments)
}

// AddGarment links a garment to a fabric with an optional usage note
// POST /api/fabrics/:id/garments
func (fc *FabricsController) AddGarment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		GarmentID uint   `json:"garment_id" binding:"required"`
		UsageNote string `json:"usage_note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := fc.store.AddGarment(id, req.GarmentID, req.UsageNote); err != nil {
		if isNotFound(err) {
			respondEntityNotFound(c, "Fabric or Garment", id)
			return
		}
		respondInternalError(c, err, "add garment to fabric")
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveGarment unlinks a garment from a fabric
// DELETE /api/fabrics/:id/garments/:garmentID
func (fc *FabricsController) RemoveGarment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	garmentID, ok := parseIDParam(c, "garmentID")
	if !ok {
		return
	}

	if err := fc.store.RemoveGarment(id, garmentID); err != nil {
		respondInternalError(c, err, "remove garment from fabric")
		return
	}
	c.Status(http.StatusNoContent)
}
