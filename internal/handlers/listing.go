package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
	"github.com/BLVNQ/buildconnect-server/internal/service"
)

type ListingHandler struct {
	svc *service.ListingSvc
}

func NewListingHandler(svc *service.ListingSvc) *ListingHandler {
	return &ListingHandler{svc: svc}
}

// POST /api/add-listing
func (h *ListingHandler) Add(c *gin.Context) {
	var in struct {
		ListingType    string `json:"listingType"`
		Name           string `json:"name"`
		Price          any    `json:"price"`
		Description    string `json:"description"`
		MerchantID     string `json:"merchantId"`
		RateType       string `json:"rateType"`
		Unit           string `json:"unit"`
		StockQuantity  int    `json:"stockQuantity"`
		Specialization string `json:"specialization"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.svc.Add(c.Request.Context(), service.AddListingInput{
		ListingType:    in.ListingType,
		Name:           in.Name,
		Price:          in.Price,
		Description:    in.Description,
		MerchantID:     in.MerchantID,
		RateType:       in.RateType,
		Unit:           in.Unit,
		StockQuantity:  in.StockQuantity,
		Specialization: in.Specialization,
	})
	if err != nil {
		respondListingErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Listing added", "id": id})
}

// PUT /api/listing/:collectionName/:listingId
func (h *ListingHandler) Update(c *gin.Context) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Patch(c.Request.Context(), c.Param("collectionName"), c.Param("listingId"), patch); err != nil {
		respondListingErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing updated"})
}

// DELETE /api/listing/:collectionName/:listingId
func (h *ListingHandler) Delete(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.Param("collectionName"), c.Param("listingId")); err != nil {
		respondListingErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}

// GET /api/my-listings/:userId
func (h *ListingHandler) MyListings(c *gin.Context) {
	out, err := h.svc.ForMerchant(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if out == nil {
		out = []map[string]any{}
	}
	c.JSON(http.StatusOK, out)
}

// ListCollection serves the unfiltered collection reads
// (/api/equipment, /api/materials, /api/contractors).
func (h *ListingHandler) ListCollection(coll domain.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := h.svc.All(c.Request.Context(), coll)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if out == nil {
			out = []map[string]any{}
		}
		c.JSON(http.StatusOK, out)
	}
}

func respondListingErr(c *gin.Context, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
