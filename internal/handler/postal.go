package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"places-api/internal/models"
	"places-api/internal/service"
	"places-api/internal/store"
)

// PostalHandler handles postal directory requests
type PostalHandler struct {
	service       PostalService
	defaultRadius float64
}

// Service interface for dependency injection
type PostalService interface {
	Lookup(code string) ([]models.PostalRecord, error)
	Search(f service.PostalFilter) []models.PostalRecord
	Nearby(lat, lng, radiusKm float64) []models.PostalResult
	States() []string
	Districts(state string) ([]string, error)
	Count() int
}

// NewPostalHandler creates a new postal handler
func NewPostalHandler(svc PostalService, defaultRadiusKm float64) *PostalHandler {
	return &PostalHandler{service: svc, defaultRadius: defaultRadiusKm}
}

// Lookup handles GET /pincode/:pincode requests
func (h *PostalHandler) Lookup(c *gin.Context) {
	code := c.Param("pincode")
	records, err := h.service.Lookup(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no records for pincode '" + code + "'"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Search handles GET /pincode/search requests. Every filter is optional
// and they combine.
func (h *PostalHandler) Search(c *gin.Context) {
	if h.service.Count() == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "postal directory is empty or failed to load", "data": []models.PostalRecord{}})
		return
	}
	records := h.service.Search(service.PostalFilter{
		Pincode:  c.Query("pincode"),
		State:    c.Query("state"),
		District: c.Query("district"),
		Office:   c.Query("office"),
	})
	c.JSON(http.StatusOK, records)
}

// Nearby handles GET /pincode/nearby requests
//
//	@Summary	Postal offices within a radius of a point
//	@Param		lat		query	number	true	"latitude in degrees"
//	@Param		lng		query	number	true	"longitude in degrees"
//	@Param		range	query	number	false	"radius in km, default 50"
//	@Success	200	{array}		models.PostalResult
//	@Failure	400	{object}	map[string]string
//	@Router		/pincode/nearby [get]
func (h *PostalHandler) Nearby(c *gin.Context) {
	lat, lng, ok := parseCoordinates(c)
	if !ok {
		return
	}
	radius, ok := parseRadius(c, h.defaultRadius)
	if !ok {
		return
	}
	if h.service.Count() == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "postal directory is empty or failed to load", "data": []models.PostalResult{}})
		return
	}
	c.JSON(http.StatusOK, h.service.Nearby(lat, lng, radius))
}

// States handles GET /pincode/states requests
func (h *PostalHandler) States(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": h.service.States()})
}

// Districts handles GET /pincode/states/:state/districts requests. The
// state is matched by substring.
func (h *PostalHandler) Districts(c *gin.Context) {
	state := c.Param("state")
	districts, err := h.service.Districts(state)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no districts for state '" + state + "'"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state, "districts": districts})
}
