package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"places-api/internal/models"
)

// PlacesHandler handles proximity requests over the merged
// neighborhood+postal view
type PlacesHandler struct {
	service       PlacesService
	defaultRadius float64
}

// Service interface for dependency injection
type PlacesService interface {
	NearbyNeighborhoods(lat, lng, radiusKm float64) []models.NeighborhoodResult
	NearbyPlaces(lat, lng, radiusKm float64) []models.NearbyPlace
	NeighborhoodCount() int
}

// NewPlacesHandler creates a new places handler
func NewPlacesHandler(svc PlacesService, defaultRadiusKm float64) *PlacesHandler {
	return &PlacesHandler{service: svc, defaultRadius: defaultRadiusKm}
}

// NearbyNeighborhoods handles GET /neighborhoods/nearby requests
//
//	@Summary	Neighborhoods within a radius of a point
//	@Param		lat		query	number	true	"latitude in degrees"
//	@Param		lng		query	number	true	"longitude in degrees"
//	@Param		range	query	number	false	"radius in km, default 50"
//	@Success	200	{array}		models.NeighborhoodResult
//	@Failure	400	{object}	map[string]string
//	@Router		/neighborhoods/nearby [get]
func (h *PlacesHandler) NearbyNeighborhoods(c *gin.Context) {
	lat, lng, ok := parseCoordinates(c)
	if !ok {
		return
	}
	radius, ok := parseRadius(c, h.defaultRadius)
	if !ok {
		return
	}
	if h.service.NeighborhoodCount() == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "neighborhood data is empty or failed to load", "data": []models.NeighborhoodResult{}})
		return
	}
	c.JSON(http.StatusOK, h.service.NearbyNeighborhoods(lat, lng, radius))
}

// NearbyPlaces handles GET /places/nearby and /places/nearby/enhanced
// requests. Both routes serve the complete merged view.
//
//	@Summary	Merged neighborhood and postal records within a radius
//	@Param		lat		query	number	true	"latitude in degrees"
//	@Param		lng		query	number	true	"longitude in degrees"
//	@Param		range	query	number	false	"radius in km, default 50"
//	@Success	200	{array}		models.NearbyPlace
//	@Failure	400	{object}	map[string]string
//	@Router		/places/nearby [get]
func (h *PlacesHandler) NearbyPlaces(c *gin.Context) {
	lat, lng, ok := parseCoordinates(c)
	if !ok {
		return
	}
	radius, ok := parseRadius(c, h.defaultRadius)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.service.NearbyPlaces(lat, lng, radius))
}
