package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseCoordinates reads the required lat/lng query parameters. Missing,
// non-numeric or out-of-range values write a 400 naming the offending
// parameter and report ok=false. Geo endpoints never fall back to a
// default coordinate.
func parseCoordinates(c *gin.Context) (lat, lng float64, ok bool) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	if latStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'lat'"})
		return 0, 0, false
	}
	if lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'lng'"})
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid value for parameter 'lat'"})
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid value for parameter 'lng'"})
		return 0, 0, false
	}

	if lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parameter 'lat' out of range"})
		return 0, 0, false
	}
	if lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parameter 'lng' out of range"})
		return 0, 0, false
	}
	return lat, lng, true
}

// parseRadius reads the optional range parameter, falling back to the
// configured default when absent. A non-numeric value is a client error,
// never a silent fallback.
func parseRadius(c *gin.Context, fallback float64) (float64, bool) {
	raw := c.Query("range")
	if raw == "" {
		return fallback, true
	}
	radius, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid value for parameter 'range'"})
		return 0, false
	}
	return radius, true
}

// parsePageParams reads the paging parameters. Unlike the geo parameters
// these are tolerant: missing or non-numeric values fall back to defaults
// downstream.
func parsePageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.Query("current_page"))
	size, _ = strconv.Atoi(c.Query("items_per_page"))
	return page, size
}
