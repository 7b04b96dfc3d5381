package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"places-api/internal/models"
	"places-api/internal/service"
	"places-api/internal/store"
)

// ItemsHandler handles catalog requests
type ItemsHandler struct {
	service ItemService
}

// Service interface for dependency injection
type ItemService interface {
	List(q service.ItemQuery) models.Page
	Full() []models.Item
	Sorted() []models.Item
	Get(id string) (models.Item, error)
	Update(id string, patch map[string]any) (models.Item, error)
	Delete(id string) error
	Random() (models.Item, error)
	Languages() []string
	Categories() []string
	Count() int
}

// NewItemsHandler creates a new items handler
func NewItemsHandler(svc ItemService) *ItemsHandler {
	return &ItemsHandler{service: svc}
}

// List handles GET /items requests
//
//	@Summary	List catalog items with search, category and language filters
//	@Param		searchtext		query	string	false	"free-text search over the packed text field"
//	@Param		sub-category-id	query	string	false	"exact category id"
//	@Param		languages		query	string	false	"comma-separated language codes"
//	@Param		current_page	query	int		false	"1-based page number"
//	@Param		items_per_page	query	int		false	"page size, default 10"
//	@Success	200	{object}	models.Page
//	@Router		/items [get]
func (h *ItemsHandler) List(c *gin.Context) {
	if h.service.Count() == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "item catalog is empty or failed to load", "data": []models.Item{}})
		return
	}

	page, size := parsePageParams(c)
	q := service.ItemQuery{
		SearchText: c.Query("searchtext"),
		CategoryID: c.Query("sub-category-id"),
		Languages:  splitCSV(c.Query("languages")),
		Page:       page,
		PageSize:   size,
		RawQuery:   c.Request.URL.Query(),
	}
	c.JSON(http.StatusOK, h.service.List(q))
}

// Full handles GET /data/full requests
//
//	@Summary	Entire item catalog, unpaginated
//	@Success	200	{array}	models.Item
//	@Router		/data/full [get]
func (h *ItemsHandler) Full(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Full())
}

// Sorted handles GET /items/sorted requests
func (h *ItemsHandler) Sorted(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Sorted())
}

// Get handles GET /item/:id requests
func (h *ItemsHandler) Get(c *gin.Context) {
	id := c.Param("id")
	item, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no item with id '" + id + "'"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update handles PUT /item/:id requests. The body is a partial record;
// fields it carries override, everything else is retained.
func (h *ItemsHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	item, err := h.service.Update(id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no item with id '" + id + "'"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /item/:id requests
func (h *ItemsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no item with id '" + id + "'"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted", "id": id})
}

// Random handles GET /item/random requests
func (h *ItemsHandler) Random(c *gin.Context) {
	item, err := h.service.Random()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item catalog is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Languages handles GET /languages requests
func (h *ItemsHandler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": h.service.Languages()})
}

// Categories handles GET /categories requests
func (h *ItemsHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.service.Categories()})
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
