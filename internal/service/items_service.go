package service

import (
	"fmt"
	"net/url"
	"sort"

	"places-api/internal/models"
	"places-api/internal/text"
)

// ItemQuery carries the parsed filter and paging parameters of a catalog
// listing request. RawQuery is the original query string, used to rebuild
// the next-page link.
type ItemQuery struct {
	SearchText string
	CategoryID string
	Languages  []string
	Page       int
	PageSize   int
	RawQuery   url.Values
}

// ItemRepository interface for dependency injection
type ItemRepository interface {
	All() []models.Item
	Get(id string) (models.Item, error)
	Update(id string, patch map[string]any) (models.Item, error)
	Delete(id string) error
	Random() (models.Item, error)
	Len() int
}

// ItemService contains the core business logic for catalog operations
type ItemService struct {
	repo ItemRepository
}

// NewItemService creates a new item service
func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// List applies the filter pipeline and paginates the result. Predicates run
// in a fixed order: free-text search over the normalized packed text, then
// exact category match. The language filter is a post-filter transform: it
// rewrites the surviving items' text field to the requested language
// segments (sentinel when none match) rather than dropping items, so a
// caller asking for an unsupported language still sees the item.
func (s *ItemService) List(q ItemQuery) models.Page {
	items := s.repo.All()

	if q.SearchText != "" {
		filtered := items[:0]
		for _, it := range items {
			if text.ContainsNormalized(it.Text, q.SearchText) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	if q.CategoryID != "" {
		filtered := items[:0]
		for _, it := range items {
			if it.CategoryID == q.CategoryID {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	if len(q.Languages) > 0 {
		for i := range items {
			items[i].Text = text.ExtractLanguages(items[i].Text, q.Languages)
		}
	}

	page := clampPage(q.Page)
	size := clampPageSize(q.PageSize)
	start, end, _ := paginate(len(items), page, size)
	return newPage(items[start:end], len(items), page, size, q.RawQuery)
}

// Full returns the entire catalog, unpaginated.
func (s *ItemService) Full() []models.Item {
	return s.repo.All()
}

// Sorted returns the catalog ordered by category id.
func (s *ItemService) Sorted() []models.Item {
	items := s.repo.All()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CategoryID < items[j].CategoryID
	})
	return items
}

// Get returns the item with the given category id.
func (s *ItemService) Get(id string) (models.Item, error) {
	item, err := s.repo.Get(id)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: get item: %w", err)
	}
	return item, nil
}

// Update shallow-merges patch into the item and returns the result.
func (s *ItemService) Update(id string, patch map[string]any) (models.Item, error) {
	item, err := s.repo.Update(id, patch)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: update item: %w", err)
	}
	return item, nil
}

// Delete removes the item with the given category id.
func (s *ItemService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("service: delete item: %w", err)
	}
	return nil
}

// Random returns a uniformly chosen item.
func (s *ItemService) Random() (models.Item, error) {
	item, err := s.repo.Random()
	if err != nil {
		return models.Item{}, fmt.Errorf("service: random item: %w", err)
	}
	return item, nil
}

// Languages returns the sorted distinct language codes declared across the
// catalog.
func (s *ItemService) Languages() []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range s.repo.All() {
		for _, code := range it.Languages {
			if code == "" || seen[code] {
				continue
			}
			seen[code] = true
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out
}

// Categories returns the sorted distinct category ids in the catalog.
func (s *ItemService) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range s.repo.All() {
		if it.CategoryID == "" || seen[it.CategoryID] {
			continue
		}
		seen[it.CategoryID] = true
		out = append(out, it.CategoryID)
	}
	sort.Strings(out)
	return out
}

// Count reports the catalog size.
func (s *ItemService) Count() int {
	return s.repo.Len()
}
