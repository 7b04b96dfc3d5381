package service

import (
	"net/url"
	"strconv"

	"places-api/internal/models"
)

const (
	defaultPageSize = 10
	maxPageSize     = 1000
)

// Query parameter names shared by every paginated endpoint.
const (
	paramPage     = "current_page"
	paramPageSize = "items_per_page"
)

func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func clampPageSize(size int) int {
	if size < 1 {
		return defaultPageSize
	}
	if size > maxPageSize {
		return maxPageSize
	}
	return size
}

// paginate computes the slice bounds [start, end) and the page count for a
// 1-based page over total elements. Out-of-range pages yield an empty
// slice, never an error.
func paginate(total, page, size int) (start, end, totalPages int) {
	totalPages = (total + size - 1) / size
	start = (page - 1) * size
	if start > total {
		start = total
	}
	end = start + size
	if end > total {
		end = total
	}
	return start, end, totalPages
}

// newPage assembles the pagination envelope. The next-page link is present
// only when more pages exist; its query string preserves the original
// filter parameters with the page number advanced.
func newPage(data any, total, page, size int, raw url.Values) models.Page {
	_, _, totalPages := paginate(total, page, size)
	env := models.Page{
		TotalItems:   total,
		TotalPages:   totalPages,
		CurrentPage:  page,
		ItemsPerPage: size,
		Data:         data,
	}
	if page < totalPages {
		env.NextPage = &models.PageLink{
			Page:  page + 1,
			Query: nextPageQuery(raw, page+1, size),
		}
	}
	return env
}

func nextPageQuery(raw url.Values, page, size int) string {
	next := url.Values{}
	for k, vs := range raw {
		next[k] = append([]string(nil), vs...)
	}
	next.Set(paramPage, strconv.Itoa(page))
	next.Set(paramPageSize, strconv.Itoa(size))
	return "?" + next.Encode()
}
