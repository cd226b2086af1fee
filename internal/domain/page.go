package domain

import (
	"math"
	"net/url"
	"strconv"
)

// DefaultPerPage is the page size used when none is configured.
const DefaultPerPage = 15

// PageRequest selects one page of a listing.
type PageRequest struct {
	// Page is the 1-based page number.
	Page int
	// PerPage is the number of items per page.
	PerPage int
	// Path is the absolute URL of the listing, used to build page links.
	Path string
	// Query holds the request's other query parameters (filters), which are
	// carried over into the page links.
	Query url.Values
}

// Normalize clamps Page and PerPage to usable values. Page is capped so that
// Offset cannot overflow.
func (r PageRequest) Normalize() PageRequest {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PerPage < 1 {
		r.PerPage = DefaultPerPage
	}
	if maxPage := math.MaxInt / r.PerPage; r.Page > maxPage {
		r.Page = maxPage
	}
	return r
}

// Offset returns the number of rows to skip for this page.
func (r PageRequest) Offset() int {
	n := r.Normalize()
	return (n.Page - 1) * n.PerPage
}

// Limit returns the maximum number of rows on this page.
func (r PageRequest) Limit() int {
	return r.Normalize().PerPage
}

// Page is a length-aware page of results with the metadata clients use to
// navigate the listing.
type Page[T any] struct {
	CurrentPage  int     `json:"current_page"`
	Data         []T     `json:"data"`
	FirstPageURL string  `json:"first_page_url"`
	From         *int    `json:"from"`
	LastPage     int     `json:"last_page"`
	LastPageURL  string  `json:"last_page_url"`
	NextPageURL  *string `json:"next_page_url"`
	Path         string  `json:"path"`
	PerPage      int     `json:"per_page"`
	PrevPageURL  *string `json:"prev_page_url"`
	To           *int    `json:"to"`
	Total        int     `json:"total"`
}

// NewPage builds a Page from the items of the requested page and the total
// number of matching rows.
func NewPage[T any](items []T, total int, req PageRequest) *Page[T] {
	req = req.Normalize()
	if items == nil {
		items = []T{}
	}

	lastPage := (total + req.PerPage - 1) / req.PerPage
	if lastPage < 1 {
		lastPage = 1
	}

	page := &Page[T]{
		CurrentPage:  req.Page,
		Data:         items,
		FirstPageURL: req.pageURL(1),
		LastPage:     lastPage,
		LastPageURL:  req.pageURL(lastPage),
		Path:         req.Path,
		PerPage:      req.PerPage,
		Total:        total,
	}

	if len(items) > 0 {
		from := req.Offset() + 1
		to := req.Offset() + len(items)
		page.From = &from
		page.To = &to
	}

	if req.Page < lastPage {
		next := req.pageURL(req.Page + 1)
		page.NextPageURL = &next
	}

	if req.Page > 1 {
		prev := req.pageURL(req.Page - 1)
		page.PrevPageURL = &prev
	}

	return page
}

// pageURL returns the link to page n, keeping the request's other query parameters.
func (r PageRequest) pageURL(n int) string {
	query := url.Values{}
	for key, values := range r.Query {
		if key == "page" {
			continue
		}
		query[key] = values
	}
	query.Set("page", strconv.Itoa(n))
	return r.Path + "?" + query.Encode()
}
