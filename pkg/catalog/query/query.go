// Package query implements the materials search pipeline: free-text match,
// category filter, date sort, and pagination, in that fixed order. The
// pipeline is pure; it never mutates the input slice or the catalog and can be
// re-run with different parameters against the same collection.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/iarchive/iarchive/pkg/catalog"
)

// DefaultPageSize is the number of materials per result page.
const DefaultPageSize = 6

// CategoryAll disables category filtering.
const CategoryAll = "All"

// Sort orders.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// Params is the parameter bag driving one pipeline run. The zero value means
// "first page of everything, newest first".
type Params struct {
	// Search is matched case-insensitively as a substring of title,
	// description, and each subject; any hit keeps the material. Empty means
	// no filtering.
	Search string

	// Category keeps only materials whose category equals it exactly
	// (case-sensitive). Empty or "All" means no filtering.
	Category string

	// Sort is SortNewest (default) or SortOldest.
	Sort string

	// Page is 1-based. Values below 1 are treated as 1; pages past the end
	// yield an empty item slice.
	Page int

	// PageSize defaults to DefaultPageSize when not positive.
	PageSize int
}

// Result is one page of the filtered, sorted collection.
type Result struct {
	Items      []catalog.Material `json:"items"`
	TotalCount int                `json:"totalCount"`
	TotalPages int                `json:"totalPages"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
}

// Apply runs the pipeline over materials and returns the requested page.
func Apply(materials []catalog.Material, p Params) Result {
	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page := p.Page
	if page < 1 {
		page = 1
	}

	filtered := filterSearch(materials, p.Search)
	filtered = filterCategory(filtered, p.Category)
	sortByDate(filtered, p.Sort)

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Items:      filtered[start:end],
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
}

// filterSearch keeps materials whose title, description, or any subject
// contains needle, ignoring case. An empty needle keeps everything.
func filterSearch(materials []catalog.Material, needle string) []catalog.Material {
	if needle == "" {
		// Copy so the sort stage never reorders the caller's slice.
		return append([]catalog.Material(nil), materials...)
	}

	needle = strings.ToLower(needle)
	var out []catalog.Material
	for _, m := range materials {
		if matches(m, needle) {
			out = append(out, m)
		}
	}
	return out
}

func matches(m catalog.Material, needle string) bool {
	if strings.Contains(strings.ToLower(m.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Description), needle) {
		return true
	}
	for _, s := range m.Subjects {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

// filterCategory keeps materials in the named category. Empty or "All" keeps
// everything.
func filterCategory(materials []catalog.Material, category string) []catalog.Material {
	if category == "" || category == CategoryAll {
		return materials
	}

	out := materials[:0]
	for _, m := range materials {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// sortByDate orders materials by parsed date, descending for newest (the
// default), ascending for oldest. Materials whose date fails to parse sort
// after every parseable one; equal dates keep their input order.
func sortByDate(materials []catalog.Material, order string) {
	asc := order == SortOldest

	sort.SliceStable(materials, func(i, j int) bool {
		ti, iok := parseDate(materials[i].Date)
		tj, jok := parseDate(materials[j].Date)
		if iok != jok {
			return iok // parseable dates first
		}
		if !iok {
			return false
		}
		if asc {
			return ti.Before(tj)
		}
		return tj.Before(ti)
	})
}

// parseDate accepts the catalog's plain date form and RFC 3339 timestamps.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
