package query

import (
	"net/url"
	"strconv"
)

// ParseParams derives pipeline parameters from URL query values, the shape the
// browsing surface keeps its state in. Unknown or malformed values fall back
// to defaults: sort anything but "oldest" means newest, a non-numeric or
// non-positive page means page 1.
func ParseParams(values url.Values) Params {
	return Params{
		Search:   values.Get("search"),
		Category: values.Get("category"),
		Sort:     parseSort(values.Get("sort")),
		Page:     parsePage(values.Get("page")),
	}
}

func parseSort(s string) string {
	if s == SortOldest {
		return SortOldest
	}
	return SortNewest
}

func parsePage(s string) int {
	if s == "" {
		return 1
	}
	page, err := strconv.Atoi(s)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
