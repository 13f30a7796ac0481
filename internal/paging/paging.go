// Package paging turns raw page/limit/sort query values into bounded,
// deterministic slice parameters.
package paging

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a normalized page request.
type Page struct {
	Number int
	Skip   int
	Limit  int
}

// Normalize coerces page and limit to positive integers. Absent, non-numeric
// and non-positive values fall back to the defaults; limit is capped at
// MaxLimit. page is clamped so that the skip never overflows.
func Normalize(page, limit string) Page {
	number := positiveOr(page, DefaultPage)
	size := positiveOr(limit, DefaultLimit)
	if size > MaxLimit {
		size = MaxLimit
	}
	if maxPage := math.MaxInt / size; number > maxPage {
		number = maxPage
	}
	return Page{
		Number: number,
		Skip:   (number - 1) * size,
		Limit:  size,
	}
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

// Sort is a resolved sort: an allow-listed column expression and direction.
type Sort struct {
	Column string
	Desc   bool
}

// SortKeys maps the field names a caller may sort by to column expressions.
type SortKeys struct {
	keys     map[string]string
	fallback Sort
}

// NewSortKeys builds an allow-list. fallback is used when the caller gives
// neither a field nor a direction.
func NewSortKeys(keys map[string]string, fallback Sort) SortKeys {
	return SortKeys{keys: keys, fallback: fallback}
}

// Resolve maps sortBy through the allow-list. sortType "desc" sorts
// descending, any other value ascending. An unknown field is rejected.
func (s SortKeys) Resolve(sortBy, sortType string) (Sort, error) {
	sortBy = strings.TrimSpace(sortBy)
	sortType = strings.TrimSpace(sortType)

	if sortBy == "" {
		if sortType == "" {
			return s.fallback, nil
		}
		return Sort{Column: s.fallback.Column, Desc: isDesc(sortType)}, nil
	}

	column, ok := s.keys[sortBy]
	if !ok {
		return Sort{}, apperror.New(apperror.ErrInvalidReference, fmt.Sprintf("cannot sort by %q", sortBy))
	}
	return Sort{Column: column, Desc: isDesc(sortType)}, nil
}

func isDesc(sortType string) bool {
	return strings.EqualFold(sortType, "desc")
}
