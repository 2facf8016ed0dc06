package tasks

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/biosecret/go-tasks/models"
)

const (
	DefaultSortBy  = "id"
	DefaultPage    = 1
	DefaultPerPage = 10

	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListParams are the list query parameters.
type ListParams struct {
	Completed Flag
	SortBy    string
	SortOrder string
	Page      int
	PerPage   int
}

// Meta describes the pagination window of a listing.
type Meta struct {
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	From        int `json:"from"`
	To          int `json:"to"`
}

type Page struct {
	Data []models.Task `json:"data"`
	Meta Meta          `json:"meta"`
}

// DefaultListParams is the listing used when no query parameter is given.
func DefaultListParams() ListParams {
	return ListParams{
		SortBy:    DefaultSortBy,
		SortOrder: SortAsc,
		Page:      DefaultPage,
		PerPage:   DefaultPerPage,
	}
}

// Query filters, sorts and paginates tasks. The input slice is not modified.
//
// A descending order is the ascending result reversed, so tied records come
// out in the reverse of their original order. Only the exact order "desc"
// reverses. Page and PerPage must be at least 1 and the page's last offset
// must fit in an int; an empty SortBy sorts by id.
func Query(all []models.Task, params ListParams) (Page, error) {
	if params.PerPage < 1 {
		return Page{}, ErrInvalidPerPage
	}
	if params.Page < 1 {
		return Page{}, ErrInvalidPage
	}
	// offset+PerPage phải nằm trong int
	if params.Page-1 > (math.MaxInt-params.PerPage)/params.PerPage {
		return Page{}, ErrInvalidPage
	}
	if params.SortBy == "" {
		params.SortBy = DefaultSortBy
	}

	filtered := Filter(all, params.Completed)
	Sort(filtered, params.SortBy, params.SortOrder)

	total := len(filtered)
	offset := (params.Page - 1) * params.PerPage

	lastPage := total / params.PerPage
	if total%params.PerPage != 0 {
		lastPage++
	}

	data := []models.Task{}
	if offset < total {
		end := min(offset+params.PerPage, total)
		data = filtered[offset:end]
	}

	return Page{
		Data: data,
		Meta: Meta{
			Total:       total,
			PerPage:     params.PerPage,
			CurrentPage: params.Page,
			LastPage:    lastPage,
			From:        offset + 1,
			To:          min(offset+params.PerPage, total),
		},
	}, nil
}

// Filter keeps the tasks whose completion flag matches. FlagUnset keeps all.
func Filter(all []models.Task, completed Flag) []models.Task {
	out := make([]models.Task, 0, len(all))
	for _, task := range all {
		if completed.IsSet() && task.IsCompleted != completed.Bool() {
			continue
		}
		out = append(out, task)
	}
	return out
}

// Sort orders tasks in place by field. Unknown fields keep the current order.
func Sort(list []models.Task, field, order string) {
	if compare := comparator(field); compare != nil {
		slices.SortStableFunc(list, compare)
	}
	if order == SortDesc {
		slices.Reverse(list)
	}
}

func comparator(field string) func(a, b models.Task) int {
	switch field {
	case "id":
		return func(a, b models.Task) int { return cmp.Compare(a.ID, b.ID) }
	case "title":
		return func(a, b models.Task) int { return strings.Compare(a.Title, b.Title) }
	case "description":
		return func(a, b models.Task) int { return strings.Compare(a.Description, b.Description) }
	case "due_date":
		return func(a, b models.Task) int { return a.DueDate.Compare(b.DueDate.Time) }
	case "is_completed":
		return func(a, b models.Task) int { return compareBool(a.IsCompleted, b.IsCompleted) }
	case "completed_at":
		return func(a, b models.Task) int { return compareOptional(a.CompletedAt, b.CompletedAt) }
	case "created_at":
		return func(a, b models.Task) int { return a.CreatedAt.Compare(b.CreatedAt.Time) }
	case "updated_at":
		return func(a, b models.Task) int { return a.UpdatedAt.Compare(b.UpdatedAt.Time) }
	default:
		return nil
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// null sorts first
func compareOptional(a, b *models.Stamp) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(b.Time)
	}
}
