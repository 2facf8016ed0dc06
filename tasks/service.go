package tasks

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/biosecret/go-tasks/models"
)

// Source supplies a fresh copy of the task set on every call.
type Source func() []models.Task

type CreateInput struct {
	Title       string
	Description string
	DueDate     time.Time
	IsCompleted bool
}

// UpdateInput overwrites every field. A nil CompletedAt means "now".
type UpdateInput struct {
	Title       string
	Description string
	DueDate     time.Time
	IsCompleted bool
	CompletedAt *time.Time
}

// Service exposes CRUD over the mock task set. Every call works on its own
// copy, so nothing a call changes is visible to the next one.
type Service struct {
	source Source
	now    func() time.Time
}

func NewService(source Source) *Service {
	return &Service{source: source, now: time.Now}
}

// WithClock replaces the time source used for timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List(params ListParams) (Page, error) {
	return Query(s.source(), params)
}

func (s *Service) Get(id string) (models.Task, error) {
	all := s.source()
	idx := indexOf(all, id)
	if idx < 0 {
		return models.Task{}, ErrTaskNotFound
	}
	return all[idx], nil
}

func (s *Service) Create(in CreateInput) models.Task {
	all := s.source()
	now := models.NewStamp(s.now(), models.ISO8601Layout)

	task := models.Task{
		ID:          nextID(all),
		Title:       in.Title,
		Description: in.Description,
		DueDate:     models.NewStamp(in.DueDate, models.DateLayout),
		IsCompleted: in.IsCompleted,
		CompletedAt: nil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return task
}

func (s *Service) Update(id string, in UpdateInput) (models.Task, error) {
	all := s.source()
	idx := indexOf(all, id)
	if idx < 0 {
		return models.Task{}, ErrTaskNotFound
	}

	now := s.now()
	completedAt := now
	if in.CompletedAt != nil {
		completedAt = *in.CompletedAt
	}
	completedStamp := models.NewStamp(completedAt, models.DateLayout)

	task := all[idx]
	task.Title = in.Title
	task.Description = in.Description
	task.DueDate = models.NewStamp(in.DueDate, models.DateLayout)
	task.IsCompleted = in.IsCompleted
	task.CompletedAt = &completedStamp
	task.CreatedAt = task.CreatedAt.Restamp(models.ISO8601Layout)
	task.UpdatedAt = models.NewStamp(now, models.ISO8601Layout)

	return task, nil
}

// Delete returns the task that would be removed.
func (s *Service) Delete(id string) (models.Task, error) {
	all := s.source()
	idx := indexOf(all, id)
	if idx < 0 {
		return models.Task{}, ErrTaskNotFound
	}
	return all[idx], nil
}

// indexOf matches a path id against stored ids; non-numeric ids never match.
func indexOf(all []models.Task, id string) int {
	n, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return -1
	}
	return slices.IndexFunc(all, func(t models.Task) bool { return t.ID == n })
}

// nextID is max+1, or 1 for an empty set.
func nextID(all []models.Task) int {
	maxID := 0
	for _, task := range all {
		maxID = max(maxID, task.ID)
	}
	return maxID + 1
}
