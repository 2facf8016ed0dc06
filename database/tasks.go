package database

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/biosecret/go-tasks/models"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

var (
	seedOnce sync.Once
	seed     []models.Task
	seedErr  error
)

type seedFile struct {
	Tasks []seedTask `yaml:"tasks"`
}

type seedTask struct {
	ID          int     `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	DueDate     string  `yaml:"due_date"`
	IsCompleted bool    `yaml:"is_completed"`
	CompletedAt *string `yaml:"completed_at"`
	CreatedAt   string  `yaml:"created_at"`
	UpdatedAt   string  `yaml:"updated_at"`
}

// LoadSeed đọc dữ liệu mẫu đã nhúng, chỉ parse một lần
func LoadSeed() error {
	seedOnce.Do(func() {
		seed, seedErr = parseSeed(seedYAML)
	})
	return seedErr
}

// GetTasks trả về một bản sao mới của dữ liệu mẫu. Thay đổi trên bản sao không được giữ lại.
func GetTasks() []models.Task {
	if err := LoadSeed(); err != nil {
		zap.L().Error("failed to load task seed", zap.Error(err))
		return []models.Task{}
	}

	tasks := make([]models.Task, len(seed))
	for i, task := range seed {
		tasks[i] = task.Clone()
	}
	return tasks
}

func parseSeed(data []byte) ([]models.Task, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed: %w", err)
	}

	tasks := make([]models.Task, 0, len(file.Tasks))
	for _, row := range file.Tasks {
		task, err := row.toTask()
		if err != nil {
			return nil, fmt.Errorf("seed task %d: %w", row.ID, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (row seedTask) toTask() (models.Task, error) {
	dueDate, err := models.ParseStamp(row.DueDate)
	if err != nil {
		return models.Task{}, err
	}
	createdAt, err := models.ParseStamp(row.CreatedAt)
	if err != nil {
		return models.Task{}, err
	}
	updatedAt, err := models.ParseStamp(row.UpdatedAt)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		DueDate:     dueDate,
		IsCompleted: row.IsCompleted,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}

	if row.CompletedAt != nil {
		completedAt, err := models.ParseStamp(*row.CompletedAt)
		if err != nil {
			return models.Task{}, err
		}
		task.CompletedAt = &completedAt
	}

	return task, nil
}
