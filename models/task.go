package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// DateLayout hiển thị ngày không kèm giờ
	DateLayout = "2006-01-02"
	// DateTimeLayout là định dạng của dữ liệu mẫu
	DateTimeLayout = "2006-01-02 15:04:05"
	// ISO8601Layout dùng cho các mốc thời gian sinh ra trong request
	ISO8601Layout = "2006-01-02T15:04:05-07:00"
)

// Stamp là một mốc thời gian kèm định dạng khi trả về JSON
type Stamp struct {
	time.Time
	Layout string
}

func NewStamp(t time.Time, layout string) Stamp {
	return Stamp{Time: t, Layout: layout}
}

// ParseStamp chấp nhận ngày, ngày giờ hoặc RFC 3339 và giữ nguyên định dạng đã khớp
func ParseStamp(value string) (Stamp, error) {
	for _, layout := range []string{DateLayout, DateTimeLayout, ISO8601Layout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return Stamp{Time: t, Layout: layout}, nil
		}
	}
	return Stamp{}, fmt.Errorf("invalid timestamp %q", value)
}

// Restamp giữ nguyên giá trị, chỉ đổi định dạng hiển thị
func (s Stamp) Restamp(layout string) Stamp {
	return Stamp{Time: s.Time, Layout: layout}
}

func (s Stamp) String() string {
	layout := s.Layout
	if layout == "" {
		layout = ISO8601Layout
	}
	return s.Format(layout)
}

func (s Stamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Stamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStamp(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Task là bản ghi công việc trả về cho client
type Task struct {
	ID          int    `json:"id" example:"1"`
	Title       string `json:"title" example:"Design login page"`
	Description string `json:"description" example:"Create a responsive login form with validation and error handling."`
	DueDate     Stamp  `json:"due_date" swaggertype:"string" example:"2025-11-10"`
	IsCompleted bool   `json:"is_completed" example:"false"`
	CompletedAt *Stamp `json:"completed_at" swaggertype:"string" example:"2025-11-02 12:00:00"`
	CreatedAt   Stamp  `json:"created_at" swaggertype:"string" example:"2025-11-01 09:30:00"`
	UpdatedAt   Stamp  `json:"updated_at" swaggertype:"string" example:"2025-11-03 14:45:00"`
}

// Clone trả về bản sao không chia sẻ con trỏ CompletedAt
func (t Task) Clone() Task {
	if t.CompletedAt != nil {
		completedAt := *t.CompletedAt
		t.CompletedAt = &completedAt
	}
	return t
}

// TaskRequest là body của POST /tasks và PUT /tasks/{id}
type TaskRequest struct {
	Title       string `json:"title" validate:"required" example:"Pest testing"`
	Description string `json:"description" validate:"required" example:"Description for Pest testing"`
	DueDate     string `json:"due_date" validate:"required,datetime=2006-01-02" example:"2025-11-07"`
	IsCompleted any    `json:"is_completed" validate:"omitempty,flag" swaggertype:"boolean" example:"false"`
	CompletedAt string `json:"completed_at" validate:"omitempty,timestamp" example:"2025-11-07"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"test@example.com"`
	Password string `json:"password" validate:"required" example:"12345678"`
}

type LoginResponse struct {
	Message     string `json:"message" example:"Mocked login successful"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"Bearer"`
}
