package dto

import (
	"time"

	"smartPlanner/internal/models"
)

type CreateTaskRequest struct {
	Name     string          `json:"name"`
	Type     models.Type     `json:"type"`
	Date     string          `json:"date"`
	Time     string          `json:"time"`
	Priority models.Priority `json:"priority"`
	Notes    string          `json:"notes"`
}

type UpdateTaskRequest struct {
	Name     *string          `json:"name,omitempty"`
	Type     *models.Type     `json:"type,omitempty"`
	Date     *string          `json:"date,omitempty"`
	Time     *string          `json:"time,omitempty"`
	Priority *models.Priority `json:"priority,omitempty"`
	Notes    *string          `json:"notes,omitempty"`
}

type CompleteTaskRequest struct {
	Completed bool `json:"completed"`
}

type TaskResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        models.Type     `json:"type"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
	Priority    models.Priority `json:"priority"`
	Notes       string          `json:"notes,omitempty"`
	Completed   bool            `json:"completed"`
	CreatedAt   time.Time       `json:"created_at"`
	LastUpdated *time.Time      `json:"last_updated,omitempty"`
}

func FromTask(t *models.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Name:        t.Name,
		Type:        t.Type,
		Date:        t.Date,
		Time:        t.ClockTime(),
		Priority:    t.Priority,
		Notes:       t.Notes,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		LastUpdated: t.LastUpdated,
	}
}

func FromTaskList(tasks []models.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i := range tasks {
		result[i] = FromTask(&tasks[i])
	}
	return result
}

type SummaryResponse struct {
	Greeting  string `json:"greeting"`
	Due       int    `json:"due"`
	Exams     int    `json:"exams"`
	Completed int    `json:"completed"`
}

type ProgressResponse struct {
	Percent int            `json:"percent"`
	Tasks   []TaskResponse `json:"tasks"`
}

type CalendarResponse struct {
	Year  int                    `json:"year"`
	Month int                    `json:"month"`
	Days  map[int][]TaskResponse `json:"days"`
}

// NotificationsResponse — журнал, счётчик непрочитанных и текст бейджа.
// Badge пустой — бейдж скрыт. Placeholder заполняется для пустого журнала.
type NotificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
	Badge         string                `json:"badge"`
	Placeholder   string                `json:"placeholder,omitempty"`
}

type UpdateProfileRequest struct {
	Name         string `json:"name"`
	PhotoURL     string `json:"photoURL"`
	MusicPaused  *bool  `json:"music_paused,omitempty"`
	MusicStarted *bool  `json:"music_started,omitempty"`
}

type ChatRequest struct {
	Message string `json:"message"`
	Mode    string `json:"mode"`
}

type ChatResponse struct {
	Reply     string   `json:"reply"`
	Mode      string   `json:"mode"`
	Questions []string `json:"questions,omitempty"`
}
