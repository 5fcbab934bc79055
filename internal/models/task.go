package models

import "time"

// Task — запись задачи в том виде, в котором она лежит в удалённом хранилище.
// Date и Time хранятся строками ("2006-01-02" и "HH:MM"), без часового пояса.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Type        Type       `json:"type"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Priority    Priority   `json:"priority"`
	Notes       string     `json:"notes,omitempty"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

type Type string
type Priority string

const TypeAssignment Type = "assignment"
const TypeExam Type = "exam"

const PriorityLow Priority = "low"
const PriorityMedium Priority = "medium"
const PriorityHigh Priority = "high"

// DefaultTime подставляется, если время задачи не задано
const DefaultTime = "00:00"

// Weight используется сортировкой: high > medium > low.
// Нераспознанное значение не отбрасывается, оно весит 0 и уходит в конец списка.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// ClockTime возвращает время задачи для сравнения, пустое считается "00:00"
func (t *Task) ClockTime() string {
	if t.Time == "" {
		return DefaultTime
	}
	return t.Time
}
