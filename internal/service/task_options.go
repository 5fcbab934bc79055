package service

import "smartPlanner/internal/models"

// TaskOption — точечное изменение задачи при редактировании
type TaskOption func(*models.Task)

func WithName(name string) TaskOption {
	return func(task *models.Task) {
		task.Name = name
	}
}

func WithType(taskType models.Type) TaskOption {
	return func(task *models.Task) {
		task.Type = taskType
	}
}

func WithDate(date string) TaskOption {
	return func(task *models.Task) {
		task.Date = date
	}
}

func WithTime(clockTime string) TaskOption {
	return func(task *models.Task) {
		task.Time = clockTime
	}
}

func WithPriority(priority models.Priority) TaskOption {
	return func(task *models.Task) {
		task.Priority = priority
	}
}

func WithNotes(notes string) TaskOption {
	return func(task *models.Task) {
		task.Notes = notes
	}
}
