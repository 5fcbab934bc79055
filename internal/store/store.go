package store

import (
	"context"
	"errors"

	"smartPlanner/internal/models"
)

var ErrNotFound = errors.New("запись не найдена")

// Store — контракт удалённого документного хранилища.
// Данные лежат по ключам tasks/{userId}/{taskId} и users/{userId}.
// CreateTask присваивает задаче серверный идентификатор и отметку времени
// записи. Subscribe отдаёт канал полных снапшотов коллекции задач
// пользователя: первый снапшот приходит сразу после подписки, дальше —
// после каждого изменения. Снапшот всегда целиком замещает предыдущий.
type Store interface {
	HealthCheck(ctx context.Context) error

	LoadTasks(ctx context.Context, userID string) ([]models.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (*models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) error
	UpdateTask(ctx context.Context, task *models.Task) error
	SetCompleted(ctx context.Context, userID, taskID string, completed bool) (*models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
	Subscribe(ctx context.Context, userID string) (<-chan []models.Task, func())

	LoadProfile(ctx context.Context, userID string) (*models.Profile, error)
	SaveProfile(ctx context.Context, userID string, profile *models.Profile) error

	Close()
}
