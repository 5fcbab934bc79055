package inmemory

import (
	"context"
	"sync"
	"time"

	"smartPlanner/internal/logger"
	"smartPlanner/internal/models"
	"smartPlanner/internal/store"

	"github.com/google/uuid"
)

// Storage держит коллекции в памяти и ведёт себя как удалённое хранилище:
// после каждой записи всем подписчикам уходит полный снапшот коллекции.
// Используется при repository.type = inmemory и в тестах.
type Storage struct {
	mtx      *sync.RWMutex
	tasks    map[string]map[string]*models.Task // userID -> taskID -> задача
	order    map[string][]string                // порядок вставки ключей
	profiles map[string]*models.Profile
	hub      *store.Hub
}

func NewStorage() *Storage {
	return &Storage{
		mtx:      &sync.RWMutex{},
		tasks:    make(map[string]map[string]*models.Task),
		order:    make(map[string][]string),
		profiles: make(map[string]*models.Profile),
		hub:      store.NewHub(),
	}
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	logger.Info("Repository: Соединение стабильно")
	return nil
}

func (s *Storage) Close() {}

// snapshotLocked собирает полную копию коллекции пользователя в порядке вставки.
// Вызывать только под мьютексом.
func (s *Storage) snapshotLocked(userID string) []models.Task {
	res := make([]models.Task, 0, len(s.order[userID]))
	for _, id := range s.order[userID] {
		if t, ok := s.tasks[userID][id]; ok {
			res = append(res, *t)
		}
	}
	return res
}

func (s *Storage) publish(userID string) {
	s.mtx.RLock()
	snapshot := s.snapshotLocked(userID)
	s.mtx.RUnlock()

	s.hub.Publish(userID, snapshot)
}

func (s *Storage) LoadTasks(ctx context.Context, userID string) ([]models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.snapshotLocked(userID), nil
}

func (s *Storage) GetTask(ctx context.Context, userID, taskID string) (*models.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	t, ok := s.tasks[userID][taskID]
	if !ok {
		return nil, store.ErrNotFound
	}

	copied := *t
	return &copied, nil
}

func (s *Storage) CreateTask(ctx context.Context, taskToCreate *models.Task) error {
	s.mtx.Lock()

	taskToCreate.ID = uuid.New().String()
	taskToCreate.CreatedAt = time.Now()

	if s.tasks[taskToCreate.UserID] == nil {
		s.tasks[taskToCreate.UserID] = make(map[string]*models.Task)
	}

	copied := *taskToCreate
	s.tasks[taskToCreate.UserID][taskToCreate.ID] = &copied
	s.order[taskToCreate.UserID] = append(s.order[taskToCreate.UserID], taskToCreate.ID)

	s.mtx.Unlock()

	s.publish(taskToCreate.UserID)
	return nil
}

func (s *Storage) UpdateTask(ctx context.Context, taskToUpdate *models.Task) error {
	s.mtx.Lock()

	existed, ok := s.tasks[taskToUpdate.UserID][taskToUpdate.ID]
	if !ok {
		s.mtx.Unlock()
		return store.ErrNotFound
	}

	now := time.Now()
	taskToUpdate.CreatedAt = existed.CreatedAt
	taskToUpdate.LastUpdated = &now

	copied := *taskToUpdate
	s.tasks[taskToUpdate.UserID][taskToUpdate.ID] = &copied

	s.mtx.Unlock()

	s.publish(taskToUpdate.UserID)
	return nil
}

func (s *Storage) SetCompleted(ctx context.Context, userID, taskID string, completed bool) (*models.Task, error) {
	s.mtx.Lock()

	existed, ok := s.tasks[userID][taskID]
	if !ok {
		s.mtx.Unlock()
		return nil, store.ErrNotFound
	}

	now := time.Now()
	existed.Completed = completed
	existed.LastUpdated = &now
	copied := *existed

	s.mtx.Unlock()

	s.publish(userID)
	return &copied, nil
}

func (s *Storage) DeleteTask(ctx context.Context, userID, taskID string) error {
	s.mtx.Lock()

	if _, ok := s.tasks[userID][taskID]; !ok {
		s.mtx.Unlock()
		return store.ErrNotFound
	}

	delete(s.tasks[userID], taskID)
	for ind, val := range s.order[userID] {
		if val == taskID {
			s.order[userID] = append(s.order[userID][:ind], s.order[userID][ind+1:]...)
			break
		}
	}

	s.mtx.Unlock()

	s.publish(userID)
	return nil
}

// Subscribe сразу отдаёт текущее состояние коллекции,
// дальше снапшоты приходят после каждой записи
func (s *Storage) Subscribe(ctx context.Context, userID string) (<-chan []models.Task, func()) {
	ch, cancel := s.hub.Subscribe(userID)
	s.publish(userID)
	return ch, cancel
}

func (s *Storage) LoadProfile(ctx context.Context, userID string) (*models.Profile, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, store.ErrNotFound
	}

	copied := *p
	return &copied, nil
}

func (s *Storage) SaveProfile(ctx context.Context, userID string, profile *models.Profile) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if existed, ok := s.profiles[userID]; ok {
		now := time.Now()
		profile.CreatedAt = existed.CreatedAt
		profile.LastUpdated = &now
	} else {
		profile.CreatedAt = time.Now()
	}

	copied := *profile
	s.profiles[userID] = &copied
	return nil
}
