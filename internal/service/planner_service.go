package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartPlanner/internal/logger"
	"smartPlanner/internal/models"
	"smartPlanner/internal/planner"
	"smartPlanner/internal/store"

	"go.uber.org/zap"
)

// здесь происходит проверка ошибок бизнес-логики и запись уведомлений
// в журнал на местах мутаций

type PlannerService struct {
	storage  store.Store
	sessions *planner.Manager
}

func NewPlannerService(storage store.Store, sessions *planner.Manager) PlannerService {
	return PlannerService{
		storage:  storage,
		sessions: sessions,
	}
}

func (s *PlannerService) HealthCheck(ctx context.Context) error {
	return s.storage.HealthCheck(ctx)
}

// Session возвращает сессию пользователя, при первом обращении создаёт её:
// профиль заводится с значениями по умолчанию, пустая коллекция
// засевается примерами задач, затем оформляется подписка на снапшоты.
func (s *PlannerService) Session(ctx context.Context, user models.Identity) (*planner.Session, error) {
	if session, ok := s.sessions.Lookup(user.UID); ok {
		return session, nil
	}

	if err := s.ensureProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("подготовка профиля: %w", err)
	}

	if err := s.seedIfEmpty(ctx, user); err != nil {
		return nil, fmt.Errorf("засев примеров: %w", err)
	}

	return s.sessions.Get(ctx, user), nil
}

func (s *PlannerService) ensureProfile(ctx context.Context, user models.Identity) error {
	_, err := s.storage.LoadProfile(ctx, user.UID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	name := user.Name
	if name == "" {
		name = "Student"
	}

	profile := &models.Profile{
		Name:  name,
		Email: user.Email,
	}

	logger.Info("Service: Создание профиля по умолчанию", zap.String("user_id", user.UID))
	return s.storage.SaveProfile(ctx, user.UID, profile)
}

// seedIfEmpty заполняет пустую коллекцию тремя примерами,
// чтобы новый пользователь не начинал с пустого экрана
func (s *PlannerService) seedIfEmpty(ctx context.Context, user models.Identity) error {
	tasks, err := s.storage.LoadTasks(ctx, user.UID)
	if err != nil {
		return err
	}
	if len(tasks) > 0 {
		return nil
	}

	now := time.Now()
	samples := []models.Task{
		{
			UserID:   user.UID,
			Name:     "Read Chapter 2",
			Type:     models.TypeAssignment,
			Date:     now.Format(planner.DateLayout),
			Time:     "10:00",
			Priority: models.PriorityMedium,
			Notes:    "Assignment",
		},
		{
			UserID:   user.UID,
			Name:     "Calculus Exam",
			Type:     models.TypeExam,
			Date:     now.AddDate(0, 0, 3).Format(planner.DateLayout),
			Time:     "10:00",
			Priority: models.PriorityHigh,
			Notes:    "Exam",
		},
		{
			UserID:   user.UID,
			Name:     "Physics Homework",
			Type:     models.TypeAssignment,
			Date:     now.AddDate(0, 0, 5).Format(planner.DateLayout),
			Time:     "14:00",
			Priority: models.PriorityLow,
			Notes:    "Complete problems 1-10",
		},
	}

	for i := range samples {
		if err := s.storage.CreateTask(ctx, &samples[i]); err != nil {
			return fmt.Errorf("создание примера: %w", err)
		}
	}

	logger.Info("Service: Коллекция засеяна примерами", zap.String("user_id", user.UID))
	return nil
}

// SignOut отписывает сессию от снапшотов и уничтожает её состояние
func (s *PlannerService) SignOut(ctx context.Context, user models.Identity) {
	s.sessions.End(user.UID)
}

type CreateTaskParams struct {
	Name     string
	Type     models.Type
	Date     string
	Time     string
	Priority models.Priority
	Notes    string
}

func validateTask(name, date, clockTime string) error {
	if name == "" {
		return NewValidationError("name", "название не может быть пустым")
	}
	if date == "" {
		return NewValidationError("date", "дата должна быть задана")
	}
	if _, err := time.Parse(planner.DateLayout, date); err != nil {
		return NewValidationError("date", "ожидается формат 2006-01-02")
	}
	if clockTime != "" {
		if _, err := time.Parse("15:04", clockTime); err != nil {
			return NewValidationError("time", "ожидается формат HH:MM")
		}
	}
	return nil
}

// AddTask валидирует поля до обращения к хранилищу, создаёт запись и
// фиксирует уведомление added. Идентификатор присваивает хранилище.
func (s *PlannerService) AddTask(ctx context.Context, user models.Identity, params CreateTaskParams) (*models.Task, error) {
	if err := validateTask(params.Name, params.Date, params.Time); err != nil {
		return nil, err
	}

	clockTime := params.Time
	if clockTime == "" {
		clockTime = models.DefaultTime
	}

	task := &models.Task{
		UserID:    user.UID,
		Name:      params.Name,
		Type:      params.Type,
		Date:      params.Date,
		Time:      clockTime,
		Priority:  params.Priority,
		Notes:     params.Notes,
		Completed: false,
	}

	if err := s.storage.CreateTask(ctx, task); err != nil {
		logger.Error("Service: Не удалось создать задачу", err, zap.String("user_id", user.UID))
		return nil, fmt.Errorf("создание задачи: %w", err)
	}

	session, err := s.Session(ctx, user)
	if err != nil {
		return nil, err
	}
	session.RecordNotification(models.CategoryAdded, task.Name, "")

	return task, nil
}

// EditTask применяет опции к хранимой записи и валидирует результат
func (s *PlannerService) EditTask(ctx context.Context, user models.Identity, taskID string, options ...TaskOption) (*models.Task, error) {
	task, err := s.storage.GetTask(ctx, user.UID, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", taskID))
			return nil, NewNotFound("задача", taskID)
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}

	for _, opt := range options {
		opt(task)
	}

	if task.Time == "" {
		task.Time = models.DefaultTime
	}

	if err := validateTask(task.Name, task.Date, task.Time); err != nil {
		return nil, err
	}

	if err := s.storage.UpdateTask(ctx, task); err != nil {
		logger.Error("Service: Не удалось обновить задачу", err, zap.String("target_id", taskID))
		return nil, fmt.Errorf("обновление задачи: %w", err)
	}

	return task, nil
}

// SetCompleted — пессимистичная отметка выполнения: сначала запись в
// хранилище, зеркало меняется только со следующим снапшотом. Откатывать
// при ошибке нечего — локальное состояние не трогалось.
func (s *PlannerService) SetCompleted(ctx context.Context, user models.Identity, taskID string, completed bool) (*models.Task, error) {
	task, err := s.storage.SetCompleted(ctx, user.UID, taskID, completed)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewNotFound("задача", taskID)
		}
		logger.Error("Service: Не удалось отметить задачу", err, zap.String("target_id", taskID))
		return nil, fmt.Errorf("отметка выполнения: %w", err)
	}
	return task, nil
}

// DeleteTask снимает имя задачи до удаления — оно нужно уведомлению removed
func (s *PlannerService) DeleteTask(ctx context.Context, user models.Identity, taskID string) error {
	task, err := s.storage.GetTask(ctx, user.UID, taskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NewNotFound("задача", taskID)
		}
		return fmt.Errorf("получение задачи: %w", err)
	}

	if err := s.storage.DeleteTask(ctx, user.UID, taskID); err != nil {
		logger.Error("Service: Не удалось удалить задачу", err, zap.String("target_id", taskID))
		return fmt.Errorf("удаление задачи: %w", err)
	}

	session, err := s.Session(ctx, user)
	if err != nil {
		return err
	}
	session.RecordNotification(models.CategoryRemoved, task.Name, "")

	return nil
}

func (s *PlannerService) Profile(ctx context.Context, user models.Identity) (*models.Profile, error) {
	if err := s.ensureProfile(ctx, user); err != nil {
		return nil, err
	}
	return s.storage.LoadProfile(ctx, user.UID)
}

type UpdateProfileParams struct {
	Name         string
	PhotoURL     string
	MusicPaused  *bool
	MusicStarted *bool
}

func (s *PlannerService) SaveProfile(ctx context.Context, user models.Identity, params UpdateProfileParams) (*models.Profile, error) {
	if params.Name == "" {
		return nil, NewValidationError("name", "имя не может быть пустым")
	}

	profile, err := s.Profile(ctx, user)
	if err != nil {
		return nil, err
	}

	profile.Name = params.Name
	profile.PhotoURL = params.PhotoURL
	if params.MusicPaused != nil {
		profile.MusicPaused = *params.MusicPaused
	}
	if params.MusicStarted != nil {
		profile.MusicStarted = *params.MusicStarted
	}

	if err := s.storage.SaveProfile(ctx, user.UID, profile); err != nil {
		logger.Error("Service: Не удалось сохранить профиль", err, zap.String("user_id", user.UID))
		return nil, fmt.Errorf("сохранение профиля: %w", err)
	}

	return profile, nil
}
