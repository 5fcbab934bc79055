package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"smartPlanner/internal/logger"
	"smartPlanner/internal/models"
	"smartPlanner/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Storage — реализация удалённого хранилища поверх PostgreSQL.
// Снапшоты рассылаются внутри процесса: после успешной записи коллекция
// пользователя перечитывается целиком и уходит подписчикам через Hub.
type Storage struct {
	pool *pgxpool.Pool
	hub  *store.Hub
}

func New(ctx context.Context, connString string) (*Storage, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		logger.Error("Repository: Ошибка загрузки конфига", err)
		return nil, fmt.Errorf("загрузка конфига: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnIdleTime = time.Minute * 5

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Error("Repository: Ошибка создания пула", err)
		return nil, fmt.Errorf("создание пула: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		logger.Error("Repository: Неудачная проверка ping", err)
		return nil, fmt.Errorf("проверка соединения ping: %w", err)
	}

	logger.Info("Repository: Успешное создание подключения к PostgreSQL")
	return &Storage{pool: pool, hub: store.NewHub()}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
	logger.Info("Repository: Закрытие всех соединений PostgreSQL")
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	err := s.pool.Ping(ctx)
	if err != nil {
		logger.Error("Repository: Неудачная проверка ping", err)
		return fmt.Errorf("проверка соединения ping: %w", err)
	}
	return nil
}

// publish перечитывает коллекцию и рассылает её как полный снапшот.
// Ошибка чтения только логируется: подписчики остаются на последнем
// известном состоянии.
func (s *Storage) publish(ctx context.Context, userID string) {
	snapshot, err := s.LoadTasks(ctx, userID)
	if err != nil {
		logger.Error("Repository: Не удалось собрать снапшот", err, zap.String("user_id", userID))
		return
	}
	s.hub.Publish(userID, snapshot)
}

const taskColumns = `id, user_id, name, type, date, time, priority, notes, completed, created_at, last_updated`

func scanTask(row pgx.Row) (*models.Task, error) {
	t := &models.Task{}
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Name,
		&t.Type,
		&t.Date,
		&t.Time,
		&t.Priority,
		&t.Notes,
		&t.Completed,
		&t.CreatedAt,
		&t.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Storage) LoadTasks(ctx context.Context, userID string) ([]models.Task, error) {
	start := time.Now()

	query := `SELECT ` + taskColumns + `
				FROM tasks
				WHERE user_id = $1
				ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		logger.Error("Repository: Не удалось получить задачи", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			logger.Warn("Repository: Ошибка сканирования задачи", zap.Error(err))
			continue
		}
		tasks = append(tasks, *t)
	}

	if err := rows.Err(); err != nil {
		logger.Error("Repository: Ошибка итерации по строкам", err)
		return nil, fmt.Errorf("итерация по строкам: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return tasks, nil
}

func (s *Storage) GetTask(ctx context.Context, userID, taskID string) (*models.Task, error) {
	start := time.Now()

	query := `SELECT ` + taskColumns + `
				FROM tasks
				WHERE user_id = $1 AND id = $2`

	t, err := scanTask(s.pool.QueryRow(ctx, query, userID, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		logger.Error("Repository: Не удалось получить задачу", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	return t, nil
}

func (s *Storage) CreateTask(ctx context.Context, taskToCreate *models.Task) error {
	start := time.Now()

	taskToCreate.ID = uuid.New().String()

	query := `INSERT INTO tasks
				(id, user_id, name, type, date, time, priority, notes, completed, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
				RETURNING created_at`

	err := s.pool.QueryRow(ctx, query,
		taskToCreate.ID,
		taskToCreate.UserID,
		taskToCreate.Name,
		taskToCreate.Type,
		taskToCreate.Date,
		taskToCreate.Time,
		taskToCreate.Priority,
		taskToCreate.Notes,
		taskToCreate.Completed,
	).Scan(&taskToCreate.CreatedAt)

	if err != nil {
		logger.Error("Repository: Не удалось добавить задачу", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("добавление задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*50 {
		logger.Warn("Repository: Медленный запрос", zap.Duration("ms", time.Since(start)))
	}

	s.publish(ctx, taskToCreate.UserID)
	return nil
}

func (s *Storage) UpdateTask(ctx context.Context, taskToUpdate *models.Task) error {
	start := time.Now()

	query := `UPDATE tasks
			SET name = $1,
				type = $2,
				date = $3,
				time = $4,
				priority = $5,
				notes = $6,
				completed = $7,
				last_updated = NOW()
			WHERE user_id = $8 AND id = $9
			RETURNING last_updated`

	err := s.pool.QueryRow(ctx, query,
		taskToUpdate.Name,
		taskToUpdate.Type,
		taskToUpdate.Date,
		taskToUpdate.Time,
		taskToUpdate.Priority,
		taskToUpdate.Notes,
		taskToUpdate.Completed,
		taskToUpdate.UserID,
		taskToUpdate.ID,
	).Scan(&taskToUpdate.LastUpdated)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.ErrNotFound
		}
		logger.Error("Repository: Не удалось обновить задачу", err)
		return fmt.Errorf("обновление задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}

	s.publish(ctx, taskToUpdate.UserID)
	return nil
}

func (s *Storage) SetCompleted(ctx context.Context, userID, taskID string, completed bool) (*models.Task, error) {
	start := time.Now()

	query := `UPDATE tasks
			SET completed = $1,
				last_updated = NOW()
			WHERE user_id = $2 AND id = $3
			RETURNING ` + taskColumns

	t, err := scanTask(s.pool.QueryRow(ctx, query, completed, userID, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		logger.Error("Repository: Не удалось отметить задачу", err)
		return nil, fmt.Errorf("отметка выполнения: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}

	s.publish(ctx, userID)
	return t, nil
}

func (s *Storage) DeleteTask(ctx context.Context, userID, taskID string) error {
	start := time.Now()

	query := `DELETE FROM tasks
				WHERE user_id = $1 AND id = $2`

	tag, err := s.pool.Exec(ctx, query, userID, taskID)
	if err != nil {
		logger.Error("Repository: Не удалось удалить задачу", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("удаление задачи: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}

	s.publish(ctx, userID)
	return nil
}

// Subscribe сразу отдаёт текущее состояние коллекции,
// дальше снапшоты приходят после каждой записи
func (s *Storage) Subscribe(ctx context.Context, userID string) (<-chan []models.Task, func()) {
	ch, cancel := s.hub.Subscribe(userID)
	s.publish(ctx, userID)
	return ch, cancel
}

func (s *Storage) LoadProfile(ctx context.Context, userID string) (*models.Profile, error) {
	start := time.Now()

	query := `SELECT name, email, photo_url, music_paused, music_started, created_at, last_updated
				FROM profiles
				WHERE user_id = $1`

	p := &models.Profile{}
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&p.Name,
		&p.Email,
		&p.PhotoURL,
		&p.MusicPaused,
		&p.MusicStarted,
		&p.CreatedAt,
		&p.LastUpdated,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		logger.Error("Repository: Не удалось получить профиль", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение профиля: %w", err)
	}

	return p, nil
}

func (s *Storage) SaveProfile(ctx context.Context, userID string, profile *models.Profile) error {
	start := time.Now()

	query := `INSERT INTO profiles
				(user_id, name, email, photo_url, music_paused, music_started, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, NOW())
			ON CONFLICT (user_id) DO UPDATE
			SET name = EXCLUDED.name,
				email = EXCLUDED.email,
				photo_url = EXCLUDED.photo_url,
				music_paused = EXCLUDED.music_paused,
				music_started = EXCLUDED.music_started,
				last_updated = NOW()
			RETURNING created_at, last_updated`

	err := s.pool.QueryRow(ctx, query,
		userID,
		profile.Name,
		profile.Email,
		profile.PhotoURL,
		profile.MusicPaused,
		profile.MusicStarted,
	).Scan(&profile.CreatedAt, &profile.LastUpdated)

	if err != nil {
		logger.Error("Repository: Не удалось сохранить профиль", err)
		return fmt.Errorf("сохранение профиля: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}

	return nil
}

func (s *Storage) Migrate(ctx context.Context) error {
	logger.Info("Попытка миграций")

	initUp, err := os.ReadFile("internal/migrations/001_init.up.sql")
	if err != nil {
		logger.Error("failed to read 001_init.up.sql", err)
		return err
	}

	indexesUp, err := os.ReadFile("internal/migrations/002_indexes.up.sql")
	if err != nil {
		logger.Error("failed to read 002_indexes.up.sql", err)
		return err
	}

	_, err = s.pool.Exec(ctx, string(initUp))
	if err != nil {
		logger.Error("failed to apply 001_init", err)
		return err
	}

	_, err = s.pool.Exec(ctx, string(indexesUp))
	if err != nil {
		logger.Error("failed to apply 002_indexes", err)
		return err
	}

	logger.Info("Миграции применены")
	return nil
}

func (s *Storage) Down(ctx context.Context) error {
	logger.Info("Откат миграций")

	indexesDown, err := os.ReadFile("internal/migrations/002_indexes.down.sql")
	if err != nil {
		logger.Error("failed to read 002_indexes.down.sql", err)
		return err
	}

	initDown, err := os.ReadFile("internal/migrations/001_init.down.sql")
	if err != nil {
		logger.Error("failed to read 001_init.down.sql", err)
		return err
	}

	_, err = s.pool.Exec(ctx, string(indexesDown))
	if err != nil {
		logger.Error("failed to rollback 002_indexes", err)
		return err
	}

	_, err = s.pool.Exec(ctx, string(initDown))
	if err != nil {
		logger.Error("failed to rollback 001_init", err)
		return err
	}

	logger.Info("Откат миграций завершён")
	return nil
}
