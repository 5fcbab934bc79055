package planner

import (
	"context"
	"sync"

	"smartPlanner/internal/logger"
	"smartPlanner/internal/models"
	"smartPlanner/internal/store"

	"go.uber.org/zap"
)

// Manager ведёт активные сессии по идентификатору пользователя.
// Первое обращение создаёт сессию: подписка на снапшоты хранилища и
// горутина Run. End отписывает и выбрасывает сессию — это выход из
// аккаунта. Shutdown закрывает всё при остановке приложения.
type Manager struct {
	mtx      sync.Mutex
	storage  store.Store
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	session *Session
	cancel  func()
}

func NewManager(storage store.Store) *Manager {
	return &Manager{
		storage:  storage,
		sessions: make(map[string]*sessionEntry),
	}
}

// Get возвращает существующую сессию или создаёт новую.
// Контекст относится только к вызову подписки, не к жизни сессии.
func (m *Manager) Get(ctx context.Context, user models.Identity) *Session {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	if entry, ok := m.sessions[user.UID]; ok {
		return entry.session
	}

	session := NewSession(user)
	snapshots, cancel := m.storage.Subscribe(ctx, user.UID)

	go session.Run(context.Background(), snapshots)

	m.sessions[user.UID] = &sessionEntry{session: session, cancel: cancel}
	logger.Info("Manager: Сессия создана", zap.String("user_id", user.UID))

	return session
}

// Lookup — сессия без создания, для операций над уже открытой сессией
func (m *Manager) Lookup(userID string) (*Session, bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	entry, ok := m.sessions[userID]
	if !ok {
		return nil, false
	}
	return entry.session, true
}

// End — выход из аккаунта: отписка от снапшотов и уничтожение состояния
func (m *Manager) End(userID string) {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	entry, ok := m.sessions[userID]
	if !ok {
		return
	}

	entry.cancel()
	delete(m.sessions, userID)
	logger.Info("Manager: Сессия завершена", zap.String("user_id", userID))
}

func (m *Manager) Shutdown() {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	for id, entry := range m.sessions {
		entry.cancel()
		delete(m.sessions, id)
	}
	logger.Info("Manager: Все сессии завершены")
}
