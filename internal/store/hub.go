package store

import (
	"sync"

	"smartPlanner/internal/logger"
	"smartPlanner/internal/models"

	"go.uber.org/zap"
)

// Hub раздаёт снапшоты коллекции подписчикам. Семантика "последний
// побеждает": если подписчик не успел забрать снапшот, ожидающий
// снапшот заменяется новым, отправитель никогда не блокируется.
type Hub struct {
	mtx    sync.Mutex
	nextID int
	subs   map[string]map[int]chan []models.Task
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[int]chan []models.Task),
	}
}

// Subscribe возвращает канал снапшотов и функцию отписки.
// Отписка закрывает канал, вызывать её можно один раз.
func (h *Hub) Subscribe(userID string) (<-chan []models.Task, func()) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	if h.subs[userID] == nil {
		h.subs[userID] = make(map[int]chan []models.Task)
	}

	id := h.nextID
	h.nextID++

	ch := make(chan []models.Task, 1)
	h.subs[userID][id] = ch

	cancel := func() {
		h.mtx.Lock()
		defer h.mtx.Unlock()

		if sub, ok := h.subs[userID][id]; ok {
			delete(h.subs[userID], id)
			close(sub)
		}
	}

	logger.Info("Hub: Новая подписка на снапшоты", zap.String("user_id", userID))
	return ch, cancel
}

// Publish рассылает снапшот всем подписчикам пользователя
func (h *Hub) Publish(userID string, snapshot []models.Task) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	for _, ch := range h.subs[userID] {
		select {
		case ch <- snapshot:
		default:
			// подписчик не забрал прошлый снапшот — вытесняем его
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
