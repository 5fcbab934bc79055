package planner

import (
	"context"
	"testing"
	"time"

	"smartPlanner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(now time.Time) *Session {
	s := NewSession(models.Identity{UID: "u1", Name: "Student"})
	s.now = func() time.Time { return now }
	return s
}

// TestSession_DueSweepOnce тестирует однократную проверку сроков:
// первый снапшот пишет due-уведомления, последующие — нет
func TestSession_DueSweepOnce(t *testing.T) {
	now := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	s := testSession(now)

	first := []models.Task{
		{ID: "1", Name: "Today Task", Date: "2026-06-15"},
		{ID: "2", Name: "Tomorrow Task", Date: "2026-06-16"},
		{ID: "3", Name: "Far Task", Date: "2026-07-01"},
		{ID: "4", Name: "Done Today", Date: "2026-06-15", Completed: true},
	}
	s.ApplySnapshot(first)

	entries := s.Notifications()
	require.Len(t, entries, 2, "по уведомлению на каждую невыполненную задачу со сроком сегодня/завтра")
	assert.Equal(t, 2, s.UnreadCount())

	// второй снапшот с новой задачей на сегодня — проверка уже выполнена
	second := append(first, models.Task{ID: "5", Name: "Late Arrival", Date: "2026-06-15"})
	s.ApplySnapshot(second)

	assert.Len(t, s.Notifications(), 2, "повторной проверки быть не должно")
}

// TestSession_MirrorReplaced тестирует полное замещение зеркала снапшотом
func TestSession_MirrorReplaced(t *testing.T) {
	now := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	s := testSession(now)

	s.ApplySnapshot([]models.Task{
		{ID: "1", Name: "A", Date: "2026-08-01"},
		{ID: "2", Name: "B", Date: "2026-07-01"},
	})

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	// зеркало держится в порядке возрастания даты
	assert.Equal(t, "B", tasks[0].Name)
	assert.Equal(t, "A", tasks[1].Name)

	s.ApplySnapshot([]models.Task{{ID: "3", Name: "C", Date: "2026-09-01"}})

	tasks = s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "C", tasks[0].Name)
}

// TestSession_Views тестирует представления поверх зеркала
func TestSession_Views(t *testing.T) {
	now := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	s := testSession(now)

	s.ApplySnapshot([]models.Task{
		{ID: "1", Name: "Today", Date: "2026-06-15", Priority: models.PriorityHigh},
		{ID: "2", Name: "Soon", Date: "2026-06-20", Priority: models.PriorityLow},
		{ID: "3", Name: "Done", Date: "2026-06-15", Completed: true},
	})

	assert.Len(t, s.TodayView(), 1)
	assert.Len(t, s.UpcomingView(), 1)

	summary := s.SummaryView()
	assert.Equal(t, 2, summary.Due)
	assert.Equal(t, 1, summary.Completed)

	percent, all := s.ProgressView()
	assert.Equal(t, 33, percent)
	assert.Len(t, all, 3)

	buckets := s.CalendarView(2026, 6)
	assert.Len(t, buckets[15], 1)
	assert.Len(t, buckets[20], 1)

	year, month := s.CurrentMonth()
	assert.Equal(t, 2026, year)
	assert.Equal(t, 6, month)

	assert.Len(t, s.DayView("2026-06-15"), 2, "детальный список дня включает выполненные")
}

// TestSession_Notifications тестирует журнал через сессию
func TestSession_Notifications(t *testing.T) {
	now := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	s := testSession(now)
	s.ApplySnapshot(nil)

	s.RecordNotification(models.CategoryAdded, "New Task", "")
	assert.Equal(t, "1", s.BadgeLabel())

	s.MarkNotificationsRead()
	assert.Equal(t, "", s.BadgeLabel())
	assert.Len(t, s.Notifications(), 1)

	s.ClearNotifications()
	assert.Empty(t, s.Notifications())
}

// TestSession_Run тестирует цикл приёма снапшотов и остановку по закрытию канала
func TestSession_Run(t *testing.T) {
	now := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	s := testSession(now)

	snapshots := make(chan []models.Task, 1)
	done := make(chan struct{})

	go func() {
		s.Run(context.Background(), snapshots)
		close(done)
	}()

	snapshots <- []models.Task{{ID: "1", Name: "A", Date: "2026-06-20"}}
	close(snapshots)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run не завершился после закрытия канала")
	}

	assert.Len(t, s.Tasks(), 1)
}
