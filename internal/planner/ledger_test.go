package planner_test

import (
	"fmt"
	"testing"
	"time"

	"smartPlanner/internal/models"
	"smartPlanner/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLedger_Record тестирует шаблоны сообщений по категориям
func TestLedger_Record(t *testing.T) {
	now := time.Date(2026, 6, 15, 9, 5, 0, 0, time.UTC)

	tests := []struct {
		name     string
		category models.Category
		taskName string
		taskDate string
		expected string
	}{
		{
			name:     "добавление",
			category: models.CategoryAdded,
			taskName: "Read Chapter 2",
			expected: "Task **Read Chapter 2** was successfully added.",
		},
		{
			name:     "удаление",
			category: models.CategoryRemoved,
			taskName: "Calculus Exam",
			expected: "Task **Calculus Exam** was removed.",
		},
		{
			name:     "срок сегодня",
			category: models.CategoryDue,
			taskName: "Physics Homework",
			taskDate: "2026-06-15",
			expected: "Task **Physics Homework** is due today.",
		},
		{
			name:     "срок завтра",
			category: models.CategoryDue,
			taskName: "Physics Homework",
			taskDate: "2026-06-16",
			expected: "Task **Physics Homework** is due tomorrow.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ledger planner.Ledger
			ledger.Record(tt.category, tt.taskName, tt.taskDate, now)

			entries := ledger.Entries()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.expected, entries[0].Message)
			assert.Equal(t, "09:05 AM", entries[0].Timestamp)
			assert.False(t, entries[0].Read)
		})
	}
}

// TestLedger_UnknownCategory тестирует, что неизвестная категория не пишется
func TestLedger_UnknownCategory(t *testing.T) {
	var ledger planner.Ledger
	ledger.Record(models.Category("bogus"), "Task", "", time.Now())

	assert.Empty(t, ledger.Entries())
}

// TestLedger_NewestFirst тестирует порядок: новые записи впереди
func TestLedger_NewestFirst(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	var ledger planner.Ledger
	ledger.Record(models.CategoryAdded, "First", "", now)
	ledger.Record(models.CategoryAdded, "Second", "", now.Add(time.Minute))

	entries := ledger.Entries()
	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Message, "Second")
	assert.Contains(t, entries[1].Message, "First")
	assert.Greater(t, entries[0].ID, entries[1].ID)
}

// TestLedger_MonotonicIDs тестирует уникальность ID при записях в одну миллисекунду
func TestLedger_MonotonicIDs(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	var ledger planner.Ledger
	ledger.Record(models.CategoryAdded, "A", "", now)
	ledger.Record(models.CategoryAdded, "B", "", now)
	ledger.Record(models.CategoryAdded, "C", "", now)

	entries := ledger.Entries()
	require.Len(t, entries, 3)
	assert.Greater(t, entries[0].ID, entries[1].ID)
	assert.Greater(t, entries[1].ID, entries[2].ID)
}

// TestLedger_Eviction тестирует вытеснение самой старой записи после 20-й
func TestLedger_Eviction(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	var ledger planner.Ledger
	for i := 0; i < 21; i++ {
		ledger.Record(models.CategoryAdded, fmt.Sprintf("Task %d", i), "", now.Add(time.Duration(i)*time.Second))
	}

	entries := ledger.Entries()
	require.Len(t, entries, 20)
	// самая свежая впереди, самая первая вытеснена
	assert.Contains(t, entries[0].Message, "Task 20")
	assert.Contains(t, entries[19].Message, "Task 1")
	for _, e := range entries {
		assert.NotEqual(t, "Task **Task 0** was successfully added.", e.Message)
	}
}

// TestLedger_Badge тестирует текст бейджа непрочитанных
func TestLedger_Badge(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	var ledger planner.Ledger
	assert.Equal(t, "", ledger.BadgeLabel(), "пустой журнал — бейдж скрыт")

	ledger.Record(models.CategoryAdded, "A", "", now)
	ledger.Record(models.CategoryAdded, "B", "", now)
	assert.Equal(t, "2", ledger.BadgeLabel())
	assert.Equal(t, 2, ledger.UnreadCount())

	ledger.MarkAllRead()
	assert.Equal(t, "", ledger.BadgeLabel())
	assert.Equal(t, 0, ledger.UnreadCount())
	assert.Len(t, ledger.Entries(), 2, "прочитанные записи остаются в журнале")

	ledger.Clear()
	assert.Empty(t, ledger.Entries())
}
