package planner_test

import (
	"testing"
	"time"

	"smartPlanner/internal/models"
	"smartPlanner/internal/planner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTask(name, date, clock string, priority models.Priority, completed bool) models.Task {
	return models.Task{
		ID:        name,
		Name:      name,
		Type:      models.TypeAssignment,
		Date:      date,
		Time:      clock,
		Priority:  priority,
		Completed: completed,
	}
}

// TestSortTasks тестирует порядок: приоритет > дата > время
func TestSortTasks(t *testing.T) {
	tasks := []models.Task{
		makeTask("low-early", "2026-06-10", "08:00", models.PriorityLow, false),
		makeTask("high-late", "2026-06-20", "20:00", models.PriorityHigh, false),
		makeTask("medium", "2026-06-15", "12:00", models.PriorityMedium, false),
		makeTask("high-early", "2026-06-10", "09:00", models.PriorityHigh, false),
	}

	planner.SortTasks(tasks)

	names := []string{tasks[0].Name, tasks[1].Name, tasks[2].Name, tasks[3].Name}
	// высокий приоритет бьёт более раннюю дату
	assert.Equal(t, []string{"high-early", "high-late", "medium", "low-early"}, names)
}

// TestSortTasks_TimeTiebreak тестирует время как последний ключ,
// пустое время считается "00:00"
func TestSortTasks_TimeTiebreak(t *testing.T) {
	tasks := []models.Task{
		makeTask("noon", "2026-06-10", "12:00", models.PriorityHigh, false),
		makeTask("blank", "2026-06-10", "", models.PriorityHigh, false),
		makeTask("morning", "2026-06-10", "09:00", models.PriorityHigh, false),
	}

	planner.SortTasks(tasks)

	assert.Equal(t, "blank", tasks[0].Name)
	assert.Equal(t, "morning", tasks[1].Name)
	assert.Equal(t, "noon", tasks[2].Name)
}

// TestSortTasks_UnknownPriority тестирует, что нераспознанный приоритет
// уходит в конец списка
func TestSortTasks_UnknownPriority(t *testing.T) {
	tasks := []models.Task{
		makeTask("weird", "2026-06-01", "", models.Priority("urgent"), false),
		makeTask("low", "2026-06-10", "", models.PriorityLow, false),
	}

	planner.SortTasks(tasks)

	assert.Equal(t, "low", tasks[0].Name)
	assert.Equal(t, "weird", tasks[1].Name)
}

// TestToday тестирует выборку задач на сегодня
func TestToday(t *testing.T) {
	now := time.Date(2026, 6, 15, 11, 0, 0, 0, time.UTC)

	tasks := []models.Task{
		makeTask("today", "2026-06-15", "", models.PriorityMedium, false),
		makeTask("today-done", "2026-06-15", "", models.PriorityMedium, true),
		makeTask("tomorrow", "2026-06-16", "", models.PriorityMedium, false),
		makeTask("yesterday", "2026-06-14", "", models.PriorityMedium, false),
		makeTask("broken-date", "15/06/2026", "", models.PriorityMedium, false),
	}

	res := planner.Today(tasks, now)

	require.Len(t, res, 1)
	assert.Equal(t, "today", res[0].Name)
}

// TestUpcoming тестирует окно (сегодня, сегодня+30]
func TestUpcoming(t *testing.T) {
	now := time.Date(2026, 6, 15, 11, 0, 0, 0, time.UTC)

	tasks := []models.Task{
		makeTask("today", "2026-06-15", "", models.PriorityMedium, false),
		makeTask("tomorrow", "2026-06-16", "", models.PriorityMedium, false),
		makeTask("edge-30", "2026-07-15", "", models.PriorityMedium, false),
		makeTask("past-31", "2026-07-16", "", models.PriorityMedium, false),
		makeTask("done", "2026-06-20", "", models.PriorityMedium, true),
	}

	res := planner.Upcoming(tasks, now)

	require.Len(t, res, 2)
	assert.Equal(t, "tomorrow", res[0].Name)
	assert.Equal(t, "edge-30", res[1].Name)
}

// TestSummarize тестирует счётчики домашней страницы
func TestSummarize(t *testing.T) {
	exam := makeTask("exam", "2026-06-20", "", models.PriorityHigh, false)
	exam.Type = models.TypeExam

	examDone := makeTask("exam-done", "2026-06-01", "", models.PriorityHigh, true)
	examDone.Type = models.TypeExam

	tasks := []models.Task{
		makeTask("open", "2026-06-16", "", models.PriorityLow, false),
		exam,
		examDone,
		makeTask("done", "2026-06-10", "", models.PriorityLow, true),
	}

	s := planner.Summarize(tasks)

	assert.Equal(t, 2, s.Due)
	assert.Equal(t, 1, s.Exams, "выполненный экзамен не считается")
	assert.Equal(t, 2, s.Completed)
}

// TestProgressPercent тестирует округление процента выполнения
func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		completed int
		expected  int
	}{
		{name: "пустое зеркало", total: 0, completed: 0, expected: 0},
		{name: "ничего не сделано", total: 4, completed: 0, expected: 0},
		{name: "треть", total: 3, completed: 1, expected: 33},
		{name: "две трети", total: 3, completed: 2, expected: 67},
		{name: "всё", total: 5, completed: 5, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := make([]models.Task, 0, tt.total)
			for i := 0; i < tt.total; i++ {
				tasks = append(tasks, makeTask("t", "2026-06-15", "", models.PriorityLow, i < tt.completed))
			}

			assert.Equal(t, tt.expected, planner.ProgressPercent(tasks))
		})
	}
}

// TestCalendarBuckets тестирует раскладку месяца по дням
func TestCalendarBuckets(t *testing.T) {
	tasks := []models.Task{
		makeTask("mid", "2026-06-15", "", models.PriorityLow, false),
		makeTask("mid-2", "2026-06-15", "", models.PriorityLow, false),
		makeTask("done", "2026-06-15", "", models.PriorityLow, true),
		makeTask("other-month", "2026-07-01", "", models.PriorityLow, false),
		makeTask("unpadded", "2026-6-15", "", models.PriorityLow, false),
	}

	buckets := planner.CalendarBuckets(tasks, 2026, 6)

	require.Len(t, buckets, 1)
	assert.Len(t, buckets[15], 2, "выполненные и даты без нулей не попадают")
}

// TestTasksOn тестирует детальный список дня: выполненные остаются
func TestTasksOn(t *testing.T) {
	tasks := []models.Task{
		makeTask("open", "2026-06-15", "", models.PriorityLow, false),
		makeTask("done", "2026-06-15", "", models.PriorityLow, true),
		makeTask("other", "2026-06-16", "", models.PriorityLow, false),
	}

	res := planner.TasksOn(tasks, "2026-06-15")

	assert.Len(t, res, 2)
}

// TestGreeting тестирует приветствие по часу
func TestGreeting(t *testing.T) {
	day := func(hour int) time.Time {
		return time.Date(2026, 6, 15, hour, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, "Good Morning", planner.Greeting(day(0)))
	assert.Equal(t, "Good Morning", planner.Greeting(day(11)))
	assert.Equal(t, "Good Afternoon", planner.Greeting(day(12)))
	assert.Equal(t, "Good Afternoon", planner.Greeting(day(17)))
	assert.Equal(t, "Good Evening", planner.Greeting(day(18)))
	assert.Equal(t, "Good Evening", planner.Greeting(day(23)))
}
