package planner_test

import (
	"testing"
	"time"

	"smartPlanner/internal/planner"

	"github.com/stretchr/testify/assert"
)

// TestClassify тестирует классификацию сроков относительно "сегодня"
func TestClassify(t *testing.T) {
	// 15 июня 2026, 14:30 — середина дня, чтобы проверить усечение до полуночи
	now := time.Date(2026, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     string
		expected planner.DueState
	}{
		{name: "сегодня", date: "2026-06-15", expected: planner.DueToday},
		{name: "завтра", date: "2026-06-16", expected: planner.DueTomorrow},
		{name: "послезавтра", date: "2026-06-17", expected: planner.NotDue},
		{name: "вчера", date: "2026-06-14", expected: planner.NotDue},
		{name: "далёкое будущее", date: "2027-01-01", expected: planner.NotDue},
		{name: "пустая дата", date: "", expected: planner.NotDue},
		{name: "мусор вместо даты", date: "not-a-date", expected: planner.NotDue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, planner.Classify(tt.date, now))
		})
	}
}

// TestClassify_MonthBoundary тестирует переход через границу месяца
func TestClassify_MonthBoundary(t *testing.T) {
	now := time.Date(2026, 6, 30, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, planner.DueToday, planner.Classify("2026-06-30", now))
	assert.Equal(t, planner.DueTomorrow, planner.Classify("2026-07-01", now))
}

// TestMidnight тестирует усечение времени суток
func TestMidnight(t *testing.T) {
	in := time.Date(2026, 3, 5, 18, 45, 12, 999, time.UTC)
	out := planner.Midnight(in)

	assert.Equal(t, 2026, out.Year())
	assert.Equal(t, time.March, out.Month())
	assert.Equal(t, 5, out.Day())
	assert.Equal(t, 0, out.Hour())
	assert.Equal(t, 0, out.Minute())
	assert.Equal(t, 0, out.Second())
}
