package planner

import (
	"fmt"
	"math"
	"sort"
	"time"

	"smartPlanner/internal/models"
)

// Summary — счётчики для домашней страницы
type Summary struct {
	Due       int `json:"due"`
	Exams     int `json:"exams"`
	Completed int `json:"completed"`
}

// SortTasks упорядочивает задачи: приоритет по убыванию, дата по
// возрастанию, время по возрастанию (лексикографически, пустое время
// считается "00:00"). Сортировка стабильная, поэтому задачи с равными
// ключами сохраняют порядок зеркала — по возрастанию даты.
func SortTasks(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := &tasks[i], &tasks[j]

		if a.Priority.Weight() != b.Priority.Weight() {
			return a.Priority.Weight() > b.Priority.Weight()
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.ClockTime() < b.ClockTime()
	})
}

// Today — невыполненные задачи с датой, равной сегодняшней
func Today(tasks []models.Task, now time.Time) []models.Task {
	today := Midnight(now)

	res := []models.Task{}
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		parsed, err := time.ParseInLocation(DateLayout, t.Date, now.Location())
		if err != nil {
			continue
		}
		if Midnight(parsed).Equal(today) {
			res = append(res, t)
		}
	}

	SortTasks(res)
	return res
}

// Upcoming — невыполненные задачи строго после сегодня и не дальше 30 дней
func Upcoming(tasks []models.Task, now time.Time) []models.Task {
	today := Midnight(now)
	horizon := today.AddDate(0, 0, 30)

	res := []models.Task{}
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		parsed, err := time.ParseInLocation(DateLayout, t.Date, now.Location())
		if err != nil {
			continue
		}
		day := Midnight(parsed)
		if day.After(today) && !day.After(horizon) {
			res = append(res, t)
		}
	}

	SortTasks(res)
	return res
}

// Summarize считает счётчики по всему зеркалу
func Summarize(tasks []models.Task) Summary {
	s := Summary{}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
			continue
		}
		s.Due++
		if t.Type == models.TypeExam {
			s.Exams++
		}
	}
	return s
}

// ProgressPercent — доля выполненных задач, округлённая до целого процента.
// Пустое зеркало даёт 0.
func ProgressPercent(tasks []models.Task) int {
	if len(tasks) == 0 {
		return 0
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	return int(math.Round(float64(completed) / float64(len(tasks)) * 100))
}

// CalendarBuckets раскладывает невыполненные задачи месяца по дням.
// Сопоставление идёт по точному совпадению строки даты.
func CalendarBuckets(tasks []models.Task, year, month int) map[int][]models.Task {
	buckets := make(map[int][]models.Task)

	for _, t := range tasks {
		if t.Completed {
			continue
		}
		for day := 1; day <= daysInMonth(year, month); day++ {
			if t.Date == fmt.Sprintf("%04d-%02d-%02d", year, month, day) {
				buckets[day] = append(buckets[day], t)
				break
			}
		}
	}

	return buckets
}

// TasksOn — все задачи конкретного дня для детального списка,
// выполненные не отфильтровываются
func TasksOn(tasks []models.Task, date string) []models.Task {
	res := []models.Task{}
	for _, t := range tasks {
		if t.Date == date {
			res = append(res, t)
		}
	}
	return res
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Greeting — приветствие по времени суток для домашней страницы
func Greeting(now time.Time) string {
	hour := now.Hour()
	if hour < 12 {
		return "Good Morning"
	}
	if hour < 18 {
		return "Good Afternoon"
	}
	return "Good Evening"
}
