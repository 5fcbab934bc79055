package planner

import "time"

const DateLayout = "2006-01-02"

type DueState int

const (
	NotDue DueState = iota
	DueToday
	DueTomorrow
)

// Classify сравнивает календарный день задачи с сегодняшним и завтрашним.
// Время суток обрезается до полуночи, поэтому задача на завтра в 23:59
// остаётся "завтрашней" независимо от того, сколько часов до неё осталось.
// Просроченные на два и более дня задачи сюда не попадают.
// Нечитаемая дата считается не-срочной.
func Classify(date string, now time.Time) DueState {
	parsed, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return NotDue
	}

	today := Midnight(now)
	dueDay := Midnight(parsed)

	switch {
	case dueDay.Equal(today):
		return DueToday
	case dueDay.Equal(today.AddDate(0, 0, 1)):
		return DueTomorrow
	}
	return NotDue
}

func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
