package planner

import (
	"fmt"
	"strconv"
	"time"

	"smartPlanner/internal/models"
)

// журнал держит не больше 20 записей, старые вытесняются
const maxLedgerEntries = 20

// EmptyLedgerMessage отдаётся слою отображения вместо пустого списка
const EmptyLedgerMessage = "No new notifications."

// Ledger — журнал уведомлений, новые записи впереди.
// Сам по себе не потокобезопасен: им владеет Session и ходит к нему
// только под своим мьютексом.
type Ledger struct {
	entries []models.Notification
	lastID  int64
}

// Record собирает сообщение по шаблону категории и кладёт запись в начало
// журнала непрочитанной. Для категории due метка "today"/"tomorrow"
// выводится заново из даты задачи.
func (l *Ledger) Record(category models.Category, taskName, taskDate string, now time.Time) {
	var message string

	switch category {
	case models.CategoryAdded:
		message = fmt.Sprintf("Task **%s** was successfully added.", taskName)
	case models.CategoryRemoved:
		message = fmt.Sprintf("Task **%s** was removed.", taskName)
	case models.CategoryDue:
		dueText := "tomorrow"
		if Classify(taskDate, now) == DueToday {
			dueText = "today"
		}
		message = fmt.Sprintf("Task **%s** is due %s.", taskName, dueText)
	default:
		return
	}

	// идентификатор выводится из времени; при двух записях в одну
	// миллисекунду монотонность сохраняется вручную
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id

	entry := models.Notification{
		ID:        id,
		Message:   message,
		Timestamp: now.Format("03:04 PM"),
		Category:  category,
		Read:      false,
	}

	l.entries = append([]models.Notification{entry}, l.entries...)
	if len(l.entries) > maxLedgerEntries {
		l.entries = l.entries[:maxLedgerEntries]
	}
}

func (l *Ledger) MarkAllRead() {
	for i := range l.entries {
		l.entries[i].Read = true
	}
}

func (l *Ledger) Clear() {
	l.entries = nil
}

// Entries отдаёт копию журнала, новые записи первыми
func (l *Ledger) Entries() []models.Notification {
	res := make([]models.Notification, len(l.entries))
	copy(res, l.entries)
	return res
}

func (l *Ledger) UnreadCount() int {
	count := 0
	for _, e := range l.entries {
		if !e.Read {
			count++
		}
	}
	return count
}

// BadgeLabel — текст бейджа: пустая строка при нуле (бейдж скрыт),
// "99+" после 99 непрочитанных
func (l *Ledger) BadgeLabel() string {
	unread := l.UnreadCount()
	if unread == 0 {
		return ""
	}
	if unread > 99 {
		return "99+"
	}
	return strconv.Itoa(unread)
}
