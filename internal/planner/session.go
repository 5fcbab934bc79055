package planner

import (
	"context"
	"sort"
	"sync"
	"time"

	"smartPlanner/internal/logger"
	"smartPlanner/internal/models"

	"go.uber.org/zap"
)

// Session — всё состояние одного вошедшего пользователя: зеркало коллекции
// задач, журнал уведомлений, флаг однократной проверки сроков и текущий
// месяц календаря. Создаётся при входе, уничтожается при выходе.
//
// Зеркало переписывается целиком на каждый снапшот и никогда не
// патчится частично. Мьютекс общий для зеркала и журнала: снапшоты
// применяет одна горутина Run, но HTTP-обработчики читают параллельно.
type Session struct {
	mtx  sync.Mutex
	user models.Identity

	mirror     []models.Task
	ledger     Ledger
	dueChecked bool

	month int
	year  int

	// переопределяется в тестах
	now func() time.Time
}

func NewSession(user models.Identity) *Session {
	now := time.Now()
	return &Session{
		user:  user,
		month: int(now.Month()),
		year:  now.Year(),
		now:   time.Now,
	}
}

func (s *Session) User() models.Identity {
	return s.user
}

// Run принимает снапшоты, пока канал не закрыт или контекст не отменён.
// Запускается в отдельной горутине на каждую сессию.
func (s *Session) Run(ctx context.Context, snapshots <-chan []models.Task) {
	for {
		select {
		case snapshot, ok := <-snapshots:
			if !ok {
				logger.Info("Session: Подписка закрыта", zap.String("user_id", s.user.UID))
				return
			}
			s.ApplySnapshot(snapshot)
		case <-ctx.Done():
			logger.Info("Session: Остановка по контексту", zap.String("user_id", s.user.UID))
			return
		}
	}
}

// ApplySnapshot целиком замещает зеркало содержимым снапшота и сортирует
// его по возрастанию даты (время суток здесь не учитывается, равные даты
// сохраняют взаимный порядок). После самого первого снапшота сессии
// выполняется однократная проверка сроков: по одному due-уведомлению на
// каждую невыполненную задачу со сроком сегодня или завтра. Последующие
// снапшоты эту проверку не запускают.
func (s *Session) ApplySnapshot(snapshot []models.Task) {
	mirror := make([]models.Task, len(snapshot))
	copy(mirror, snapshot)

	sort.SliceStable(mirror, func(i, j int) bool {
		return mirror[i].Date < mirror[j].Date
	})

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.mirror = mirror

	if !s.dueChecked {
		now := s.now()
		for _, t := range mirror {
			if !t.Completed && Classify(t.Date, now) != NotDue {
				s.ledger.Record(models.CategoryDue, t.Name, t.Date, now)
			}
		}
		s.dueChecked = true
	}
}

// Tasks — копия зеркала в его текущем порядке
func (s *Session) Tasks() []models.Task {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	res := make([]models.Task, len(s.mirror))
	copy(res, s.mirror)
	return res
}

func (s *Session) TodayView() []models.Task {
	return Today(s.Tasks(), s.now())
}

func (s *Session) UpcomingView() []models.Task {
	return Upcoming(s.Tasks(), s.now())
}

func (s *Session) SummaryView() Summary {
	return Summarize(s.Tasks())
}

// ProgressView — процент выполнения и полный отсортированный список
func (s *Session) ProgressView() (int, []models.Task) {
	tasks := s.Tasks()
	percent := ProgressPercent(tasks)
	SortTasks(tasks)
	return percent, tasks
}

// CalendarView запоминает показанный месяц и отдаёт раскладку по дням
func (s *Session) CalendarView(year, month int) map[int][]models.Task {
	s.mtx.Lock()
	s.year = year
	s.month = month
	s.mtx.Unlock()

	return CalendarBuckets(s.Tasks(), year, month)
}

func (s *Session) CurrentMonth() (int, int) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.year, s.month
}

func (s *Session) DayView(date string) []models.Task {
	return TasksOn(s.Tasks(), date)
}

// RecordNotification вызывается местами мутаций (добавление, удаление)
func (s *Session) RecordNotification(category models.Category, taskName, taskDate string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.ledger.Record(category, taskName, taskDate, s.now())
}

func (s *Session) Notifications() []models.Notification {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.ledger.Entries()
}

func (s *Session) UnreadCount() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.ledger.UnreadCount()
}

func (s *Session) BadgeLabel() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.ledger.BadgeLabel()
}

// MarkNotificationsRead вызывается при открытии журнала
func (s *Session) MarkNotificationsRead() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.ledger.MarkAllRead()
}

func (s *Session) ClearNotifications() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.ledger.Clear()
}
