package service

import (
	"context"

	"smartPlanner/internal/models"
	"smartPlanner/internal/planner"
)

// Производные представления считаются заново от зеркала на каждый запрос,
// инкрементального сопровождения нет.

func (s *PlannerService) TodayView(ctx context.Context, user models.Identity) ([]models.Task, error) {
	session, err := s.Session(ctx, user)
	if err != nil {
		return nil, err
	}
	return session.TodayView(), nil
}

func (s *PlannerService) UpcomingView(ctx context.Context, user models.Identity) ([]models.Task, error) {
	session, err := s.Session(ctx, user)
	if err != nil {
		return nil, err
	}
	return session.UpcomingView(), nil
}

func (s *PlannerService) SummaryView(ctx context.Context, user models.Identity) (planner.Summary, error) {
	session, err := s.Session(ctx, user)
	if err != nil {
		return planner.Summary{}, err
	}
	return session.SummaryView(), nil
}

func (s *PlannerService) ProgressView(ctx context.Context, user models.Identity) (int, []models.Task, error) {
	session, err := s.Session(ctx, user)
	if err != nil {
		return 0, nil, err
	}
	percent, tasks := session.ProgressView()
	return percent, tasks, nil
}

func (s *PlannerService) CalendarView(ctx context.Context, user models.Identity, year, month int) (map[int][]models.Task, error) {
	session, err := s.Session(ctx, user)
	if err != nil {
		return nil, err
	}
	return session.CalendarView(year, month), nil
}

func (s *PlannerService) DayView(ctx context.Context, user models.Identity, date string) ([]models.Task, error) {
	session, err := s.Session(ctx, user)
	if err != nil {
		return nil, err
	}
	return session.DayView(date), nil
}

// NotificationFeed — журнал вместе с проекцией для бейджа
type NotificationFeed struct {
	Entries []models.Notification
	Unread  int
	Badge   string
}

func (s *PlannerService) Notifications(ctx context.Context, user models.Identity) (NotificationFeed, error) {
	session, err := s.Session(ctx, user)
	if err != nil {
		return NotificationFeed{}, err
	}

	return NotificationFeed{
		Entries: session.Notifications(),
		Unread:  session.UnreadCount(),
		Badge:   session.BadgeLabel(),
	}, nil
}

// MarkNotificationsRead вызывается при открытии журнала пользователем
func (s *PlannerService) MarkNotificationsRead(ctx context.Context, user models.Identity) error {
	session, err := s.Session(ctx, user)
	if err != nil {
		return err
	}
	session.MarkNotificationsRead()
	return nil
}

func (s *PlannerService) ClearNotifications(ctx context.Context, user models.Identity) error {
	session, err := s.Session(ctx, user)
	if err != nil {
		return err
	}
	session.ClearNotifications()
	return nil
}
