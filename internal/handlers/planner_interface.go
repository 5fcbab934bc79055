package handlers

import (
	"context"

	"smartPlanner/internal/models"
	"smartPlanner/internal/planner"
	"smartPlanner/internal/service"
)

type Service interface {
	HealthCheck(context.Context) error

	AddTask(context.Context, models.Identity, service.CreateTaskParams) (*models.Task, error)
	EditTask(context.Context, models.Identity, string, ...service.TaskOption) (*models.Task, error)
	SetCompleted(context.Context, models.Identity, string, bool) (*models.Task, error)
	DeleteTask(context.Context, models.Identity, string) error

	TodayView(context.Context, models.Identity) ([]models.Task, error)
	UpcomingView(context.Context, models.Identity) ([]models.Task, error)
	SummaryView(context.Context, models.Identity) (planner.Summary, error)
	ProgressView(context.Context, models.Identity) (int, []models.Task, error)
	CalendarView(context.Context, models.Identity, int, int) (map[int][]models.Task, error)
	DayView(context.Context, models.Identity, string) ([]models.Task, error)

	Notifications(context.Context, models.Identity) (service.NotificationFeed, error)
	MarkNotificationsRead(context.Context, models.Identity) error
	ClearNotifications(context.Context, models.Identity) error

	Profile(context.Context, models.Identity) (*models.Profile, error)
	SaveProfile(context.Context, models.Identity, service.UpdateProfileParams) (*models.Profile, error)
	SignOut(context.Context, models.Identity)
}
