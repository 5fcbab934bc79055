package handlers

import (
	"net/http"
	"strconv"
	"time"

	"smartPlanner/internal/handlers/dto"
	"smartPlanner/internal/logger"
	"smartPlanner/internal/planner"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *PlannerHandler) GetTodayView(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	tasks, err := h.Service.TodayView(r.Context(), user)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err, zap.String("operation", "today_view"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задачи на сегодня отданы",
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)))

	responseWithJSON(w, http.StatusOK, toPayload("tasks", dto.FromTaskList(tasks)))
}

func (h *PlannerHandler) GetUpcomingView(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	tasks, err := h.Service.UpcomingView(r.Context(), user)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err, zap.String("operation", "upcoming_view"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Предстоящие задачи отданы",
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)))

	responseWithJSON(w, http.StatusOK, toPayload("tasks", dto.FromTaskList(tasks)))
}

func (h *PlannerHandler) GetSummaryView(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	summary, err := h.Service.SummaryView(r.Context(), user)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err, zap.String("operation", "summary_view"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("summary", dto.SummaryResponse{
		Greeting:  planner.Greeting(time.Now()),
		Due:       summary.Due,
		Exams:     summary.Exams,
		Completed: summary.Completed,
	}))
}

func (h *PlannerHandler) GetProgressView(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	percent, tasks, err := h.Service.ProgressView(r.Context(), user)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err, zap.String("operation", "progress_view"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Прогресс отдан",
		zap.Int("percent", percent),
		zap.Duration("ms", time.Since(start)))

	responseWithJSON(w, http.StatusOK, toPayload("progress", dto.ProgressResponse{
		Percent: percent,
		Tasks:   dto.FromTaskList(tasks),
	}))
}

// GetCalendarView отдаёт раскладку невыполненных задач месяца по дням
func (h *PlannerHandler) GetCalendarView(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		responseWithError(w, http.StatusBadRequest, "не удалось получить год:"+err.Error())
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		logger.Warn("HTTP: Неверное значение месяца",
			zap.String("month", chi.URLParam(r, "month")),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "месяц должен быть от 1 до 12")
		return
	}

	buckets, err := h.Service.CalendarView(r.Context(), user, year, month)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err, zap.String("operation", "calendar_view"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	days := make(map[int][]dto.TaskResponse, len(buckets))
	for day, tasks := range buckets {
		days[day] = dto.FromTaskList(tasks)
	}

	responseWithJSON(w, http.StatusOK, toPayload("calendar", dto.CalendarResponse{
		Year:  year,
		Month: month,
		Days:  days,
	}))
}

// GetDayView — детальный список дня, выполненные задачи не скрываются
func (h *PlannerHandler) GetDayView(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	year, errY := strconv.Atoi(chi.URLParam(r, "year"))
	month, errM := strconv.Atoi(chi.URLParam(r, "month"))
	day, errD := strconv.Atoi(chi.URLParam(r, "day"))
	if errY != nil || errM != nil || errD != nil {
		responseWithError(w, http.StatusBadRequest, "неверная дата")
		return
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		responseWithError(w, http.StatusBadRequest, "такой даты не существует")
		return
	}

	tasks, err := h.Service.DayView(r.Context(), user, date.Format(planner.DateLayout))
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err, zap.String("operation", "day_view"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("tasks", dto.FromTaskList(tasks)))
}
