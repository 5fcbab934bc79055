package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"smartPlanner/internal/chat"
	"smartPlanner/internal/handlers/dto"
	"smartPlanner/internal/logger"
	"smartPlanner/internal/middleware"
	"smartPlanner/internal/models"
	"smartPlanner/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PlannerHandler struct {
	Service Service
	Bot     *chat.Bot
}

func NewPlannerHandler(svc Service, bot *chat.Bot) PlannerHandler {
	return PlannerHandler{
		Service: svc,
		Bot:     bot,
	}
}

// identity достаёт личность, положенную Auth-мидлварью.
// Без неё сессии нет и рисовать нечего.
func identity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	user, ok := middleware.GetIdentity(r.Context())
	if !ok {
		logger.Warn("HTTP: Запрос без личности пользователя",
			zap.String("path", r.URL.Path),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusUnauthorized, "нет активной сессии")
		return models.Identity{}, false
	}
	return user, true
}

func (h *PlannerHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	if err := h.Service.HealthCheck(r.Context()); err != nil {
		responseWithError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	healthCheck(w)
}

func (h *PlannerHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неверный тип контента",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	var request dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса:"+err.Error())
		return
	}

	logger.Info("HTTP: Вызов сервиса создания задач")
	task, err := h.Service.AddTask(r.Context(), user, service.CreateTaskParams{
		Name:     request.Name,
		Type:     request.Type,
		Date:     request.Date,
		Time:     request.Time,
		Priority: request.Priority,
		Notes:    request.Notes,
	})
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "create_task"),
			zap.String("client_ip", r.RemoteAddr),
			zap.Duration("ms", time.Since(start)))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача создана",
		zap.String("task_id", task.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, toPayload("task", dto.FromTask(task)))
}

func (h *PlannerHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		logger.Warn("HTTP: Неверное значение id",
			zap.String("error", "empty id"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "id не может быть пустым")
		return
	}

	var request dto.UpdateTaskRequest

	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверно переданы параметры обновления:"+err.Error())
		return
	}

	options := []service.TaskOption{}
	if request.Name != nil {
		options = append(options, service.WithName(*request.Name))
	}
	if request.Type != nil {
		options = append(options, service.WithType(*request.Type))
	}
	if request.Date != nil {
		options = append(options, service.WithDate(*request.Date))
	}
	if request.Time != nil {
		options = append(options, service.WithTime(*request.Time))
	}
	if request.Priority != nil {
		options = append(options, service.WithPriority(*request.Priority))
	}
	if request.Notes != nil {
		options = append(options, service.WithNotes(*request.Notes))
	}

	logger.Info("HTTP: запрос к сервису обновления данных")

	task, err := h.Service.EditTask(r.Context(), user, id, options...)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "update_task"),
			zap.String("client_addr", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача обновлена",
		zap.String("task_id", task.ID),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(task)))
}

// CompleteTask — пессимистичная отметка: запись уходит в хранилище,
// зеркало догоняет со следующим снапшотом
func (h *PlannerHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		responseWithError(w, http.StatusBadRequest, "id не может быть пустым")
		return
	}

	var request dto.CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса:"+err.Error())
		return
	}

	task, err := h.Service.SetCompleted(r.Context(), user, id, request.Completed)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "complete_task"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Отметка выполнения изменена",
		zap.String("task_id", task.ID),
		zap.Bool("completed", task.Completed),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(task)))
}

func (h *PlannerHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		logger.Warn("HTTP: Неверное значение id",
			zap.String("error", "empty id"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "id не может быть пустым")
		return
	}

	logger.Info("HTTP: Обращение к сервису для удаления задачи")

	if err := h.Service.DeleteTask(r.Context(), user, id); err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "delete_task"),
			zap.String("client_addr", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача удалена",
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusNoContent))

	w.WriteHeader(http.StatusNoContent)
}

// SignOut завершает сессию: отписка от снапшотов, состояние уничтожается
func (h *PlannerHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	h.Service.SignOut(r.Context(), user)

	logger.Info("HTTP_OUT: Выход выполнен", zap.String("user_id", user.UID))
	w.WriteHeader(http.StatusNoContent)
}
