package handlers

import (
	"net/http"

	"smartPlanner/internal/handlers/dto"
	"smartPlanner/internal/logger"
	"smartPlanner/internal/models"
	"smartPlanner/internal/planner"

	"go.uber.org/zap"
)

func (h *PlannerHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	feed, err := h.Service.Notifications(r.Context(), user)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err, zap.String("operation", "notifications"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := dto.NotificationsResponse{
		Notifications: feed.Entries,
		Unread:        feed.Unread,
		Badge:         feed.Badge,
	}
	if len(feed.Entries) == 0 {
		response.Notifications = []models.Notification{}
		response.Placeholder = planner.EmptyLedgerMessage
	}

	responseWithJSON(w, http.StatusOK, toPayload("feed", response))
}

// MarkNotificationsRead вызывается фронтом при открытии журнала
func (h *PlannerHandler) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.Service.MarkNotificationsRead(r.Context(), user); err != nil {
		logger.Error("HTTP: Ошибка Service", err, zap.String("operation", "mark_read"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Уведомления прочитаны", zap.String("user_id", user.UID))
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlannerHandler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.Service.ClearNotifications(r.Context(), user); err != nil {
		logger.Error("HTTP: Ошибка Service", err, zap.String("operation", "clear_notifications"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Журнал уведомлений очищен", zap.String("user_id", user.UID))
	w.WriteHeader(http.StatusNoContent)
}
