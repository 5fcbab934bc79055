package handlers

import (
	"encoding/json"
	"net/http"

	"smartPlanner/internal/handlers/dto"
	"smartPlanner/internal/logger"
	"smartPlanner/internal/service"

	"go.uber.org/zap"
)

func (h *PlannerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	profile, err := h.Service.Profile(r.Context(), user)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: Ошибка Service", err, zap.String("operation", "get_profile"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	responseWithJSON(w, http.StatusOK, toPayload("profile", profile))
}

func (h *PlannerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP_IN:")

	user, ok := identity(w, r)
	if !ok {
		return
	}

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неверный тип контента",
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	var request dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса:"+err.Error())
		return
	}

	profile, err := h.Service.SaveProfile(r.Context(), user, service.UpdateProfileParams{
		Name:         request.Name,
		PhotoURL:     request.PhotoURL,
		MusicPaused:  request.MusicPaused,
		MusicStarted: request.MusicStarted,
	})
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: Ошибка Service", err, zap.String("operation", "update_profile"))
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Профиль обновлён", zap.String("user_id", user.UID))
	responseWithJSON(w, http.StatusOK, toPayload("profile", profile))
}
