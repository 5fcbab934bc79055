package handlers

import (
	"encoding/json"
	"net/http"

	"smartPlanner/internal/chat"
	"smartPlanner/internal/handlers/dto"
	"smartPlanner/internal/logger"

	"go.uber.org/zap"
)

// PostChat отвечает на сообщение пользователя: FAQ-подбор или пересылка письма.
func (h *PlannerHandler) PostChat(w http.ResponseWriter, r *http.Request) {
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

	var request dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса:"+err.Error())
		return
	}

	mode := request.Mode
	if mode == "" {
		mode = chat.ModeNormal
	}

	reply := h.Bot.Respond(r.Context(), user, mode, request.Message)

	response := dto.ChatResponse{
		Reply: reply.Reply,
		Mode:  reply.Mode,
	}
	if reply.Mode == chat.ModeNormal {
		response.Questions = h.Bot.Questions()
	}

	logger.Info("HTTP_OUT: Ответ чата",
		zap.String("user_id", user.UID),
		zap.String("mode", reply.Mode))

	responseWithJSON(w, http.StatusOK, toPayload("chat", response))
}
