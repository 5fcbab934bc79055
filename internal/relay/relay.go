package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"smartPlanner/internal/logger"

	"go.uber.org/zap"
)

// Client отправляет письма через внешний почтовый релей: плоский
// JSON-пакет уходит POST-ом на настроенный эндпоинт. Ответ — только
// успех или ошибка, повторов нет: неудача терминальна для операции.
type Client struct {
	httpClient *http.Client
	endpoint   string
	toEmail    string
}

// Message — пакет релея, поля фиксированы его шаблоном
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Time    string `json:"time"`
	Message string `json:"message"`
	ToEmail string `json:"to_email"`
}

func NewClient(endpoint, toEmail string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   endpoint,
		toEmail:    toEmail,
	}
}

// Send подставляет адрес получателя и текущую отметку времени,
// если отправитель их не заполнил
func (c *Client) Send(ctx context.Context, msg Message) error {
	if msg.ToEmail == "" {
		msg.ToEmail = c.toEmail
	}
	if msg.Time == "" {
		msg.Time = time.Now().Format("1/2/2006, 3:04:05 PM")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("сериализация пакета: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("создание запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Relay: Ошибка отправки", err)
		return fmt.Errorf("отправка письма: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("Relay: Релей ответил ошибкой", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("релей ответил статусом %d", resp.StatusCode)
	}

	logger.Info("Relay: Письмо отправлено", zap.String("to", msg.ToEmail))
	return nil
}
