package chat

import (
	"context"
	"strings"
	"time"

	"smartPlanner/internal/logger"
	"smartPlanner/internal/models"
	"smartPlanner/internal/relay"
)

// FAQ-виджет: статическая таблица вопрос-ответ плюс пересылка
// свободного текста команде через почтовый релей.

const ModeNormal = "normal"
const ModeEmail = "email"

const contactSentinel = "contact"

const fallbackReply = "Sorry, I can only answer based on the FAQ or send messages to our team right now"
const contactPrompt = "You can now type your problem below. When done, click 'Send' to contact the team"
const sentReply = "Your message has been sent to the Smart Planner Team. We'll get back to you soon!"
const sendFailedReply = "Failed to send message. Please try again later."

type entry struct {
	question string
	answer   string
}

// порядок записей — это порядок кнопок в виджете
var faq = []entry{
	{"How to edit task?", "Go to your task list, click the task, select 'Edit' icon, make your changes, then click 'Save'."},
	{"How to add task?", "Go to 'Add Task', fill in the details, and click 'Save' to add it to your planner."},
	{"How to delete task?", "Click the task, select 'Delete' icon, and confirm to remove it."},
	{"How does priority task level work?", "Priority levels (Low, Medium, High) determine importance. High-priority tasks are highlighted."},
	{"Any problem? Contact this team", contactSentinel},
}

type Bot struct {
	relay *relay.Client
}

func NewBot(relayClient *relay.Client) *Bot {
	return &Bot{relay: relayClient}
}

// Questions — список вопросов для кнопок виджета
func (b *Bot) Questions() []string {
	res := make([]string, len(faq))
	for i, e := range faq {
		res[i] = e.question
	}
	return res
}

type Reply struct {
	Reply string `json:"reply"`
	Mode  string `json:"mode"`
}

// Respond обрабатывает одно сообщение. В обычном режиме ищется запись FAQ
// по вхождению без учёта регистра; запись contact переключает разговор в
// почтовый режим. В почтовом режиме текст уходит релеем команде, имя и
// адрес берутся из вошедшего пользователя.
func (b *Bot) Respond(ctx context.Context, user models.Identity, mode, message string) Reply {
	message = strings.TrimSpace(message)
	if message == "" {
		return Reply{Reply: fallbackReply, Mode: mode}
	}

	if mode == ModeEmail {
		name := user.Name
		if name == "" {
			name = "Smart Planner User"
		}
		email := user.Email
		if email == "" {
			email = "unknown@example.com"
		}

		err := b.relay.Send(ctx, relay.Message{
			Name:    name,
			Email:   email,
			Time:    time.Now().Format("1/2/2006, 3:04:05 PM"),
			Message: message,
		})
		if err != nil {
			logger.Error("Chat: Не удалось переслать сообщение", err)
			return Reply{Reply: sendFailedReply, Mode: ModeEmail}
		}

		return Reply{Reply: sentReply, Mode: ModeEmail}
	}

	for _, e := range faq {
		if !strings.Contains(strings.ToLower(message), strings.ToLower(e.question)) {
			continue
		}
		if e.answer == contactSentinel {
			return Reply{Reply: contactPrompt, Mode: ModeEmail}
		}
		return Reply{Reply: e.answer, Mode: ModeNormal}
	}

	return Reply{Reply: fallbackReply, Mode: ModeNormal}
}
