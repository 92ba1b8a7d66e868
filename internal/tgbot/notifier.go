// Package tgbot sends admin notifications through a Telegram bot.
package tgbot

import (
	"fmt"
	"log"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"soc-api/internal/config"
	"soc-api/internal/models"
)

type Notifier struct {
	bot     *tgbotapi.BotAPI
	admins  []int64
	baseURL string
}

func New(cfg config.Config) (*Notifier, error) {
	b, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, err
	}
	b.Debug = false
	return &Notifier{
		bot:     b,
		admins:  adminList(cfg.AdminTGIDs),
		baseURL: cfg.BasePublicURL,
	}, nil
}

func (n *Notifier) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := n.bot.Send(msg)
	return err
}

// WorkAdded tells every admin about a newly submitted work.
func (n *Notifier) WorkAdded(w models.Work) {
	n.broadcast(workText(w, n.baseURL))
}

// ParticipantAdded tells every admin about a newly registered participant.
func (n *Notifier) ParticipantAdded(p models.Participant) {
	n.broadcast(participantText(p))
}

func (n *Notifier) broadcast(text string) {
	for _, id := range n.admins {
		if err := n.SendText(id, text); err != nil {
			log.Printf("notify admin %d: %v", id, err)
		}
	}
}

func workText(w models.Work, baseURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📄 Nová práce #%d\n", w.ID)
	fmt.Fprintf(&b, " Název: %s\n", orDash(models.StrValue(w.Title)))
	fmt.Fprintf(&b, " Obor: %s\n", orDash(models.StrValue(w.Field)))
	fmt.Fprintf(&b, " Škola: %s", orDash(models.StrValue(w.School)))
	if w.Year != nil {
		fmt.Fprintf(&b, "\n Rok: %d", *w.Year)
	}
	if baseURL != "" {
		fmt.Fprintf(&b, "\n📤 CSV: %s/export/csv", baseURL)
	}
	return b.String()
}

func participantText(p models.Participant) string {
	return fmt.Sprintf("👤 Nový účastník #%d\n Jméno: %s\n Škola: %s\n Obor: %s",
		p.ID,
		orDash(models.StrValue(p.Name)),
		orDash(models.StrValue(p.School)),
		orDash(models.StrValue(p.Field)),
	)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func adminList(m map[int64]bool) []int64 {
	out := make([]int64, 0, len(m))
	for id, ok := range m {
		if ok {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
