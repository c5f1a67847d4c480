package telegram

import (
	"context"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"worklog-bot/api/internal/session"
	"worklog-bot/api/internal/store"
	"worklog-bot/api/internal/task"
)

func (r *Router) handleCallback(cb tgbotapi.CallbackQuery) {
	_, _ = r.Bot.Request(tgbotapi.NewCallback(cb.ID, "")) // ack
	if cb.Message == nil {
		return
	}
	cid := cb.Message.Chat.ID
	s := r.Sessions.Get(cid)

	switch cb.Data {
	case "clear_buf":
		s.Clear()
		s.ClearPrompt()
		r.send(cid, "🧹 Чернетку очищено.")
	case "new_task":
		if s.Len() == 0 {
			r.send(cid, "⚠️ Чернетка порожня.")
			return
		}
		// the structuring call can take seconds; keep intake responsive
		go r.runCommit(context.Background(), cid, s)
	}
}

// runCommit turns the current draft into a persisted row. The draft is
// cleared only after an append actually succeeded; if both the structured
// and the fallback append fail, the draft survives for a retry.
func (r *Router) runCommit(ctx context.Context, chatID int64, s *session.Session) {
	rawText := strings.Join(s.Snapshot(), "\n")

	structuredText := r.structure(ctx, rawText)

	if structuredText != "" {
		if st, ok := r.Parser.Parse(structuredText); ok {
			if err := r.Sheet.AppendRow(ctx, st.Row(time.Now())); err == nil {
				s.Clear()
				r.removeOldKeyboard(s)
				r.send(chatID, "✅ Задачу структуровано й додано в таблицю:\n\n"+structuredText)
				r.journal(ctx, store.Entry{
					ChatID:   chatID,
					Kind:     "structured",
					Name:     st.Name,
					Tag:      st.Tag,
					Deadline: st.Deadline,
					Priority: st.Priority.String(),
					Desc:     st.Desc,
					RawText:  rawText,
				})
				return
			} else {
				log.Printf("commit: structured append for %d: %v", chatID, err)
				// fall through to the raw append, nothing is lost yet
			}
		} else {
			log.Printf("commit: model response for %d failed validation", chatID)
		}
	}

	if err := r.Sheet.AppendRow(ctx, task.FallbackRow(time.Now(), rawText)); err != nil {
		log.Printf("commit: fallback append for %d: %v", chatID, err)
		r.send(chatID, "❌ Помилка запису у таблицю.")
		return
	}
	s.Clear()
	r.removeOldKeyboard(s)
	r.send(chatID, "⚠️ AI недоступний. Задачу додано як є (в опис).")
	r.journal(ctx, store.Entry{ChatID: chatID, Kind: "fallback", RawText: rawText})
}

// structure runs the model call under the configured timeout. Any failure,
// timeout included, is the same outcome: no structured result.
func (r *Router) structure(ctx context.Context, rawText string) string {
	timeout := r.AITimeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	aictx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := r.Structurer.Structure(aictx, task.AnalystPrompt, rawText)
	if err != nil {
		log.Printf("commit: structuring: %v", err)
		return ""
	}
	return strings.TrimSpace(out)
}

func (r *Router) journal(ctx context.Context, e store.Entry) {
	if r.Journal == nil {
		return
	}
	e.CreatedAt = time.Now()
	if err := r.Journal.Record(ctx, e); err != nil {
		log.Printf("journal: record for %d: %v", e.ChatID, err)
	}
}
