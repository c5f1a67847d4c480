package telegram

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"worklog-bot/api/internal/session"
)

func draftKeyboard() tgbotapi.InlineKeyboardMarkup {
	create := tgbotapi.NewInlineKeyboardButtonData("📌 Створити задачу", "new_task")
	clear := tgbotapi.NewInlineKeyboardButtonData("🧹 Очистити", "clear_buf")
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(create),
		tgbotapi.NewInlineKeyboardRow(clear),
	)
}

// removeOldKeyboard strips the buttons from the previously tracked prompt.
// Best effort: the message may be deleted or too old to edit, and a stale
// button set is cosmetic, so failures are logged and swallowed.
func (r *Router) removeOldKeyboard(s *session.Session) {
	ref, ok := s.TakePrompt()
	if !ok {
		return
	}
	edit := tgbotapi.NewEditMessageReplyMarkup(ref.ChatID, ref.MessageID,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}})
	if _, err := r.Bot.Send(edit); err != nil {
		log.Printf("ui: remove old keyboard in %d: %v", ref.ChatID, err)
	}
}

// postWithKeyboard sends a message carrying the draft actions and records
// it as the session's active prompt, neutralizing the previous one first.
func (r *Router) postWithKeyboard(s *session.Session, chatID int64, text string) {
	r.removeOldKeyboard(s)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = draftKeyboard()
	sent, err := r.Bot.Send(msg)
	if err != nil {
		log.Printf("ui: post prompt to %d: %v", chatID, err)
		return
	}
	s.SetPrompt(chatID, sent.MessageID)
}
