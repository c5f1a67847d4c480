// Package telegram routes inbound bot events to the draft buffer and the
// commit pipeline, and owns every user-visible string.
package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"worklog-bot/api/internal/recognize"
	"worklog-bot/api/internal/session"
	"worklog-bot/api/internal/store"
	"worklog-bot/api/internal/task"
)

// BotAPI is the slice of *tgbotapi.BotAPI the router actually uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

// Appender persists one ordered row of columns to the task log.
type Appender interface {
	AppendRow(ctx context.Context, columns []string) error
}

// Journal records committed rows for auditing. Optional; failures are
// logged and never affect the commit outcome.
type Journal interface {
	Record(ctx context.Context, e store.Entry) error
}

type Router struct {
	Bot      BotAPI
	Sessions *session.Manager
	Parser   *task.Parser

	Structurer  recognize.Structurer
	Transcriber recognize.Transcriber
	Extractor   recognize.TextExtractor

	Sheet   Appender
	Journal Journal

	AITimeout time.Duration
}

// HandleUpdate dispatches one inbound update. Only the commit pipeline is
// long-running and goes to its own goroutine; everything else completes
// before the next update of the same chat is handled.
func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.CallbackQuery != nil {
		r.handleCallback(*upd.CallbackQuery)
		return
	}
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	cid := msg.Chat.ID

	switch {
	case msg.IsCommand():
		r.handleCommand(cid, msg.Command())
	case msg.Voice != nil:
		r.acceptVoice(cid, *msg.Voice)
	case len(msg.Photo) > 0:
		r.acceptPhoto(cid, msg.Photo)
	case msg.Audio != nil:
		r.acceptAudioFile(cid, msg.Audio.FileID, msg.Audio.MimeType)
	case msg.Document != nil:
		if strings.HasPrefix(msg.Document.MimeType, "audio/") {
			r.acceptAudioFile(cid, msg.Document.FileID, msg.Document.MimeType)
		}
	case msg.Text != "":
		r.acceptText(cid, msg.Text)
	}
}

func (r *Router) handleCommand(cid int64, cmd string) {
	switch cmd {
	case "start":
		r.send(cid, "Бот працює. Надішли текст, фото або голос — усе буде розпізнано.")
		s := r.Sessions.Get(cid)
		r.postWithKeyboard(s, cid, "Чорнетка порожня. Додавайте записи повідомленнями.")
	case "ping":
		r.send(cid, "pong ✅")
	}
}

func (r *Router) acceptText(cid int64, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		r.send(cid, "❌ Порожній текст.")
		return
	}
	r.addFragment(cid, text, "✅ Додано в чернетку")
}

func (r *Router) acceptPhoto(cid int64, sizes []tgbotapi.PhotoSize) {
	// largest rendition carries the most readable text
	ph := sizes[len(sizes)-1]
	img, err := r.downloadFile(ph.FileID)
	if err != nil {
		log.Printf("photo: download: %v", err)
		r.send(cid, "❌ Помилка розпізнавання фото.")
		return
	}
	recognized, err := r.Extractor.ExtractText(context.Background(), img)
	if err != nil {
		log.Printf("photo: ocr: %v", err)
		r.send(cid, "❌ Помилка розпізнавання фото.")
		return
	}
	recognized = strings.TrimSpace(recognized)
	if recognized == "" {
		r.send(cid, "❌ Нічого не розпізнано.")
		return
	}
	r.addFragment(cid, recognized, "🖼 Розпізнано текст")
}

func (r *Router) acceptVoice(cid int64, v tgbotapi.Voice) {
	mime := v.MimeType
	if mime == "" {
		mime = "audio/ogg"
	}
	text, err := r.transcribeByFileID(v.FileID, mime)
	if err != nil {
		log.Printf("voice: %v", err)
		r.send(cid, "❌ Помилка розпізнавання голосу.")
		return
	}
	if text == "" {
		r.send(cid, "❌ Голос не розпізнано.")
		return
	}
	r.addFragment(cid, text, "🎤 Розпізнано текст")
}

func (r *Router) acceptAudioFile(cid int64, fileID, mime string) {
	text, err := r.transcribeByFileID(fileID, mime)
	if err != nil {
		log.Printf("audio file: %v", err)
		r.send(cid, "❌ Помилка розпізнавання аудіо-файлу.")
		return
	}
	if text == "" {
		r.send(cid, "❌ Не вдалося розпізнати аудіо-файл.")
		return
	}
	r.addFragment(cid, text, "🎧 Розпізнано текст з файлу")
}

func (r *Router) transcribeByFileID(fileID, mime string) (string, error) {
	audio, err := r.downloadFile(fileID)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	if mime == "" {
		mime = recognize.SniffMime(audio)
	}
	text, err := r.Transcriber.Transcribe(context.Background(), audio, mime)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// addFragment is the shared tail of every intake event: capacity-gated
// append, acknowledgment, then a fresh prompt with the draft actions.
func (r *Router) addFragment(cid int64, fragment, ack string) {
	s := r.Sessions.Get(cid)
	if _, err := s.Append(fragment); err != nil {
		r.send(cid, fmt.Sprintf("⚠️ Чернетка заповнена (%d/%d).", s.Capacity(), s.Capacity()))
		return
	}
	r.send(cid, ack)
	r.postWithKeyboard(s, cid, fragment)
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}
