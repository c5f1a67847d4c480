package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	out string
	err error
}

func (f *fakeExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	return f.out, f.err
}

type fakeTranscriber struct {
	out string
	err error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, mime string) (string, error) {
	return f.out, f.err
}

// fileServer stands in for Telegram's file host.
func fileServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func photoUpdate(cid int64) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Photo: []tgbotapi.PhotoSize{{FileID: "small"}, {FileID: "large"}},
		Chat:  &tgbotapi.Chat{ID: cid},
	}}
}

func voiceUpdate(cid int64) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Voice: &tgbotapi.Voice{FileID: "v1", MimeType: "audio/ogg"},
		Chat:  &tgbotapi.Chat{ID: cid},
	}}
}

func audioDocUpdate(cid int64) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Document: &tgbotapi.Document{FileID: "d1", MimeType: "audio/mpeg"},
		Chat:     &tgbotapi.Chat{ID: cid},
	}}
}

func TestHandlePhotoDownloadFailure(t *testing.T) {
	bot := &fakeBot{} // GetFileDirectURL fails
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	r.Extractor = &fakeExtractor{out: "never reached"}

	r.HandleUpdate(photoUpdate(1))

	require.Equal(t, []string{"❌ Помилка розпізнавання фото."}, bot.texts)
	require.Empty(t, r.Sessions.Get(1).Snapshot())
	require.Equal(t, 0, bot.prompts)
}

func TestHandlePhotoNothingRecognized(t *testing.T) {
	bot := &fakeBot{fileURL: fileServer(t).URL}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	r.Extractor = &fakeExtractor{out: ""}

	r.HandleUpdate(photoUpdate(1))

	require.Equal(t, []string{"❌ Нічого не розпізнано."}, bot.texts)
	require.Empty(t, r.Sessions.Get(1).Snapshot())
}

func TestHandlePhotoExtractorError(t *testing.T) {
	bot := &fakeBot{fileURL: fileServer(t).URL}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	r.Extractor = &fakeExtractor{err: errors.New("vision down")}

	r.HandleUpdate(photoUpdate(1))

	require.Equal(t, []string{"❌ Помилка розпізнавання фото."}, bot.texts)
	require.Empty(t, r.Sessions.Get(1).Snapshot())
}

func TestHandlePhotoRecognizedAppends(t *testing.T) {
	bot := &fakeBot{fileURL: fileServer(t).URL}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	r.Extractor = &fakeExtractor{out: "  ліфт 246 не їде  "}

	r.HandleUpdate(photoUpdate(1))

	require.Equal(t, []string{"ліфт 246 не їде"}, r.Sessions.Get(1).Snapshot())
	require.Contains(t, bot.texts, "🖼 Розпізнано текст")
	require.Equal(t, 1, bot.prompts)
}

func TestHandleVoiceNothingRecognized(t *testing.T) {
	bot := &fakeBot{fileURL: fileServer(t).URL}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	r.Transcriber = &fakeTranscriber{out: "   "}

	r.HandleUpdate(voiceUpdate(1))

	require.Equal(t, []string{"❌ Голос не розпізнано."}, bot.texts)
	require.Empty(t, r.Sessions.Get(1).Snapshot())
}

func TestHandleVoiceTranscriberError(t *testing.T) {
	bot := &fakeBot{fileURL: fileServer(t).URL}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	r.Transcriber = &fakeTranscriber{err: errors.New("speech down")}

	r.HandleUpdate(voiceUpdate(1))

	require.Equal(t, []string{"❌ Помилка розпізнавання голосу."}, bot.texts)
	require.Empty(t, r.Sessions.Get(1).Snapshot())
}

func TestHandleVoiceRecognizedAppends(t *testing.T) {
	bot := &fakeBot{fileURL: fileServer(t).URL}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	r.Transcriber = &fakeTranscriber{out: "замінити лампу"}

	r.HandleUpdate(voiceUpdate(1))

	require.Equal(t, []string{"замінити лампу"}, r.Sessions.Get(1).Snapshot())
	require.Contains(t, bot.texts, "🎤 Розпізнано текст")
}

func TestHandleAudioDocumentDownloadFailure(t *testing.T) {
	bot := &fakeBot{} // GetFileDirectURL fails
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	r.Transcriber = &fakeTranscriber{out: "never reached"}

	r.HandleUpdate(audioDocUpdate(1))

	require.Equal(t, []string{"❌ Помилка розпізнавання аудіо-файлу."}, bot.texts)
	require.Empty(t, r.Sessions.Get(1).Snapshot())
}

func TestHandleAudioDocumentNothingRecognized(t *testing.T) {
	bot := &fakeBot{fileURL: fileServer(t).URL}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	r.Transcriber = &fakeTranscriber{out: ""}

	r.HandleUpdate(audioDocUpdate(1))

	require.Equal(t, []string{"❌ Не вдалося розпізнати аудіо-файл."}, bot.texts)
	require.Empty(t, r.Sessions.Get(1).Snapshot())
}

func TestHandleNonAudioDocumentIgnored(t *testing.T) {
	bot := &fakeBot{fileURL: fileServer(t).URL}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	r.Transcriber = &fakeTranscriber{out: "never reached"}

	r.HandleUpdate(tgbotapi.Update{Message: &tgbotapi.Message{
		Document: &tgbotapi.Document{FileID: "d1", MimeType: "application/pdf"},
		Chat:     &tgbotapi.Chat{ID: 1},
	}})

	require.Empty(t, bot.texts)
	require.Empty(t, r.Sessions.Get(1).Snapshot())
}

func commandUpdate(cid int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Text: text,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(text)},
		},
		Chat: &tgbotapi.Chat{ID: cid},
	}}
}

func TestPingCommand(t *testing.T) {
	bot := &fakeBot{}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})

	r.HandleUpdate(commandUpdate(1, "/ping"))

	require.Equal(t, []string{"pong ✅"}, bot.texts)
}

func TestUnknownCommandIgnored(t *testing.T) {
	bot := &fakeBot{}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})

	r.HandleUpdate(commandUpdate(1, "/weather"))

	require.Empty(t, bot.texts)
}
