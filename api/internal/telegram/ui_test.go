package telegram

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostWithKeyboardTracksLatestPrompt(t *testing.T) {
	bot := &fakeBot{}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	s := r.Sessions.Get(1)

	r.postWithKeyboard(s, 1, "перший запис")
	require.Equal(t, 0, bot.edits, "nothing to remove before the first prompt")

	r.postWithKeyboard(s, 1, "другий запис")
	require.Equal(t, 1, bot.edits, "second prompt must neutralize the first")

	ref, ok := s.TakePrompt()
	require.True(t, ok)
	require.Equal(t, bot.nextID, ref.MessageID, "only the newest prompt is tracked")
}

func TestPostWithKeyboardSurvivesRemovalFailure(t *testing.T) {
	bot := &fakeBot{editErr: errors.New("message to edit not found")}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	s := r.Sessions.Get(1)

	r.postWithKeyboard(s, 1, "a")
	r.postWithKeyboard(s, 1, "b")

	// removal failed but the new prompt went out and is tracked
	require.Equal(t, 2, bot.prompts)
	ref, ok := s.TakePrompt()
	require.True(t, ok)
	require.Equal(t, bot.nextID, ref.MessageID)
}

func TestRemoveOldKeyboardAttemptsOncePerPrompt(t *testing.T) {
	bot := &fakeBot{editErr: errors.New("too old")}
	r, _ := newTestRouter(bot, &fakeStructurer{}, &fakeAppender{})
	s := r.Sessions.Get(1)

	s.SetPrompt(1, 10)
	r.removeOldKeyboard(s)
	r.removeOldKeyboard(s)

	require.Equal(t, 1, bot.edits, "a failed removal is not retried")
}
