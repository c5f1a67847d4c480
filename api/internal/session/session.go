// Package session keeps the per-chat draft state: the bounded fragment
// buffer and the reference to the last interactive prompt the bot sent.
package session

import (
	"errors"
	"sync"
	"time"
)

// ErrBufferFull is returned by Append when the draft already holds the
// maximum number of fragments. The fragment is discarded, never evicted.
var ErrBufferFull = errors.New("draft buffer is full")

// PromptRef identifies the last message with inline buttons sent to a chat.
type PromptRef struct {
	ChatID    int64
	MessageID int
}

// Session is the state of one conversation. All methods are safe for
// concurrent use; a commit goroutine and the intake path may touch the
// same session.
type Session struct {
	mu       sync.Mutex
	capacity int
	buffer   []string
	prompt   *PromptRef
	lastSeen time.Time
}

// Append adds a trimmed, non-empty fragment to the draft.
// Returns the new length, or ErrBufferFull at capacity.
func (s *Session) Append(fragment string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.buffer) >= s.capacity {
		return len(s.buffer), ErrBufferFull
	}
	s.buffer = append(s.buffer, fragment)
	return len(s.buffer), nil
}

// Len returns the current number of fragments.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buffer)
}

// Capacity returns the configured maximum number of fragments.
func (s *Session) Capacity() int { return s.capacity }

// Snapshot returns a copy of the fragments in insertion order.
func (s *Session) Snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.buffer))
	copy(out, s.buffer)
	return out
}

// Clear empties the draft. Idempotent.
func (s *Session) Clear() {
	s.mu.Lock()
	s.buffer = s.buffer[:0]
	s.mu.Unlock()
}

// SetPrompt records the identity of the prompt message currently carrying
// inline buttons, replacing any previous one.
func (s *Session) SetPrompt(chatID int64, messageID int) {
	s.mu.Lock()
	s.prompt = &PromptRef{ChatID: chatID, MessageID: messageID}
	s.mu.Unlock()
}

// TakePrompt returns the tracked prompt ref and forgets it, so a removal
// attempt happens at most once per shown prompt.
func (s *Session) TakePrompt() (PromptRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prompt == nil {
		return PromptRef{}, false
	}
	ref := *s.prompt
	s.prompt = nil
	return ref, true
}

// ClearPrompt drops the tracked prompt ref without sending anything.
func (s *Session) ClearPrompt() {
	s.mu.Lock()
	s.prompt = nil
	s.mu.Unlock()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Manager owns all sessions, keyed by chat id. Sessions are created
// lazily on first use and optionally evicted after an idle TTL.
type Manager struct {
	capacity int
	idleTTL  time.Duration
	m        sync.Map // chatID -> *Session
}

func NewManager(capacity int, idleTTL time.Duration) *Manager {
	if capacity < 1 {
		capacity = 1
	}
	return &Manager{capacity: capacity, idleTTL: idleTTL}
}

// Get returns the session for a chat, creating it on first use.
func (m *Manager) Get(chatID int64) *Session {
	if v, ok := m.m.Load(chatID); ok {
		s := v.(*Session)
		s.touch(time.Now())
		return s
	}
	s := &Session{capacity: m.capacity, lastSeen: time.Now()}
	if v, loaded := m.m.LoadOrStore(chatID, s); loaded {
		s = v.(*Session)
		s.touch(time.Now())
	}
	return s
}

// EvictIdle drops sessions idle longer than the TTL and returns how many
// were removed. An evicted session only ever loses an uncommitted draft.
func (m *Manager) EvictIdle(now time.Time) int {
	if m.idleTTL <= 0 {
		return 0
	}
	n := 0
	m.m.Range(func(key, v any) bool {
		if v.(*Session).idleSince(now) > m.idleTTL {
			m.m.Delete(key)
			n++
		}
		return true
	})
	return n
}

// RunJanitor evicts idle sessions on a ticker until stop is closed.
// No-op when eviction is disabled.
func (m *Manager) RunJanitor(stop <-chan struct{}) {
	if m.idleTTL <= 0 {
		return
	}
	interval := m.idleTTL / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-t.C:
			m.EvictIdle(now)
		}
	}
}
