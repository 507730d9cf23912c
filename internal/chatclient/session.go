// Package chatclient implements the visitor-facing chat session: an
// append-only message log, a single-flight send gate, and the panel state
// the UI renders from. The proxy owns the persona; this package only owns
// what the visitor sees.
package chatclient

import (
	"context"
	"log"
	"strings"
	"sync"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/persona"
)

// Asker forwards a message plus prior history to the assistant proxy.
type Asker interface {
	Ask(ctx context.Context, message string, history []models.ChatMessage) (string, error)
}

// Session is the client-side conversation state machine. The log starts
// with the assistant's greeting and only ever grows: a user turn is never
// rolled back, and every completed send appends exactly one assistant turn,
// apology included.
type Session struct {
	mu        sync.Mutex
	asker     Asker
	profile   *persona.Profile
	messages  []models.ChatMessage
	draft     string
	pending   bool
	panelOpen bool
}

func NewSession(asker Asker) *Session {
	profile := persona.Default()
	return &Session{
		asker:   asker,
		profile: profile,
		messages: []models.ChatMessage{
			{Role: models.RoleAssistant, Content: profile.Greeting()},
		},
	}
}

// Send submits one user turn. It reports false without side effects when
// the text trims empty or another send is already in flight; otherwise it
// blocks until the round-trip settles and the assistant turn is appended.
func (s *Session) Send(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return false
	}
	s.pending = true

	// Snapshot history before the optimistic append: the new message
	// travels separately, not as part of history.
	history := make([]models.ChatMessage, len(s.messages))
	for i, m := range s.messages {
		history[i] = models.ChatMessage{Role: models.NormalizeRole(m.Role), Content: m.Content}
	}
	s.messages = append(s.messages, models.ChatMessage{Role: models.RoleUser, Content: text})
	s.mu.Unlock()

	reply, err := s.asker.Ask(ctx, text, history)
	if err != nil {
		log.Printf("chat: proxy unreachable: %v", err)
		reply = s.profile.ConnectivityReply()
	}
	if reply == "" {
		reply = "Sorry, something went wrong."
	}

	s.mu.Lock()
	s.messages = append(s.messages, models.ChatMessage{Role: models.RoleAssistant, Content: reply})
	s.pending = false
	s.mu.Unlock()

	return true
}

// Submit sends the current draft and clears it on acceptance.
func (s *Session) Submit(ctx context.Context) bool {
	s.mu.Lock()
	draft := s.draft
	s.mu.Unlock()

	if !s.Send(ctx, draft) {
		return false
	}

	s.mu.Lock()
	s.draft = ""
	s.mu.Unlock()
	return true
}

// SetDraft replaces the in-progress input text.
func (s *Session) SetDraft(text string) {
	s.mu.Lock()
	s.draft = text
	s.mu.Unlock()
}

func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Messages returns a copy of the full log, oldest first.
func (s *Session) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Last returns the most recent message.
func (s *Session) Last() models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages[len(s.messages)-1]
}

func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Suggestions offers canned questions while only the greeting is present.
func (s *Session) Suggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) > 1 {
		return nil
	}
	return s.profile.Suggestions()
}

// Panel state: closed <-> open, nothing else.

func (s *Session) Open() {
	s.mu.Lock()
	s.panelOpen = true
	s.mu.Unlock()
}

func (s *Session) Close() {
	s.mu.Lock()
	s.panelOpen = false
	s.mu.Unlock()
}

func (s *Session) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panelOpen = !s.panelOpen
	return s.panelOpen
}

func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panelOpen
}
