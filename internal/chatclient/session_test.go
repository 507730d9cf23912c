package chatclient

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/persona"
)

type capturingAsker struct {
	mu      sync.Mutex
	calls   int
	message string
	history []models.ChatMessage
	reply   string
	err     error
}

func (c *capturingAsker) Ask(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	c.message = message
	c.history = history
	return c.reply, c.err
}

func TestSessionStartsWithGreeting(t *testing.T) {
	s := NewSession(&capturingAsker{})

	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("Expected 1 seeded message, got %d", len(msgs))
	}
	if msgs[0].Role != models.RoleAssistant || msgs[0].Content != persona.Default().Greeting() {
		t.Errorf("Expected the assistant greeting, got %+v", msgs[0])
	}
}

func TestSendGrowsLogByExactlyTwo(t *testing.T) {
	asker := &capturingAsker{reply: "an answer"}
	s := NewSession(asker)

	if !s.Send(context.Background(), "a question") {
		t.Fatal("Expected send to be accepted")
	}

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("Expected greeting + user + assistant, got %d", len(msgs))
	}
	if msgs[1].Role != models.RoleUser || msgs[1].Content != "a question" {
		t.Errorf("Expected optimistic user turn, got %+v", msgs[1])
	}
	if msgs[2].Role != models.RoleAssistant || msgs[2].Content != "an answer" {
		t.Errorf("Expected assistant reply appended, got %+v", msgs[2])
	}
	if s.Pending() {
		t.Error("Expected pending to end false")
	}
}

func TestSendEmptyTextIsNoOp(t *testing.T) {
	asker := &capturingAsker{reply: "x"}
	s := NewSession(asker)

	if s.Send(context.Background(), "   ") {
		t.Error("Expected whitespace send to be rejected")
	}
	if len(s.Messages()) != 1 || asker.calls != 0 {
		t.Error("Expected no state change and no outbound call")
	}
}

func TestSendHistoryExcludesCurrentTurn(t *testing.T) {
	asker := &capturingAsker{reply: "first answer"}
	s := NewSession(asker)

	s.Send(context.Background(), "first question")
	s.Send(context.Background(), "second question")

	if asker.message != "second question" {
		t.Errorf("Expected message passed separately, got %q", asker.message)
	}
	// greeting + first question + first answer, not the second question.
	if len(asker.history) != 3 {
		t.Fatalf("Expected 3 history turns, got %d", len(asker.history))
	}
	for _, m := range asker.history {
		if m.Content == "second question" {
			t.Error("Expected the in-flight turn to be excluded from history")
		}
		if m.Role != models.RoleUser && m.Role != models.RoleAssistant {
			t.Errorf("Expected normalized wire role, got %q", m.Role)
		}
	}
	if asker.history[2].Content != "first answer" {
		t.Errorf("Expected oldest-first ordering, got %+v", asker.history)
	}
}

// blockingAsker holds the first call open so a second send can race it.
type blockingAsker struct {
	started   chan struct{}
	release   chan struct{}
	startOnce sync.Once
}

func (b *blockingAsker) Ask(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	b.startOnce.Do(func() { close(b.started) })
	<-b.release
	return "done", nil
}

func TestSendIsSingleFlight(t *testing.T) {
	asker := &blockingAsker{started: make(chan struct{}), release: make(chan struct{})}
	s := NewSession(asker)

	firstDone := make(chan bool)
	go func() {
		firstDone <- s.Send(context.Background(), "first")
	}()

	select {
	case <-asker.started:
	case <-time.After(2 * time.Second):
		t.Fatal("First send never reached the proxy")
	}

	if s.Send(context.Background(), "second") {
		t.Error("Expected second send to be a no-op while pending")
	}
	if got := len(s.Messages()); got != 2 {
		t.Errorf("Expected log unchanged by rejected send, got %d messages", got)
	}

	close(asker.release)
	if ok := <-firstDone; !ok {
		t.Error("Expected first send to complete")
	}
	if got := len(s.Messages()); got != 3 {
		t.Errorf("Expected 3 messages after settlement, got %d", got)
	}
	if s.Pending() {
		t.Error("Expected pending reset after settlement")
	}
}

func TestSendConnectivityFailure(t *testing.T) {
	asker := &capturingAsker{err: errors.New("connection refused")}
	s := NewSession(asker)

	if !s.Send(context.Background(), "hello") {
		t.Fatal("Expected send to be accepted")
	}

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("Expected failure to still append an assistant turn, got %d", len(msgs))
	}
	if msgs[1].Content != "hello" {
		t.Error("Expected the user turn to survive the failure")
	}
	if msgs[2].Content != persona.Default().ConnectivityReply() {
		t.Errorf("Expected connectivity apology, got %q", msgs[2].Content)
	}
	if s.Pending() {
		t.Error("Expected pending reset after failure")
	}
}

func TestSuggestionsOnlyWhileEmpty(t *testing.T) {
	s := NewSession(&capturingAsker{reply: "x"})

	if len(s.Suggestions()) == 0 {
		t.Error("Expected suggestions alongside the greeting")
	}

	s.Send(context.Background(), "hello")
	if s.Suggestions() != nil {
		t.Error("Expected no suggestions once the conversation started")
	}
}

func TestDraftSubmit(t *testing.T) {
	asker := &capturingAsker{reply: "x"}
	s := NewSession(asker)

	s.SetDraft("  typed question  ")
	if !s.Submit(context.Background()) {
		t.Fatal("Expected draft submit to be accepted")
	}
	if asker.message != "typed question" {
		t.Errorf("Expected trimmed draft sent, got %q", asker.message)
	}
	if s.Draft() != "" {
		t.Error("Expected draft cleared after submit")
	}

	if s.Submit(context.Background()) {
		t.Error("Expected empty draft submit to be a no-op")
	}
}

func TestPanelToggle(t *testing.T) {
	s := NewSession(&capturingAsker{})

	if s.IsOpen() {
		t.Error("Expected panel closed initially")
	}
	if !s.Toggle() {
		t.Error("Expected toggle to open")
	}
	if s.Toggle() {
		t.Error("Expected toggle to close")
	}

	s.Open()
	if !s.IsOpen() {
		t.Error("Expected open")
	}
	s.Close()
	if s.IsOpen() {
		t.Error("Expected closed")
	}
}

func TestRoleNormalizationBijection(t *testing.T) {
	// assistant survives a round trip; everything else collapses to user.
	if models.NormalizeRole(models.NormalizeRole("assistant")) != models.RoleAssistant {
		t.Error("assistant must round-trip")
	}
	for _, role := range []string{"user", "model", "system", ""} {
		got := models.NormalizeRole(role)
		if got != models.RoleUser && got != models.RoleAssistant {
			t.Errorf("NormalizeRole(%q) left the closed vocabulary: %q", role, got)
		}
		if models.NormalizeRole(got) != got {
			t.Errorf("NormalizeRole must be idempotent, %q -> %q", got, models.NormalizeRole(got))
		}
	}
}
