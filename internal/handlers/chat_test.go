package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-backend/internal/models"
)

type fakeAssistant struct {
	calls   int
	message string
	history []models.ChatMessage
	reply   string
}

func (f *fakeAssistant) Ask(ctx context.Context, message string, history []models.ChatMessage) string {
	f.calls++
	f.message = message
	f.history = history
	return f.reply
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Ask(rr, req)
	return rr
}

func TestChatRejectsMissingMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"empty message", `{"message":""}`},
		{"whitespace message", `{"message":"   "}`},
		{"non-string message", `{"message":42}`},
		{"malformed json", `{"message":`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeAssistant{reply: "should not be used"}
			rr := postChat(t, NewChatHandler(fake), tc.body)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rr.Code)
			}
			if fake.calls != 0 {
				t.Error("Expected no upstream call on invalid input")
			}

			var resp map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp["error"] != "Message is required" {
				t.Errorf("Expected error body, got %v", resp)
			}
		})
	}
}

func TestChatReturnsReply(t *testing.T) {
	fake := &fakeAssistant{reply: "He built FinGuide."}
	rr := postChat(t, NewChatHandler(fake), `{"message":"What projects has he built?"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Reply != "He built FinGuide." {
		t.Errorf("Expected reply passthrough, got %q", resp.Reply)
	}
	if fake.message != "What projects has he built?" {
		t.Errorf("Expected message forwarded, got %q", fake.message)
	}
}

func TestChatToleratesMissingHistory(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"absent", `{"message":"hi"}`},
		{"null", `{"message":"hi","history":null}`},
		{"empty", `{"message":"hi","history":[]}`},
		{"string instead of array", `{"message":"hi","history":"oops"}`},
		{"number instead of array", `{"message":"hi","history":42}`},
		{"object instead of array", `{"message":"hi","history":{"role":"user"}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeAssistant{reply: "hello"}
			rr := postChat(t, NewChatHandler(fake), tc.body)

			if rr.Code != http.StatusOK {
				t.Errorf("Expected 200, got %d", rr.Code)
			}
			if fake.calls != 1 {
				t.Errorf("Expected assistant called once, got %d", fake.calls)
			}
			if len(fake.history) != 0 {
				t.Errorf("Expected empty history, got %d entries", len(fake.history))
			}
		})
	}
}

func TestChatForwardsHistory(t *testing.T) {
	fake := &fakeAssistant{reply: "ok"}
	body := `{"message":"and then?","history":[{"role":"user","content":"q1"},{"role":"assistant","content":"a1"}]}`
	rr := postChat(t, NewChatHandler(fake), body)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if len(fake.history) != 2 || fake.history[1].Role != "assistant" || fake.history[1].Content != "a1" {
		t.Errorf("Expected history forwarded in order, got %+v", fake.history)
	}
}

func TestChatApologyStillTwoHundred(t *testing.T) {
	// Upstream failures are absorbed by the service; the handler must keep
	// returning 200 with a reply body.
	fake := &fakeAssistant{reply: "I ran into an issue: quota exceeded. You can reach Hrushi directly at hrushibhanvadiya@gmail.com!"}
	rr := postChat(t, NewChatHandler(fake), `{"message":"hi"}`)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected 200 even for apology replies, got %d", rr.Code)
	}
}
