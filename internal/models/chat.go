package models

import "encoding/json"

// Chat roles form a closed two-value vocabulary. Anything else arriving on
// the wire is normalized to "user" before it reaches the model.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint.
type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history"`
}

// UnmarshalJSON decodes the message strictly but the history leniently: a
// history that is missing, null, or not an array of messages is treated as
// empty rather than failing the request.
func (r *ChatRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Message string          `json:"message"`
		History json.RawMessage `json:"history"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Message = raw.Message
	r.History = nil
	if len(raw.History) > 0 {
		var history []ChatMessage
		if err := json.Unmarshal(raw.History, &history); err == nil {
			r.History = history
		}
	}
	return nil
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// NormalizeRole maps an arbitrary role string onto the closed vocabulary.
func NormalizeRole(role string) string {
	if role == RoleAssistant {
		return RoleAssistant
	}
	return RoleUser
}
