package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/persona"
)

// historyWindow caps how many prior turns are forwarded upstream. The model
// has a context budget and long-range history adds little for a short-answer
// persona, so the service re-bounds whatever the caller supplied.
const historyWindow = 10

// Gemini's role vocabulary: our "assistant" is its "model".
const (
	roleUser  = "user"
	roleModel = "model"
)

// ChatModel is the seam to the upstream generative model. The production
// implementation wraps a Gemini chat session; tests substitute a capturing
// fake.
type ChatModel interface {
	Send(ctx context.Context, history []*genai.Content, message string) (string, error)
}

type geminiChatModel struct {
	model *genai.GenerativeModel
}

func (m *geminiChatModel) Send(ctx context.Context, history []*genai.Content, message string) (string, error) {
	cs := m.model.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(extractText(resp)), nil
}

// AssistantService answers visitor questions about the site's subject. It is
// stateless across calls: every reply is a function of (message, history,
// persona, credential-present).
type AssistantService struct {
	model   ChatModel // nil when no credential is configured
	client  *genai.Client
	profile *persona.Profile
}

// NewAssistantService builds the service. An empty or placeholder API key is
// not an error: the service comes up disabled and answers every question with
// the canned unavailable reply, so a misconfigured deploy still serves chat.
func NewAssistantService(apiKey, modelName string) (*AssistantService, error) {
	profile := persona.Default()

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return &AssistantService{profile: profile}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)

	return &AssistantService{
		model:   &geminiChatModel{model: model},
		client:  client,
		profile: profile,
	}, nil
}

func (s *AssistantService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Enabled reports whether an upstream credential is configured.
func (s *AssistantService) Enabled() bool {
	return s.model != nil
}

// Ask forwards a visitor message plus bounded history to the model and
// returns the reply text. It never fails: configuration and upstream
// problems degrade to success-shaped apology replies, so the chat UI has no
// error state to render. Input validation (non-empty message) is the
// handler's job.
func (s *AssistantService) Ask(ctx context.Context, message string, history []models.ChatMessage) string {
	if s.model == nil {
		return s.profile.UnavailableReply()
	}

	reply, err := s.model.Send(ctx, s.buildTurns(history), message)
	if err != nil {
		log.Printf("assistant: upstream error: %v", err)
		return s.profile.ApologyReply(err.Error())
	}
	if reply == "" {
		log.Println("assistant: upstream returned empty reply")
		return s.profile.EmptyReply()
	}
	return reply
}

// buildTurns assembles the ordered prompt: persona context, identity
// acknowledgment, then the most recent history turns mapped into Gemini's
// role vocabulary. The new message itself travels separately via Send.
func (s *AssistantService) buildTurns(history []models.ChatMessage) []*genai.Content {
	if n := len(history); n > historyWindow {
		history = history[n-historyWindow:]
	}

	turns := make([]*genai.Content, 0, len(history)+2)
	turns = append(turns, &genai.Content{
		Role:  roleUser,
		Parts: []genai.Part{genai.Text(fmt.Sprintf("You are %s. Here is your system context:\n\n%s", s.profile.BotName, s.profile.Render()))},
	})
	turns = append(turns, &genai.Content{
		Role:  roleModel,
		Parts: []genai.Part{genai.Text(s.profile.Acknowledgment())},
	})

	for _, msg := range history {
		turns = append(turns, &genai.Content{
			Role:  mapRole(msg.Role),
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	return turns
}

func mapRole(role string) string {
	if models.NormalizeRole(role) == models.RoleAssistant {
		return roleModel
	}
	return roleUser
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
