package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	generativeModelName = "gemini-1.5-flash"
	maxOutputTokens     = 1000

	// seedAcknowledgement is the fixed "model" turn that closes the seed
	// conversation before the user's message is sent.
	seedAcknowledgement = "I understand. I am LawLine AI, a helpful AI legal assistant. I will do my best to simplify legal concepts and guide users through their situations. I will be empathetic and use plain language."
)

// ConversationGateway is the boundary to the generative-model API. Given
// the assembled instructions and a single user message, it returns the
// generated reply text or fails with a transport/quota error.
type ConversationGateway interface {
	Complete(ctx context.Context, instructions, message string) (string, error)
}

// GeminiGateway implements ConversationGateway on the Gemini chat API
type GeminiGateway struct {
	client    *genai.Client
	modelName string
}

// NewGeminiGateway creates a gateway from an API key. A missing key is a
// startup-time configuration failure, not a per-request condition.
func NewGeminiGateway(ctx context.Context, apiKey string) (*GeminiGateway, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGateway{
		client:    client,
		modelName: generativeModelName,
	}, nil
}

// Complete seeds a chat session with the instructions and acknowledgement
// turns, sends the user message, and returns the generated text
func (g *GeminiGateway) Complete(ctx context.Context, instructions, message string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SetMaxOutputTokens(maxOutputTokens)

	session := model.StartChat()
	session.History = []*genai.Content{
		{
			Role:  "user",
			Parts: []genai.Part{genai.Text(instructions)},
		},
		{
			Role:  "model",
			Parts: []genai.Part{genai.Text(seedAcknowledgement)},
		},
	}

	resp, err := session.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("model returned no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", fmt.Errorf("model candidate has no content (finish reason: %v)", candidate.FinishReason)
	}

	var reply strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			reply.WriteString(string(text))
		}
	}

	if reply.Len() == 0 {
		return "", errors.New("model returned empty content")
	}

	return reply.String(), nil
}

// Close releases the underlying client
func (g *GeminiGateway) Close() error {
	return g.client.Close()
}
