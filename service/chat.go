package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"lawline-backend/models"

	"github.com/google/uuid"
)

var (
	ErrInvalidChatRequest = errors.New("missing required chat fields")
	ErrUpstreamFailure    = errors.New("conversation gateway request failed")
)

// supportedJurisdiction is the only jurisdiction with a statute corpus.
// Retrieval augmentation never applies outside it.
const supportedJurisdiction = "kazakhstan"

// augmentedTopics lists the sub-sectors whose conversations are grounded in
// the article corpus. The remaining assistants answer from their system
// prompt alone.
var augmentedTopics = map[models.Topic]bool{
	models.TopicWorkplaceAdvisor:   true,
	models.TopicFamilyLaw:          true,
	models.TopicConsumerRights:     true,
	models.TopicContractAdvisor:    true,
	models.TopicCorporateAssistant: true,
}

// contextPreamble precedes the matched article blocks in the assembled
// instructions
const contextPreamble = `Base your answer ONLY on the legal context below. Always cite the relevant article ID (for example, "Labor Code, Article 52") before explaining it. If the context is insufficient to answer the question, say so explicitly.`

// ChatService orchestrates a single chat turn: prompt resolution, optional
// retrieval augmentation, and the gateway call
type ChatService struct {
	retrieval *RetrievalService
	prompts   *PromptService
	gateway   ConversationGateway
}

// ChatServiceOption is a functional option for ChatService
type ChatServiceOption func(*ChatService)

// ChatWithRetrievalService sets the retrieval service
func ChatWithRetrievalService(retrieval *RetrievalService) ChatServiceOption {
	return func(s *ChatService) {
		s.retrieval = retrieval
	}
}

// ChatWithPromptService sets the prompt service
func ChatWithPromptService(prompts *PromptService) ChatServiceOption {
	return func(s *ChatService) {
		s.prompts = prompts
	}
}

// ChatWithGateway sets the conversation gateway
func ChatWithGateway(gateway ConversationGateway) ChatServiceOption {
	return func(s *ChatService) {
		s.gateway = gateway
	}
}

// NewChatService creates a new chat service
func NewChatService(opts ...ChatServiceOption) *ChatService {
	s := &ChatService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChatRequest represents a single validated chat turn
type ChatRequest struct {
	Message   string
	Country   string
	Sector    string
	SubSector string
}

// ChatResult represents the generated reply
type ChatResult struct {
	Message string
}

// Chat handles one request-scoped turn. Nothing is persisted between
// calls; the prompt is re-resolved and the corpus re-scanned every time.
func (s *ChatService) Chat(ctx context.Context, req ChatRequest) (*ChatResult, error) {
	if s.prompts == nil {
		return nil, errors.New("prompt service not set")
	}
	if s.gateway == nil {
		return nil, errors.New("conversation gateway not set")
	}

	if req.Message == "" || req.Country == "" || req.Sector == "" || req.SubSector == "" {
		return nil, ErrInvalidChatRequest
	}

	requestID := uuid.New()
	basePrompt := s.prompts.ResolvePrompt(req.Country, req.Sector, req.SubSector)

	var matched []models.ArticleRecord
	if s.augmentationApplies(req.Country, req.SubSector) {
		matched = s.retrieval.FindRelevant(req.Message, models.Topic(req.SubSector))
	}

	instructions := AssembleInstructions(basePrompt, matched)

	log.Printf("chat %s: country=%s sector=%s subSector=%s articles=%d",
		requestID, req.Country, req.Sector, req.SubSector, len(matched))

	reply, err := s.gateway.Complete(ctx, instructions, req.Message)
	if err != nil {
		log.Printf("chat %s: %v", requestID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}

	return &ChatResult{Message: reply}, nil
}

// augmentationApplies reports whether retrieval augmentation is enabled for
// the selection. Requires the supported jurisdiction, an augmented topic,
// and a loaded corpus.
func (s *ChatService) augmentationApplies(country, subSector string) bool {
	if country != supportedJurisdiction {
		return false
	}
	if !augmentedTopics[models.Topic(subSector)] {
		return false
	}
	return s.retrieval != nil
}

// AssembleInstructions produces the grounding instructions sent to the
// model: the base prompt alone when nothing matched, otherwise the base
// prompt followed by the preamble and one labeled block per article in
// matcher order.
func AssembleInstructions(basePrompt string, articles []models.ArticleRecord) string {
	if len(articles) == 0 {
		return basePrompt
	}

	var builder strings.Builder
	builder.WriteString(basePrompt)
	builder.WriteString("\n\n")
	builder.WriteString(contextPreamble)
	builder.WriteString("\n\n--- RELEVANT LEGAL CONTEXT ---")

	for _, article := range articles {
		builder.WriteString("\n\n[")
		builder.WriteString(article.ID)
		builder.WriteString("]\n")
		builder.WriteString(article.Text)
	}

	return builder.String()
}
