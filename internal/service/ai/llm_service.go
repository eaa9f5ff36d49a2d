package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/rraja/portfolio/backend/internal/config"
	"github.com/rraja/portfolio/backend/internal/model/chat"
	"github.com/rraja/portfolio/backend/internal/model/profile"
)

// ErrNoResponse indicates the provider call succeeded but returned no
// extractable text.
var ErrNoResponse = errors.New("no response generated")

// Service generates assistant replies with the portfolio owner's voice.
type Service struct {
	chatModel model.ChatModel
	profile   profile.Profile
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// GetChatModel returns the underlying chat model.
func (s *Service) GetChatModel() model.ChatModel {
	return s.chatModel
}

// NewService builds the prompt chain on top of the configured chat model.
func NewService(ctx context.Context, owner profile.Profile, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		profile:   owner,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// GenerateReply produces one assistant reply for the session. The provider
// is invoked exactly once; there are no retries.
func (s *Service) GenerateReply(ctx context.Context, sessionID string, history []chat.Turn, userMessage string) (string, error) {
	input := map[string]any{
		"system":  BuildSystemPrompt(s.profile),
		"history": s.buildHistoryMessages(history),
		"query":   userMessage,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("provider call failed: %w", err)
	}

	text := strings.TrimSpace(response.Content)
	if text == "" {
		return "", ErrNoResponse
	}

	log.Printf("[ai] generated reply for session=%s, length=%d", sessionID, len(text))
	return text, nil
}

// buildHistoryMessages replays prior turns as alternating user/model
// messages, capped at the configured limit of most recent turns.
func (s *Service) buildHistoryMessages(turns []chat.Turn) []*schema.Message {
	if len(turns) == 0 {
		return nil
	}

	limit := s.cfg.HistoryLimit
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}

	startIdx := 0
	if len(turns) > limit {
		startIdx = len(turns) - limit
	}

	history := make([]*schema.Message, 0, 2*(len(turns)-startIdx))
	for _, turn := range turns[startIdx:] {
		history = append(history, schema.UserMessage(turn.UserMessage))
		history = append(history, schema.AssistantMessage(turn.BotResponse, nil))
	}

	return history
}
