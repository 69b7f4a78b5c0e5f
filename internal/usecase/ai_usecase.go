package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	"github.com/mikiasgoitom/MidnightMuse/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

const (
	maxChatHistory       = 10
	maxChatMessageLength = 4000
)

const chatPromptPreamble = `You are the Muse, the resident assistant of "Midnight Muse", a blog for late-night ` +
	`writers and readers. Answer warmly and concisely. Help with writing ideas, feedback on drafts ` +
	`and questions about reading the blog. If you do not know something, say so. ` +
	`Never invent posts or authors that the reader has not mentioned.`

type AIUseCase struct {
	aiService usecasecontract.IAIService
	logger    usecasecontract.IAppLogger
}

// check if AIUseCase implement IAIUseCase
var _ usecasecontract.IAIUseCase = (*AIUseCase)(nil)

func NewAIUseCase(aiServ usecasecontract.IAIService, logger usecasecontract.IAppLogger) *AIUseCase {
	return &AIUseCase{
		aiService: aiServ,
		logger:    logger,
	}
}

// Chat answers message in the context of the most recent history turns.
func (uc *AIUseCase) Chat(ctx context.Context, message string, history []entity.ChatMessage) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("%w: message is required", entity.ErrInvalidInput)
	}
	if utf8.RuneCountInString(message) > maxChatMessageLength {
		return "", fmt.Errorf("%w: message exceeds %d characters", entity.ErrInvalidInput, maxChatMessageLength)
	}

	reply, err := uc.aiService.GenerateContent(ctx, BuildChatPrompt(message, history))
	if err != nil {
		if errors.Is(err, entity.ErrAIUnavailable) {
			metrics.IncAIRequest("unavailable")
		} else {
			metrics.IncAIRequest("error")
		}
		uc.logger.Errorf("chat generation failed: %v", err)
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}
	metrics.IncAIRequest("ok")
	return strings.TrimSpace(reply), nil
}

// BuildChatPrompt renders the preamble, the last maxChatHistory turns and the new message.
func BuildChatPrompt(message string, history []entity.ChatMessage) string {
	if len(history) > maxChatHistory {
		history = history[len(history)-maxChatHistory:]
	}
	var b strings.Builder
	b.WriteString(chatPromptPreamble)
	b.WriteString("\n\n")
	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range history {
			content := strings.TrimSpace(turn.Content)
			if content == "" {
				continue
			}
			speaker := "Reader"
			if turn.Role == entity.ChatRoleAssistant {
				speaker = "Muse"
			}
			fmt.Fprintf(&b, "%s: %s\n", speaker, content)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Reader: %s\nMuse:", message)
	return b.String()
}
