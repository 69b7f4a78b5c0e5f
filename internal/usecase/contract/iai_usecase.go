package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
)

// IAIService talks to the hosted language model.
type IAIService interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type IAIUseCase interface {
	Chat(ctx context.Context, message string, history []entity.ChatMessage) (string, error)
}
