package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

type AIHandler struct {
	AIUseCase usecasecontract.IAIUseCase
}

func NewAIHandler(aiuc usecasecontract.IAIUseCase) *AIHandler {
	return &AIHandler{
		AIUseCase: aiuc,
	}
}

// HandleChat answers one reader message, given the earlier turns of the conversation.
func (h *AIHandler) HandleChat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := BindAndValidate(ctx, &req); err != nil {
		return
	}

	reply, err := h.AIUseCase.Chat(ctx.Request.Context(), req.Message, req.History)
	if err != nil {
		HandleError(ctx, err)
		return
	}
	SuccessHandler(ctx, http.StatusOK, dto.ChatResponse{Reply: reply})
}
