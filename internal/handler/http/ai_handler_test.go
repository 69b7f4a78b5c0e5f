package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat(t *testing.T) {
	d := newDeps()
	r := defaultRouter(d)

	w := doJSON(r, http.MethodPost, "/api/chat", dto.ChatRequest{
		Message: "Recommend a poem",
		History: []entity.ChatMessage{{Role: entity.ChatRoleUser, Content: "hi"}},
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ChatResponse
	decode(t, w, &resp)
	assert.Equal(t, "Hello, night owl.", resp.Reply)
	assert.Len(t, d.ai.LastHistory, 1)
}

func TestChat_Unavailable(t *testing.T) {
	d := newDeps()
	d.ai.Err = fmt.Errorf("no api key: %w", entity.ErrAIUnavailable)
	r := defaultRouter(d)

	w := doJSON(r, http.MethodPost, "/api/chat", dto.ChatRequest{Message: "hello"}, nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestChat_EmptyMessage(t *testing.T) {
	r := defaultRouter(newDeps())

	w := doJSON(r, http.MethodPost, "/api/chat", dto.ChatRequest{}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
