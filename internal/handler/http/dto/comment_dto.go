package dto

import "github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"

// CreateCommentRequest is the body of POST /api/comments.
type CreateCommentRequest struct {
	PostID   string `json:"postId" binding:"required"`
	ParentID string `json:"parentId"`
	Content  string `json:"content" binding:"required,max=1000"`
}

type LikeCommentRequest struct {
	PostID string `json:"postId" binding:"required"`
}

type CommentResponse struct {
	Comment entity.Comment `json:"comment"`
	IsReply bool           `json:"isReply"`
}

type CommentListResponse struct {
	Comments []entity.Comment `json:"comments"`
	Total    int              `json:"total"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string               `json:"message" binding:"required,max=4000"`
	History []entity.ChatMessage `json:"history" binding:"omitempty,max=50"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
