package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/dto"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

type CommentHandlerInterface interface {
	GetComments(*gin.Context)
	CreateComment(*gin.Context)
	LikeComment(*gin.Context)
}

var _ CommentHandlerInterface = (*CommentHandler)(nil)

type CommentHandler struct {
	commentUsecase usecasecontract.ICommentUseCase
}

func NewCommentHandler(commentUsecase usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

// GetComments handles GET /api/comments?postId=
func (h *CommentHandler) GetComments(c *gin.Context) {
	postID := c.Query("postId")
	if postID == "" {
		ErrorHandler(c, http.StatusBadRequest, "postId is required")
		return
	}

	comments, err := h.commentUsecase.GetComments(c.Request.Context(), postID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CommentListResponse{Comments: comments, Total: len(comments)})
}

// CreateComment adds a top-level comment, or a reply when parentId names an existing comment.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, isReply, err := h.commentUsecase.CreateComment(c.Request.Context(), user, req.PostID, req.ParentID, req.Content)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.CommentResponse{Comment: *comment, IsReply: isReply})
}

// LikeComment handles POST /api/comments/:commentID/like
func (h *CommentHandler) LikeComment(c *gin.Context) {
	var req dto.LikeCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.commentUsecase.LikeComment(c.Request.Context(), req.PostID, c.Param("commentID"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"comment": comment})
}
