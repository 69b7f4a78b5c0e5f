package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/dto"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

// PostHandlerInterface defines the methods for post handler
type PostHandlerInterface interface {
	ListPosts(*gin.Context)
	GetPost(*gin.Context)
	CreatePost(*gin.Context)
	UpdatePost(*gin.Context)
	DeletePost(*gin.Context)
}

var _ PostHandlerInterface = (*PostHandler)(nil)

type PostHandler struct {
	postUsecase usecasecontract.IPostUseCase
}

func NewPostHandler(postUsecase usecasecontract.IPostUseCase) *PostHandler {
	return &PostHandler{postUsecase: postUsecase}
}

// postFilterFromQuery reads page, limit, category, author, tag and search.
func postFilterFromQuery(c *gin.Context) contract.PostFilterOptions {
	return contract.PostFilterOptions{
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", contract.DefaultPageSize),
		Category: c.Query("category"),
		AuthorID: c.Query("author"),
		Tag:      c.Query("tag"),
		Search:   c.Query("search"),
	}
}

// ListPosts handles GET /api/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, err := h.postUsecase.ListPosts(c.Request.Context(), postFilterFromQuery(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, page)
}

// GetPost handles GET /api/posts/:slug and counts a view.
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUsecase.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PostResponse{Post: *post})
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.postUsecase.CreatePost(c.Request.Context(), user, req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.PostResponse{Post: *post})
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.UpdatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.postUsecase.UpdatePost(c.Request.Context(), c.Param("slug"), user, req.ToInput())
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PostResponse{Post: *post})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}
	if err := h.postUsecase.DeletePost(c.Request.Context(), c.Param("slug"), user); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Post deleted successfully")
}
