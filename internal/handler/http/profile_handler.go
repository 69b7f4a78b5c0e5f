package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/contract"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/dto"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

const (
	profileActionPassword = "password"
	profileActionAvatar   = "avatar"
)

type ProfileHandlerInterface interface {
	GetProfile(*gin.Context)
	UpdateProfile(*gin.Context)
	ProfileAction(*gin.Context)
	GetPublicProfile(*gin.Context)
	ListUsers(*gin.Context)
}

var _ ProfileHandlerInterface = (*ProfileHandler)(nil)

type ProfileHandler struct {
	userUsecase usecasecontract.IUserUseCase
	postUsecase usecasecontract.IPostUseCase
}

func NewProfileHandler(userUsecase usecasecontract.IUserUseCase, postUsecase usecasecontract.IPostUseCase) *ProfileHandler {
	return &ProfileHandler{userUsecase: userUsecase, postUsecase: postUsecase}
}

// GetProfile returns the caller's own account, including contact fields.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}
	fresh, err := h.userUsecase.GetUserByID(c.Request.Context(), user.ID)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"user": dto.ToUserResponse(*fresh)})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updated, err := h.userUsecase.UpdateProfile(c.Request.Context(), user.ID, usecasecontract.ProfileUpdate{
		Name:     req.Name,
		DOB:      req.DOB,
		Phone:    req.Phone,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"user": dto.ToUserResponse(*updated)})
}

// ProfileAction dispatches POST /api/profile on its "action" field.
func (h *ProfileHandler) ProfileAction(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.ProfileActionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	ctx := c.Request.Context()
	switch req.Action {
	case profileActionPassword:
		if req.CurrentPassword == "" || req.NewPassword == "" {
			ErrorHandler(c, http.StatusBadRequest, "currentPassword and newPassword are required")
			return
		}
		if err := h.userUsecase.ChangePassword(ctx, user.ID, req.CurrentPassword, req.NewPassword); err != nil {
			HandleError(c, err)
			return
		}
		MessageHandler(c, http.StatusOK, "Password updated successfully")
	case profileActionAvatar:
		if req.PhotoURL == "" {
			ErrorHandler(c, http.StatusBadRequest, "photoURL is required")
			return
		}
		updated, err := h.userUsecase.UpdateAvatar(ctx, user.ID, req.PhotoURL)
		if err != nil {
			HandleError(c, err)
			return
		}
		SuccessHandler(c, http.StatusOK, gin.H{"user": dto.ToUserResponse(*updated)})
	default:
		ErrorHandler(c, http.StatusBadRequest, "unknown action", req.Action)
	}
}

// GetPublicProfile returns another user's public fields and the first page of their posts.
func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	ctx := c.Request.Context()
	user, err := h.userUsecase.GetUserByID(ctx, c.Param("userId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	posts, err := h.postUsecase.ListPosts(ctx, contract.PostFilterOptions{
		Page:     1,
		Limit:    contract.DefaultPageSize,
		AuthorID: user.ID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ProfileResponse{
		User:  dto.ToPublicUserResponse(*user),
		Posts: posts,
	})
}

// ListUsers handles GET /api/users for admins.
func (h *ProfileHandler) ListUsers(c *gin.Context) {
	requester, _ := middleware.CurrentUser(c)
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", contract.DefaultPageSize)
	if limit > contract.MaxPageSize {
		limit = contract.MaxPageSize
	}

	users, total, err := h.userUsecase.ListUsers(c.Request.Context(), requester, page, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	SuccessHandler(c, http.StatusOK, dto.UserListResponse{
		Users:      dto.ToUserResponses(users),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	})
}
