package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Signup(*gin.Context)
	Login(*gin.Context)
	VerifyEmail(*gin.Context)
	VerifySecurity(*gin.Context)
	ResetPassword(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	authUsecase usecasecontract.IAuthUseCase
}

func NewUserHandler(authUsecase usecasecontract.IAuthUseCase) *UserHandler {
	return &UserHandler{
		authUsecase: authUsecase,
	}
}

// Signup handles account creation
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, err := h.authUsecase.Signup(c.Request.Context(), usecasecontract.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		DOB:      req.DOB,
		Phone:    req.Phone,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.AuthResponse{
		User:        dto.ToUserResponse(*user),
		AccessToken: accessToken,
	})
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.AuthResponse{
		User:        dto.ToUserResponse(*user),
		AccessToken: accessToken,
	})
}

// VerifyEmail is the first step of the password reset: it confirms an account exists.
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	var req dto.VerifyEmailRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if _, err := h.authUsecase.VerifyEmail(c.Request.Context(), req.Email); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Account found. Answer the security questions to continue.")
}

// VerifySecurity checks date of birth and phone and hands out a one-time reset token.
func (h *UserHandler) VerifySecurity(c *gin.Context) {
	var req dto.VerifySecurityRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	verifier, token, err := h.authUsecase.VerifySecurity(c.Request.Context(), req.Email, req.DOB, req.Phone)
	if err != nil {
		HandleError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.VerifySecurityResponse{Verifier: verifier, Token: token})
}

// ResetPassword handles the final step of the password reset
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.authUsecase.ResetPassword(c.Request.Context(), req.Verifier, req.Token, req.NewPassword); err != nil {
		HandleError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Password has been reset successfully.")
}
