package http

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	oauthStateCookie   = "oauthState"
	googleUserInfoURL  = "https://www.googleapis.com/oauth2/v2/userinfo"
	googleCallbackPath = "/api/auth/google/callback"
)

type AuthHandler struct {
	AuthUseCase usecasecontract.IAuthUseCase
	oauthConfig *oauth2.Config
	userInfoURL string
}

func NewAuthHandler(uc usecasecontract.IAuthUseCase, baseURL, clientID, clientSecret string) *AuthHandler {
	return &AuthHandler{
		AuthUseCase: uc,
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  baseURL + googleCallbackPath,
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoURL,
	}
}

func (h *AuthHandler) enabled() bool {
	return h.oauthConfig.ClientID != "" && h.oauthConfig.ClientSecret != ""
}

func (h *AuthHandler) HandleGoogleLogin(ctx *gin.Context) {
	if !h.enabled() {
		ErrorHandler(ctx, http.StatusServiceUnavailable, "google login is not configured")
		return
	}
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		HandleError(ctx, fmt.Errorf("generate oauth state: %w", err))
		return
	}
	oauthStateString := base64.URLEncoding.EncodeToString(b)
	ctx.SetCookie(oauthStateCookie, oauthStateString, 300, "/", "", false, true)

	url := h.oauthConfig.AuthCodeURL(oauthStateString)
	ctx.Redirect(http.StatusTemporaryRedirect, url)
}

func (h *AuthHandler) HandleGoogleCallback(ctx *gin.Context) {
	if !h.enabled() {
		ErrorHandler(ctx, http.StatusServiceUnavailable, "google login is not configured")
		return
	}
	state := ctx.Query("state")
	cookieState, err := ctx.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		ErrorHandler(ctx, http.StatusUnauthorized, "invalid CSRF state token")
		return
	}
	ctx.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := ctx.Query("code")
	if code == "" {
		ErrorHandler(ctx, http.StatusBadRequest, "authorization code not provided")
		return
	}

	requestCtx := ctx.Request.Context()
	token, err := h.oauthConfig.Exchange(requestCtx, code)
	if err != nil {
		ErrorHandler(ctx, http.StatusBadGateway, "failed to exchange authorization code", err.Error())
		return
	}

	resp, err := h.oauthConfig.Client(requestCtx, token).Get(h.userInfoURL)
	if err != nil {
		ErrorHandler(ctx, http.StatusBadGateway, "failed to get user info", err.Error())
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil || resp.StatusCode != http.StatusOK {
		ErrorHandler(ctx, http.StatusBadGateway, "failed to get user info")
		return
	}
	info := gjson.ParseBytes(body)
	email := info.Get("email").String()
	if email == "" {
		ErrorHandler(ctx, http.StatusBadGateway, "google account has no email address")
		return
	}

	user, accessToken, err := h.AuthUseCase.LoginWithOAuth(requestCtx, info.Get("name").String(), email, info.Get("picture").String())
	if err != nil {
		HandleError(ctx, err)
		return
	}

	SuccessHandler(ctx, http.StatusOK, dto.AuthResponse{
		User:        dto.ToUserResponse(*user),
		AccessToken: accessToken,
	})
}
