package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/MidnightMuse/internal/usecase/contract"
)

const (
	currentUserKey = "currentUser"
	// UserIDHeader identifies the caller when header auth is allowed.
	UserIDHeader = "X-User-Id"
)

// Authenticator resolves the caller of a request from its Authorization or X-User-Id header.
type Authenticator struct {
	authUC          usecasecontract.IAuthUseCase
	userUC          usecasecontract.IUserUseCase
	allowHeaderAuth bool
}

func NewAuthenticator(authUC usecasecontract.IAuthUseCase, userUC usecasecontract.IUserUseCase, allowHeaderAuth bool) *Authenticator {
	return &Authenticator{authUC: authUC, userUC: userUC, allowHeaderAuth: allowHeaderAuth}
}

// resolve returns (nil, nil) when the request carries no credentials at all.
func (a *Authenticator) resolve(c *gin.Context) (*entity.User, error) {
	ctx := c.Request.Context()
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return nil, entity.ErrInvalidToken
		}
		return a.authUC.Authenticate(ctx, strings.TrimSpace(parts[1]))
	}
	if a.allowHeaderAuth {
		if id := strings.TrimSpace(c.GetHeader(UserIDHeader)); id != "" {
			user, err := a.userUC.GetUserByID(ctx, id)
			if errors.Is(err, entity.ErrNotFound) {
				return nil, entity.ErrUnauthenticated
			}
			return user, err
		}
	}
	return nil, nil
}

func abortUnauthorized(c *gin.Context, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required", Details: details})
}

// OptionalAuth attaches the caller when credentials are present. Bad credentials are still
// rejected so a client never silently acts as anonymous.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.resolve(c)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		if user != nil {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}

// RequireAuth rejects requests without a resolvable caller.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.resolve(c)
		if err != nil || user == nil {
			abortUnauthorized(c, err)
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthorized(c, nil)
			return
		}
		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: entity.ErrForbidden.Error(), Details: "admin role required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated caller, if any.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}

// SetCurrentUser is used by tests and by handlers that authenticate inline.
func SetCurrentUser(c *gin.Context, user *entity.User) {
	c.Set(currentUserKey, user)
}
