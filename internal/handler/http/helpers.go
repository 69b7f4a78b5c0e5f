package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/MidnightMuse/internal/domain/entity"
	"github.com/mikiasgoitom/MidnightMuse/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string, details ...string) {
	resp := dto.ErrorResponse{Error: message}
	if len(details) > 0 {
		resp.Details = details[0]
	}
	c.JSON(statusCode, resp)
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "invalid request body", err.Error())
		return err
	}
	return nil
}

// StatusForError maps a domain error onto an HTTP status code.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidInput), errors.Is(err, entity.ErrInvalidToken):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrUnauthenticated), errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, entity.ErrAIUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes err with the status its domain error maps to. Internal errors are not
// echoed back to the client.
func HandleError(c *gin.Context, err error) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		ErrorHandler(c, status, "internal server error")
		return
	}
	ErrorHandler(c, status, publicMessage(err), err.Error())
}

func publicMessage(err error) string {
	for _, sentinel := range []error{
		entity.ErrInvalidInput,
		entity.ErrInvalidToken,
		entity.ErrUnauthenticated,
		entity.ErrInvalidCredentials,
		entity.ErrForbidden,
		entity.ErrNotFound,
		entity.ErrEmailTaken,
		entity.ErrAIUnavailable,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

// queryInt reads a positive integer query parameter, falling back to def when it is absent
// or malformed.
func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil || n < 1 {
		return def
	}
	return n
}
