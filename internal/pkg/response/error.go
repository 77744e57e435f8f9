package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusByKind is the single place where error kinds become HTTP status codes.
var statusByKind = map[apperror.Kind]int{
	apperror.KindNotFound:     http.StatusNotFound,
	apperror.KindValidation:   http.StatusBadRequest,
	apperror.KindInvalidState: http.StatusBadRequest,
	apperror.KindConflict:     http.StatusConflict,
	apperror.KindUnexpected:   http.StatusInternalServerError,
}

// StatusFor returns the HTTP status code for the given error.
func StatusFor(err error) int {
	if code, ok := statusByKind[apperror.KindOf(err)]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Error sends a JSON error response.
// AppErrors carry their message verbatim; anything else becomes a generic 500.
func Error(c *gin.Context, err error) {
	code := StatusFor(err)
	logger := zerolog.Ctx(c.Request.Context())

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || code == http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", code).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	logger.Warn().Err(err).Int("status", code).Str("kind", appErr.Kind.String()).Msg("request rejected")
	c.JSON(code, ErrorResponse{Error: appErr.Message})
}

// BadRequest sends a 400 for input rejected before reaching a service.
func BadRequest(c *gin.Context, message string) {
	zerolog.Ctx(c.Request.Context()).Warn().Int("status", http.StatusBadRequest).Msg(message)
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
