package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/brandcopilot/brand-copilot/internal/pkg/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondServiceError maps the domain sentinels onto HTTP statuses: missing
// resources 404, bad input 422, workflow violations 409, everything else 500.
func RespondServiceError(c *gin.Context, code string, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		RespondError(c, http.StatusNotFound, code, err)
	case apperrors.Is(err, apperrors.ErrInvalidArgument):
		RespondError(c, http.StatusUnprocessableEntity, code, err)
	case apperrors.Is(err, apperrors.ErrPreconditionFailed):
		RespondError(c, http.StatusConflict, code, err)
	case apperrors.Is(err, apperrors.ErrDownloadFailed):
		RespondError(c, http.StatusUnprocessableEntity, code, err)
	default:
		RespondError(c, http.StatusInternalServerError, code, err)
	}
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
