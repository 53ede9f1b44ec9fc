package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/rings-closed-engine/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func handleError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, errorResponse{Error: "unauthorized access"})

	case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})

	case errors.Is(err, domain.ErrInvalidRecord),
		errors.Is(err, domain.ErrInvalidRecordDay),
		errors.Is(err, domain.ErrNegativeValue),
		errors.Is(err, domain.ErrEmptyBatch),
		errors.Is(err, domain.ErrInvalidTimezone),
		errors.Is(err, domain.ErrInvalidDimension):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request", Details: err.Error()})

	case errors.Is(err, domain.ErrBatchTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}
	return userID, ok
}
