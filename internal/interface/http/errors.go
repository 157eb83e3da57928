package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/furnistore/backend/internal/application"
	"github.com/furnistore/backend/pkg/response"
)

// fail classifies a service error into the API taxonomy and writes the error
// envelope. Anything unclassified is an internal error; the caller may retry.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrInvalidToken):
		response.Error(c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrProductNotFound),
		errors.Is(err, application.ErrItemNotFound),
		errors.Is(err, application.ErrOrderNotFound),
		errors.Is(err, application.ErrUserNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidQuantity),
		errors.Is(err, application.ErrEmptyCart),
		errors.Is(err, application.ErrInvalidCategory),
		errors.Is(err, application.ErrInvalidStatus),
		errors.Is(err, application.ErrEmailTaken):
		response.Error(c, http.StatusBadRequest, err.Error(), nil)
	default:
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal error", nil)
	}
}
