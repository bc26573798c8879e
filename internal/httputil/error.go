package httputil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the request body must not be empty"`
}

// NewError writes an HTTPError with the given status.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// ErrorHandler writes the response for errors that are not handled by the
// controller itself.
//
// Errors caused by the request body or query are answered with 400, everything else is
// logged and answered with a generic 500 that contains the request ID.
func ErrorHandler(c *gin.Context, err error) {
	if errors.Is(err, ErrRequestBodyEmpty) || errors.Is(err, ErrInvalidBody) || errors.Is(err, ErrInvalidQuery) {
		NewError(c, http.StatusBadRequest, err)
		return
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	NewError(c, http.StatusInternalServerError, fmt.Errorf("an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c)))
}
