package httputil

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		}

		return ErrInvalidBody
	}

	return nil
}

// ContextKey is the type for keys set on the gin context by this backend.
type ContextKey string

// ContextURL is the key for the base URL of the API.
const ContextURL ContextKey = "salary-report-url"

// BaseURL returns the base URL of the API as set by the router.
func BaseURL(c *gin.Context) string {
	return c.GetString(string(ContextURL))
}
