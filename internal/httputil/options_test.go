package httputil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/salary-report/backend/internal/httputil"
	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		allow   string
	}{
		{"Get", httputil.OptionsGet, "OPTIONS, GET"},
		{"Post", httputil.OptionsPost, "OPTIONS, POST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)

			r.OPTIONS("/", tt.handler)

			req, _ := http.NewRequest(http.MethodOptions, "/", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.allow, w.Header().Get("allow"))
			assert.Equal(t, http.StatusNoContent, w.Code)
		})
	}
}
