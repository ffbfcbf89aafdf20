package security

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGatedRouter(required string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", TokenGate(required), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func do(r *gin.Engine, url string, header map[string]string) int {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestTokenGateOpenMode(t *testing.T) {
	r := newGatedRouter("")
	assert.Equal(t, http.StatusOK, do(r, "/x", nil))
	assert.Equal(t, http.StatusOK, do(r, "/x?token=anything", nil))
}

func TestTokenGateQueryParam(t *testing.T) {
	r := newGatedRouter("secret")
	assert.Equal(t, http.StatusOK, do(r, "/x?token=secret", nil))
	assert.Equal(t, http.StatusUnauthorized, do(r, "/x?token=wrong", nil))
	assert.Equal(t, http.StatusUnauthorized, do(r, "/x", nil))
}

func TestTokenGateBearerHeader(t *testing.T) {
	r := newGatedRouter("secret")
	assert.Equal(t, http.StatusOK, do(r, "/x", map[string]string{"Authorization": "Bearer secret"}))
	assert.Equal(t, http.StatusOK, do(r, "/x", map[string]string{"Authorization": "bearer secret"}))
	assert.Equal(t, http.StatusUnauthorized, do(r, "/x", map[string]string{"Authorization": "Bearer wrong"}))
	// query param wins over the header when both are present
	assert.Equal(t, http.StatusOK, do(r, "/x?token=secret", map[string]string{"Authorization": "Bearer wrong"}))
}
