package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthProvider struct {
	userID string
	err    error

	lastToken string
}

func (s *stubAuthProvider) UserIDFromToken(ctx context.Context, token string) (string, error) {
	s.lastToken = token
	return s.userID, s.err
}

func newAuthTestRouter(provider *stubAuthProvider) (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	seen := new(string)
	r := gin.New()
	r.Use(AuthMiddleware(provider))
	r.GET("/whoami", func(c *gin.Context) {
		*seen = CurrentUserID(c)
		c.Status(http.StatusOK)
	})
	return r, seen
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	provider := &stubAuthProvider{userID: "user-1"}
	r, seen := newAuthTestRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "good-token", provider.lastToken)
	assert.Equal(t, "user-1", *seen)
}

func TestAuthMiddlewareInvalidTokenProceedsAnonymous(t *testing.T) {
	provider := &stubAuthProvider{err: errors.New("token expired")}
	r, seen := newAuthTestRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, *seen)
}

func TestAuthMiddlewareNoHeader(t *testing.T) {
	provider := &stubAuthProvider{userID: "user-1"}
	r, seen := newAuthTestRouter(provider)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, *seen)
	assert.Empty(t, provider.lastToken, "provider must not be called without a bearer token")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	provider := &stubAuthProvider{userID: "user-1"}
	r, seen := newAuthTestRouter(provider)

	for _, header := range []string{"Basic abc123", "Bearer", "Bearer "} {
		*seen = "unset"
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "header: %q", header)
		assert.Empty(t, *seen, "header: %q", header)
	}
}
