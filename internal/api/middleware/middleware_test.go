package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodgram-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticRevocation struct {
	revoked bool
	err     error
}

func (s staticRevocation) IsRevoked(context.Context, string) (bool, error) {
	return s.revoked, s.err
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery())
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"viewer": ViewerID(c), "token": GetCurrentToken(c)})
	})
	r.GET("/", handlers...)
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	return r
}

func get(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExtractToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[string]string{
		"Bearer abc":  "abc",
		"Token abc":   "abc",
		"token  abc ": "abc",
		"Basic abc":   "",
		"abc":         "",
		"":            "",
	}
	for header, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", header)
		assert.Equal(t, want, extractToken(c), header)
	}
}

func TestAuthRequired(t *testing.T) {
	tokens := utils.NewTokenManager("mw-secret", time.Hour, "test")
	token, err := tokens.Generate(42)
	require.NoError(t, err)

	r := newEngine(AuthRequired(tokens, nil))

	assert.Equal(t, http.StatusUnauthorized, get(r, "/", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/", "Bearer nope").Code)

	w := get(r, "/", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"viewer":42`)

	revoked := newEngine(AuthRequired(tokens, staticRevocation{revoked: true}))
	assert.Equal(t, http.StatusUnauthorized, get(revoked, "/", "Bearer "+token).Code)

	broken := newEngine(AuthRequired(tokens, staticRevocation{err: errors.New("redis down")}))
	assert.Equal(t, http.StatusInternalServerError, get(broken, "/", "Bearer "+token).Code)
}

func TestAuthOptional(t *testing.T) {
	tokens := utils.NewTokenManager("mw-secret", time.Hour, "test")
	token, err := tokens.Generate(7)
	require.NoError(t, err)

	r := newEngine(AuthOptional(tokens, nil))

	w := get(r, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"viewer":0`)

	w = get(r, "/", "Token "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"viewer":7`)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/", "Token broken").Code)
}

func TestRecovery(t *testing.T) {
	r := newEngine()
	w := get(r, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"InternalServerError"`)
}
