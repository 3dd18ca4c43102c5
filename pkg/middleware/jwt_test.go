package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"linguaai/flashcards-api/internal/errs"
	"linguaai/flashcards-api/internal/model"
	"linguaai/flashcards-api/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	byName map[string]*model.User
	err    error
}

func (f *fakeUsers) FindByFullName(_ context.Context, name string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}

	u, ok := f.byName[name]
	if !ok {
		return nil, errs.ErrNotFound
	}

	return u, nil
}

func newTestRouter(tokens TokenVerifier, users UserFinder, reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(NewRequestIDMiddleware())
	r.GET("/me", NewJWTMiddleware(tokens, users), func(c *gin.Context) {
		*reached = true
		u := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": u.ID, "full_name": u.FullName})
	})

	return r
}

func TestJWTMiddleware(t *testing.T) {
	secret := []byte("k")
	tokens := security.NewTokenService(secret, time.Hour)
	users := &fakeUsers{byName: map[string]*model.User{
		"Ana": {ID: 7, FullName: "Ana"},
	}}

	valid, _, err := tokens.Issue("Ana")
	require.NoError(t, err)

	ghost, _, err := tokens.Issue("Ghost")
	require.NoError(t, err)

	foreign, _, err := security.NewTokenService([]byte("other"), time.Hour).Issue("Ana")
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	expired, _, err := tokens.WithClock(func() time.Time { return past }).Issue("Ana")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		cookie  string
		code    int
		reason  string
		reached bool
	}{
		{name: "bearer header", header: "Bearer " + valid, code: http.StatusOK, reached: true},
		{name: "lower case scheme", header: "bearer " + valid, code: http.StatusOK, reached: true},
		{name: "cookie", cookie: valid, code: http.StatusOK, reached: true},
		{name: "no token", code: http.StatusUnauthorized, reason: "token_missing"},
		{name: "wrong scheme", header: "Basic " + valid, code: http.StatusUnauthorized, reason: "token_missing"},
		{name: "garbage", header: "Bearer nope", code: http.StatusUnauthorized, reason: "token_invalid"},
		{name: "foreign signature", header: "Bearer " + foreign, code: http.StatusUnauthorized, reason: "token_invalid"},
		{name: "expired", cookie: expired, code: http.StatusUnauthorized, reason: "token_expired"},
		{name: "unknown subject", header: "Bearer " + ghost, code: http.StatusUnauthorized, reason: "user_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			r := newTestRouter(tokens, users, &reached)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AuthCookie, Value: tt.cookie})
			}

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.reached, reached)

			if tt.reason != "" {
				assert.Contains(t, rec.Body.String(), tt.reason)
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
			} else {
				assert.JSONEq(t, `{"id":7,"full_name":"Ana"}`, rec.Body.String())
			}
		})
	}
}

func TestJWTMiddleware_StoreFailure(t *testing.T) {
	tokens := security.NewTokenService([]byte("k"), time.Hour)
	tok, _, err := tokens.Issue("Ana")
	require.NoError(t, err)

	var reached bool
	r := newTestRouter(tokens, &fakeUsers{err: errors.New("db down")}, &reached)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, reached)
}

func TestBodySizeLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/", BodySizeLimiter(8), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("tiny")))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("way too large body")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(NewRequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("requestID"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, rec.Body.String(), 10)
	assert.Equal(t, rec.Body.String(), rec.Header().Get("X-Request-ID"))
}
