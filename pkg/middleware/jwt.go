package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"linguaai/flashcards-api/internal/errs"
	"linguaai/flashcards-api/internal/model"
	"linguaai/flashcards-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthCookie is the cookie login stores the token in
const AuthCookie = "auth_token"

const userKey = "user"

type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

type UserFinder interface {
	FindByFullName(ctx context.Context, fullName string) (*model.User, error)
}

// NewJWTMiddleware resolves the request's token to a user and aborts with 401
// before any handler runs when that is not possible. The token is read from
// the Authorization header first and from the auth_token cookie otherwise
func NewJWTMiddleware(tokens TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetString("requestID")

		tokenStr := bearerToken(c)
		if tokenStr == "" {
			abortUnauthenticated(c, "token_missing", requestID)
			return
		}

		subject, err := tokens.Verify(tokenStr)
		if err != nil {
			switch {
			case errors.Is(err, security.ErrTokenExpired):
				abortUnauthenticated(c, "token_expired", requestID)
			default:
				abortUnauthenticated(c, "token_invalid", requestID)
			}

			zap.L().Debug("Rejected token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		user, err := users.FindByFullName(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				abortUnauthenticated(c, "user_not_found", requestID)
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "internal_server_error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set(userKey, *user)
		c.Set("userID", strconv.FormatUint(uint64(user.ID), 10))
		c.Next()
	}
}

// CurrentUser returns a copy of the user resolved by NewJWTMiddleware
func CurrentUser(c *gin.Context) model.User {
	return c.MustGet(userKey).(model.User)
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, tok, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(tok)
		}

		return ""
	}

	tok, err := c.Cookie(AuthCookie)
	if err != nil {
		return ""
	}

	return tok
}

func abortUnauthenticated(c *gin.Context, reason, requestID string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":     reason,
		"requestID": requestID,
	})
}
