package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/JonnyWalker81/moodtrail/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrail/backend/internal/config"
	"github.com/JonnyWalker81/moodtrail/backend/internal/logger"
)

// gin context keys set by Auth
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// Claims are the token claims the API relies on. Supabase-issued access
// tokens carry the user's email next to the registered claims.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

var errMissingSubject = errors.New("token subject missing")

// TokenVerifier checks bearer tokens against the configured secret and,
// when set, issuer and audience
type TokenVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewTokenVerifier(cfg config.AuthConfig) *TokenVerifier {
	alg := cfg.JWTAlgorithm
	if alg == "" {
		alg = jwt.SigningMethodHS256.Alg()
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{alg}), jwt.WithExpirationRequired()}
	if cfg.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWTIssuer))
	}
	if cfg.JWTAudience != "" {
		opts = append(opts, jwt.WithAudience(cfg.JWTAudience))
	}
	return &TokenVerifier{secret: []byte(cfg.JWTSecret), parser: jwt.NewParser(opts...)}
}

// Verify parses token and returns its claims. The subject is required.
func (v *TokenVerifier) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, errMissingSubject
	}
	return claims, nil
}

// Auth rejects requests without a valid bearer token and exposes the
// token subject as the user ID
func Auth(verifier *TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Ctx(c.Request.Context())

		token := BearerToken(c)
		if token == "" {
			log.Debug("authentication failed: missing bearer token")
			apierror.Write(c, apierror.Unauthorized(apierror.RequestID(c), "Bearer token required"))
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			log.Warn("authentication failed", logger.Err(err))
			apierror.Write(c, apierror.Unauthorized(apierror.RequestID(c), "Invalid bearer token"))
			return
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserEmailKey, claims.Email)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.Subject))

		c.Next()
	}
}

// BearerToken returns the token from the Authorization header, or "" when
// the header is missing or uses another scheme
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) < len("Bearer ") || !strings.EqualFold(header[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("Bearer "):])
}

// UserID returns the authenticated user's ID, or "" outside Auth
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
