package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenHeader carries the raw session token, without an auth scheme.
	TokenHeader = "x-access-token"
	// UserContextKey is where the verified *jwt.Token is stored in fiber Locals.
	UserContextKey = "user"
)

// RevocationChecker reports whether a session token was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// JwtProtected verifies the session token in the x-access-token header.
// Missing, invalid, expired and revoked tokens all answer 403.
func JwtProtected(cfg *config.Jwt, revoked RevocationChecker) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.Secret)},
		TokenLookup:  "header:" + TokenHeader,
		ContextKey:   UserContextKey,
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			if revoked == nil {
				return c.Next()
			}
			token, ok := c.Locals(UserContextKey).(*jwt.Token)
			if !ok {
				return jwtError(c, errors.New("missing token in context"))
			}
			denied, err := revoked.IsRevoked(c.UserContext(), token.Raw)
			if err != nil {
				slog.Default().Error("Token revocation lookup failed", "error", err)
				return jwtError(c, err)
			}
			if denied {
				return jwtError(c, errors.New("token revoked"))
			}
			return c.Next()
		},
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	detail := "Failed to authenticate token."
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) && c.Get(TokenHeader) == "" {
		detail = "No token provided."
	}
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"type":     "about:blank",
		"title":    "Forbidden",
		"status":   fiber.StatusForbidden,
		"detail":   detail,
		"instance": c.OriginalURL(),
	}, "application/problem+json")
}
