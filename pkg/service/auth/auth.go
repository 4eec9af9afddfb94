package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/cache"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/idgen"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userContextKey contextKey = "user"

// Strategy authenticates callers and issues session tokens.
type Strategy interface {
	// Login checks the credentials and returns the caller-scoped identifier.
	Login(ctx context.Context, user, password string) (string, error)
	GenerateToken(ctx context.Context, userID string) (string, error)
	GetCurrentUserID(ctx context.Context) (string, error)
	// Verify parses a raw token, failing with domain.ErrForbidden when it is
	// malformed, expired or badly signed.
	Verify(raw string) (*jwt.Token, error)
}

type Service struct {
	strategy Strategy
	denylist cache.TokenDenylist
	logger   *slog.Logger
}

func New(
	strategy Strategy,
	denylist cache.TokenDenylist,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{strategy: strategy, denylist: denylist, logger: logger}
}

func NewWithJWT(
	cfg *config.Auth,
	ids idgen.Generator,
	denylist cache.TokenDenylist,
	logger *slog.Logger,
) (*Service, error) {
	strategy, err := NewJWTStrategy(cfg, ids, logger)
	if err != nil {
		return nil, err
	}
	return New(strategy, denylist, logger), nil
}

// Login authenticates the caller and returns a fresh identifier with a session token for it.
func (s *Service) Login(
	ctx context.Context,
	user, password string,
) (userID, token string, err error) {
	log := s.logger.With("context", "Login")
	log.Debug("Login called", "user", user)
	userID, err = s.strategy.Login(ctx, user, password)
	if err != nil {
		log.Warn("Login failed", "user", user, "error", err)
		return "", "", err
	}
	token, err = s.strategy.GenerateToken(ctx, userID)
	if err != nil {
		log.Error("GenerateToken failed", "userID", userID, "error", err)
		return "", "", err
	}
	log.Info("Login successful", "userID", userID)
	return userID, token, nil
}

// GetCurrentUserID extracts the caller identifier from a verified token.
func (s *Service) GetCurrentUserID(
	token *jwt.Token,
) (string, error) {
	return s.strategy.GetCurrentUserID(
		context.WithValue(context.Background(), userContextKey, token),
	)
}

// Logout revokes raw for the rest of its lifetime. Missing or invalid tokens are ignored.
func (s *Service) Logout(ctx context.Context, raw string) error {
	log := s.logger.With("context", "Logout")
	if raw == "" || s.denylist == nil {
		return nil
	}
	token, err := s.strategy.Verify(raw)
	if err != nil {
		log.Debug("Ignoring invalid token on logout", "error", err)
		return nil
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if err := s.denylist.Revoke(ctx, raw, time.Until(exp.Time)); err != nil {
		log.Error("Failed to revoke token", "error", err)
		return err
	}
	log.Info("Token revoked")
	return nil
}

// IsRevoked reports whether raw was revoked by Logout.
func (s *Service) IsRevoked(ctx context.Context, raw string) (bool, error) {
	if s.denylist == nil {
		return false, nil
	}
	return s.denylist.IsRevoked(ctx, raw)
}

// JWTStrategy implements Strategy against a single configured login and HS256 tokens.
type JWTStrategy struct {
	user         string
	passwordHash string
	jwt          *config.Jwt
	ids          idgen.Generator
	now          func() time.Time
	logger       *slog.Logger
}

// NewJWTStrategy hashes cfg.Password with bcrypt unless cfg.PasswordHash is already set.
func NewJWTStrategy(
	cfg *config.Auth,
	ids idgen.Generator,
	logger *slog.Logger,
) (*JWTStrategy, error) {
	if cfg == nil || cfg.Jwt == nil || cfg.Jwt.Secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if ids == nil {
		ids = idgen.Default
	}
	if logger == nil {
		logger = slog.Default()
	}
	hash := cfg.PasswordHash
	if hash == "" {
		var err error
		if hash, err = utils.HashPassword(cfg.Password); err != nil {
			return nil, fmt.Errorf("hash login password: %w", err)
		}
	}
	return &JWTStrategy{
		user:         cfg.User,
		passwordHash: hash,
		jwt:          cfg.Jwt,
		ids:          ids,
		now:          time.Now,
		logger:       logger,
	}, nil
}

func (s *JWTStrategy) Login(
	ctx context.Context,
	user, password string,
) (string, error) {
	log := s.logger.With("context", "Login", "user", user)
	// Always check the password hash to avoid timing attacks on the user name.
	passwordOK := utils.CheckPasswordHash(password, s.passwordHash)
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.user)) == 1
	if !passwordOK || !userOK {
		log.Debug("Credentials rejected")
		return "", domain.ErrUnauthorized
	}
	return s.ids.NewID(), nil
}

func (s *JWTStrategy) GenerateToken(
	ctx context.Context,
	userID string,
) (string, error) {
	log := s.logger.With("userID", userID)
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.jwt.Expiry).Unix(),
	})
	tokenString, err := token.SignedString([]byte(s.jwt.Secret))
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Debug("GenerateToken successful")
	return tokenString, nil
}

func (s *JWTStrategy) GetCurrentUserID(
	ctx context.Context,
) (string, error) {
	token, ok := ctx.Value(userContextKey).(*jwt.Token)
	if !ok || token == nil {
		return "", domain.ErrForbidden
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrForbidden
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", domain.ErrForbidden
	}
	return userID, nil
}

func (s *JWTStrategy) Verify(raw string) (*jwt.Token, error) {
	token, err := jwt.Parse(
		raw,
		func(t *jwt.Token) (any, error) { return []byte(s.jwt.Secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrForbidden, err)
	}
	return token, nil
}
