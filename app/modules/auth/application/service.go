package authservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	authdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/domain"
	authjwt "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/auth/infrastructure/jwt"
	"github.com/Black-And-White-Club/cirqit-scoreboard/app/shared/observability/attr"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL applies when Config.TokenTTL is unset.
const DefaultTokenTTL = 12 * time.Hour

// Account is an administrator allowed to log in.
type Account struct {
	Username     string
	PasswordHash string
	Role         authdomain.Role
}

// Config holds the configuration for the auth service.
type Config struct {
	Accounts []Account
	TokenTTL time.Duration
}

// service implements the Service interface.
type service struct {
	jwtProvider authjwt.Provider
	accounts    map[string]Account
	ttl         time.Duration
	logger      *slog.Logger
	tracer      trace.Tracer
	// dummyHash keeps unknown usernames on the same bcrypt path as known ones.
	dummyHash []byte
}

// NewService creates a new auth service.
func NewService(jwtProvider authjwt.Provider, config Config, logger *slog.Logger, tracer trace.Tracer) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("auth")
	}
	ttl := config.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	accounts := make(map[string]Account, len(config.Accounts))
	for _, a := range config.Accounts {
		if a.Username == "" || a.PasswordHash == "" || !a.Role.IsValid() {
			logger.Warn("Skipping invalid admin account", attr.String("username", a.Username))
			continue
		}
		accounts[a.Username] = a
	}

	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.MinCost)

	return &service{
		jwtProvider: jwtProvider,
		accounts:    accounts,
		ttl:         ttl,
		logger:      logger,
		tracer:      tracer,
		dummyHash:   dummy,
	}
}

// Login checks credentials and issues a token.
func (s *service) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	account, ok := s.accounts[username]
	hash := s.dummyHash
	if ok {
		hash = []byte(account.PasswordHash)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || !ok {
		s.logger.WarnContext(ctx, "Admin login rejected",
			attr.ExtractCorrelationID(ctx),
			attr.String("username", username),
		)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtProvider.GenerateToken(account.Username, account.Role, s.ttl)
	if err != nil {
		span.RecordError(err)
		s.logger.ErrorContext(ctx, "Failed to generate admin token", attr.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrGenerateToken, err)
	}

	s.logger.InfoContext(ctx, "Admin logged in",
		attr.ExtractCorrelationID(ctx),
		attr.String("username", account.Username),
		attr.String("role", account.Role.String()),
	)

	return &LoginResponse{
		Token:     token,
		Role:      account.Role,
		ExpiresAt: time.Now().Add(s.ttl),
	}, nil
}

// Authorize validates the token and returns a grant.
func (s *service) Authorize(ctx context.Context, tokenString string) (authdomain.Grant, error) {
	_, span := s.tracer.Start(ctx, "AuthService.Authorize")
	defer span.End()

	if tokenString == "" {
		return authdomain.Grant{}, ErrMissingToken
	}

	claims, err := s.jwtProvider.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, authjwt.ErrExpiredToken) {
			return authdomain.Grant{}, ErrExpiredToken
		}
		return authdomain.Grant{}, ErrInvalidToken
	}

	// Tokens outlive config edits; a removed account loses access immediately.
	account, ok := s.accounts[claims.Subject]
	if !ok {
		return authdomain.Grant{}, ErrInvalidToken
	}
	if account.Role != claims.Role {
		claims.Role = account.Role
	}

	return authdomain.GrantFromClaims(claims), nil
}
