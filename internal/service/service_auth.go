package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/court-fund/internal/config"
	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/store"
	"github.com/MKhiriev/court-fund/internal/utils"
	"github.com/MKhiriev/court-fund/models"
)

// authService registers and authenticates users against a UserRepository.
// Passwords are bcrypt hashes; sessions are HS256 JWTs carrying the role.
type authService struct {
	users       store.UserRepository
	adminLogins []string

	signKey  string
	issuer   string
	tokenTTL time.Duration

	logger *logger.Logger
}

func NewAuthService(users store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		users:       users,
		adminLogins: cfg.AdminLogins,
		signKey:     cfg.TokenSignKey,
		issuer:      cfg.TokenIssuer,
		tokenTTL:    cfg.TokenDuration,
		logger:      logger,
	}
}

func hasCredentials(user models.User) bool {
	return user.Login != "" && user.Password != ""
}

// roleFor grants the admin role only to logins bootstrapped via configuration.
func (a *authService) roleFor(login string) models.Role {
	if slices.Contains(a.adminLogins, login) {
		return models.RoleAdmin
	}
	return models.RoleUser
}

// RegisterUser stores a new account with a hashed password. A login already
// taken surfaces as a wrapped store.ErrLoginAlreadyExists.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("login", user.Login).Logger()

	if !hasCredentials(user) {
		log.Error().Msg("registration without login or password")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	created, err := a.users.CreateUser(ctx, models.User{
		Login:        user.Login,
		Name:         user.Name,
		PasswordHash: hash,
		Role:         a.roleFor(user.Login),
	})
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Login checks the credentials. Unknown logins and wrong passwords both
// yield ErrWrongPassword so callers cannot enumerate existing accounts.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("login", user.Login).Logger()

	if !hasCredentials(user) {
		log.Error().Msg("login without login or password")
		return models.User{}, ErrInvalidDataProvided
	}

	found, err := a.users.FindUserByLogin(ctx, user.Login)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Warn().Msg("login attempt for unknown user")
		return models.User{}, ErrWrongPassword
	case err != nil:
		log.Err(err).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = utils.ComparePassword(found.PasswordHash, user.Password); err != nil {
		log.Warn().Int64("user_id", found.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed JWT carrying the user's ID and role.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.issuer, user.UserID, user.Role, a.tokenTTL, a.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken maps every validation failure (expired, foreign issuer,
// malformed) to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.signKey, a.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
