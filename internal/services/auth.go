package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/espresso-tracker/internal/common"
	"github.com/sbilibin2017/espresso-tracker/internal/jwt"
	"github.com/sbilibin2017/espresso-tracker/internal/logger"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

const (
	maxUsernameLength = 50
	maxEmailLength    = 255
)

// UserReader defines read-only operations for users.
type UserReader interface {
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) error
}

// SettingsInitializer creates the empty settings row of a new user.
type SettingsInitializer interface {
	Ensure(ctx context.Context, userID uuid.UUID) error
}

// UserCache is a read-through cache of users keyed by username.
type UserCache interface {
	Get(ctx context.Context, username string) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
}

// TokenManager issues and verifies access tokens.
type TokenManager interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
}

// AuthService handles registration, login and token resolution.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	settings SettingsInitializer
	cache    UserCache
	tokens   TokenManager
	tx       Transactor
}

// NewAuthService creates a new AuthService. cache may be nil.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	settings SettingsInitializer,
	cache UserCache,
	tokens TokenManager,
	tx Transactor,
) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		settings: settings,
		cache:    cache,
		tokens:   tokens,
		tx:       tx,
	}
}

// Register creates a user together with an empty settings row.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := validateRegistration(username, password, email); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	err = svc.tx.WithinTx(ctx, func(ctx context.Context) error {
		exists, err := svc.reader.ExistsByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return err
		}
		if exists {
			return ErrUserAlreadyExists
		}

		if err := svc.writer.Save(ctx, user); err != nil {
			if errors.Is(err, common.ErrAlreadyExists) {
				return ErrUserAlreadyExists
			}
			return err
		}

		return svc.settings.Ensure(ctx, user.ID)
	})
	if err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			logger.Log.Infow("user already exists", "username", username, "email", email)
		} else {
			logger.Log.Errorw("failed to register user", "username", username, "error", err)
		}
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", user.ID, "username", username)
	return user, nil
}

func validateRegistration(username, password, email string) error {
	switch {
	case username == "":
		return fmt.Errorf("%w: username is required", ErrValidation)
	case utf8.RuneCountInString(username) > maxUsernameLength:
		return fmt.Errorf("%w: username must be at most %d characters", ErrValidation, maxUsernameLength)
	case password == "":
		return fmt.Errorf("%w: password is required", ErrValidation)
	case email == "":
		return fmt.Errorf("%w: email is required", ErrValidation)
	case utf8.RuneCountInString(email) > maxEmailLength:
		return fmt.Errorf("%w: email must be at most %d characters", ErrValidation, maxEmailLength)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	return nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "error", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("login for unknown user", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "error", err)
		return "", err
	}

	return token, nil
}

// ResolveIdentity returns the user a token was issued to. Every failure,
// including a user that no longer exists, is reported as ErrUnauthorized.
func (svc *AuthService) ResolveIdentity(ctx context.Context, token string) (*models.User, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Infow("token rejected", "error", err)
		return nil, ErrUnauthorized
	}
	username := claims.Username()

	if svc.cache != nil {
		user, err := svc.cache.Get(ctx, username)
		if err != nil {
			logger.Log.Warnw("user cache unavailable", "username", username, "error", err)
		} else if user != nil && user.ID == claims.UserID {
			return user, nil
		}
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to load token user", "username", username, "error", err)
		return nil, ErrUnauthorized
	}
	if user == nil || user.ID != claims.UserID {
		logger.Log.Infow("token user not found", "username", username)
		return nil, ErrUnauthorized
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("failed to cache user", "username", username, "error", err)
		}
	}

	return user, nil
}
