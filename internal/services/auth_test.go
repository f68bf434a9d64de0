package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/espresso-tracker/internal/common"
	"github.com/sbilibin2017/espresso-tracker/internal/jwt"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
	"github.com/sbilibin2017/espresso-tracker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	reader   *services.MockUserReader
	writer   *services.MockUserWriter
	settings *services.MockSettingsInitializer
	cache    *services.MockUserCache
	tokens   *services.MockTokenManager
}

func newAuthService(t *testing.T, withCache bool) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)

	m := authMocks{
		reader:   services.NewMockUserReader(ctrl),
		writer:   services.NewMockUserWriter(ctrl),
		settings: services.NewMockSettingsInitializer(ctrl),
		cache:    services.NewMockUserCache(ctrl),
		tokens:   services.NewMockTokenManager(ctrl),
	}

	var cache services.UserCache
	if withCache {
		cache = m.cache
	}

	svc := services.NewAuthService(m.reader, m.writer, m.settings, cache, m.tokens, newPassthroughTx(ctrl))
	return svc, m
}

func TestAuthService_Register(t *testing.T) {
	svc, m := newAuthService(t, false)
	ctx := context.Background()

	var saved *models.User
	m.reader.EXPECT().
		ExistsByUsernameOrEmail(gomock.Any(), "alice", "alice@example.com").
		Return(false, nil)
	m.writer.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		})
	m.settings.EXPECT().
		Ensure(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID uuid.UUID) error {
			assert.Equal(t, saved.ID, userID)
			return nil
		})

	user, err := svc.Register(ctx, "  alice ", "pass123", " alice@example.com ")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Same(t, saved, user)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "pass123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")))
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		email    string
	}{
		{name: "empty username", username: "", password: "p", email: "a@example.com"},
		{name: "blank username", username: "   ", password: "p", email: "a@example.com"},
		{name: "username too long", username: strings.Repeat("a", 51), password: "p", email: "a@example.com"},
		{name: "multibyte username too long", username: strings.Repeat("ж", 51), password: "p", email: "a@example.com"},
		{name: "empty password", username: "alice", password: "", email: "a@example.com"},
		{name: "empty email", username: "alice", password: "p", email: ""},
		{name: "malformed email", username: "alice", password: "p", email: "not-an-email"},
		{name: "email with display name", username: "alice", password: "p", email: "Alice <a@example.com>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuthService(t, false)

			user, err := svc.Register(context.Background(), tt.username, tt.password, tt.email)
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.Nil(t, user)
		})
	}
}

func TestAuthService_Register_LengthCountsCharacters(t *testing.T) {
	svc, m := newAuthService(t, false)
	username := strings.Repeat("ж", 50)

	m.reader.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), username, "ivan@example.com").Return(false, nil)
	m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.settings.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return(nil)

	user, err := svc.Register(context.Background(), username, "pass123", "ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, username, user.Username)
}

func TestAuthService_Register_Conflicts(t *testing.T) {
	dbErr := errors.New("db error")

	tests := []struct {
		name    string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name: "username or email taken",
			setup: func(m authMocks) {
				m.reader.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "bob", "bob@example.com").Return(true, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "unique violation racing past the check",
			setup: func(m authMocks) {
				m.reader.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "bob", "bob@example.com").Return(false, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(common.ErrAlreadyExists)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "reader error",
			setup: func(m authMocks) {
				m.reader.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "bob", "bob@example.com").Return(false, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "writer error",
			setup: func(m authMocks) {
				m.reader.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "bob", "bob@example.com").Return(false, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "settings error",
			setup: func(m authMocks) {
				m.reader.EXPECT().ExistsByUsernameOrEmail(gomock.Any(), "bob", "bob@example.com").Return(false, nil)
				m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.settings.EXPECT().Ensure(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t, false)
			tt.setup(m)

			user, err := svc.Register(context.Background(), "bob", "pass123", "bob@example.com")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, user)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	password := "secret"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	userID := uuid.New()

	tests := []struct {
		name      string
		username  string
		loginPass string
		user      *models.User
		readerErr error
		jwtErr    error
		expectJWT bool
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: password,
			user:      &models.User{ID: userID, Username: "alice", PasswordHash: string(hashed)},
			expectJWT: true,
			wantToken: "token123",
		},
		{
			name:      "unknown user",
			username:  "bob",
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			username:  "carol",
			loginPass: "wrongpass",
			user:      &models.User{ID: uuid.New(), Username: "carol", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "eve",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "JWT generation error",
			username:  "dan",
			loginPass: password,
			user:      &models.User{ID: userID, Username: "dan", PasswordHash: string(hashed)},
			expectJWT: true,
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t, false)

			m.reader.EXPECT().GetByUsername(gomock.Any(), tt.username).Return(tt.user, tt.readerErr)
			if tt.expectJWT {
				m.tokens.EXPECT().
					Generate(gomock.Any(), tt.user.ID, tt.user.Username).
					Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_ResolveIdentity(t *testing.T) {
	userID := uuid.New()
	user := &models.User{ID: userID, Username: "alice", Email: "alice@example.com"}
	claims := &jwt.Claims{
		UserID:           userID,
		RegisteredClaims: gojwt.RegisteredClaims{Subject: "alice"},
	}

	tests := []struct {
		name      string
		withCache bool
		setup     func(m authMocks)
		wantUser  *models.User
		wantErr   error
	}{
		{
			name:      "invalid token",
			withCache: true,
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(nil, jwt.ErrInvalidToken)
			},
			wantErr: services.ErrUnauthorized,
		},
		{
			name:      "cache hit",
			withCache: true,
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				m.cache.EXPECT().Get(gomock.Any(), "alice").Return(user, nil)
			},
			wantUser: user,
		},
		{
			name:      "cache miss loads and caches",
			withCache: true,
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				m.cache.EXPECT().Get(gomock.Any(), "alice").Return(nil, nil)
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				m.cache.EXPECT().Set(gomock.Any(), user).Return(nil)
			},
			wantUser: user,
		},
		{
			name:      "cache failure falls back to database",
			withCache: true,
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				m.cache.EXPECT().Get(gomock.Any(), "alice").Return(nil, errors.New("redis down"))
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				m.cache.EXPECT().Set(gomock.Any(), user).Return(errors.New("redis down"))
			},
			wantUser: user,
		},
		{
			name:      "stale cache entry for another user id",
			withCache: true,
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				m.cache.EXPECT().Get(gomock.Any(), "alice").Return(&models.User{ID: uuid.New(), Username: "alice"}, nil)
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				m.cache.EXPECT().Set(gomock.Any(), user).Return(nil)
			},
			wantUser: user,
		},
		{
			name: "without cache",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
			},
			wantUser: user,
		},
		{
			name: "user no longer exists",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
			},
			wantErr: services.ErrUnauthorized,
		},
		{
			name: "username now belongs to another user",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(&models.User{ID: uuid.New(), Username: "alice"}, nil)
			},
			wantErr: services.ErrUnauthorized,
		},
		{
			name: "database error",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(claims, nil)
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			wantErr: services.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t, tt.withCache)
			tt.setup(m)

			got, err := svc.ResolveIdentity(context.Background(), "tok")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantUser, got)
		})
	}
}
