package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/espresso-tracker/internal/middlewares"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
	"github.com/sbilibin2017/espresso-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		contentType  string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:        "json login",
			body:        `{"username":"john","password":"secret"}`,
			contentType: "application/json",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return("token123", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"access_token": "token123", "token_type": "bearer"},
		},
		{
			name:        "form login",
			body:        url.Values{"username": {"john"}, "password": {"secret"}}.Encode(),
			contentType: "application/x-www-form-urlencoded",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return("token123", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"access_token": "token123", "token_type": "bearer"},
		},
		{
			name:        "invalid credentials",
			body:        `{"username":"john","password":"wrong"}`,
			contentType: "application/json",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "wrong").Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]string{"error": "Incorrect username or password"},
		},
		{
			name:        "internal error",
			body:        `{"username":"john","password":"secret"}`,
			contentType: "application/json",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "john", "secret").Return("", errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			body:         "{invalid json}",
			contentType:  "application/json",
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedBody, resp)

			if tt.expectedCode == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestMeHandler(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "john", Email: "john@example.com", PasswordHash: "hash"}

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(middlewares.WithUser(req.Context(), user))
		rr := httptest.NewRecorder()

		NewMeHandler()(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"username":"john"`)
		assert.NotContains(t, rr.Body.String(), "hash")
	})

	t.Run("anonymous", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewMeHandler()(rr, httptest.NewRequest(http.MethodGet, "/api/auth/me", bytes.NewBuffer(nil)))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	})
}

func TestRootHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewRootHandler()(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Espresso Tracker API"}`, rr.Body.String())
}
