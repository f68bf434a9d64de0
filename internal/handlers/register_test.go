package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
	"github.com/sbilibin2017/espresso-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	type requestBody struct {
		username string
		password string
		email    string
	}

	tests := []struct {
		name         string
		reqBody      requestBody
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]any
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			reqBody: requestBody{
				username: "john",
				password: "secret",
				email:    "john@example.com",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "secret", "john@example.com").
					Return(&models.User{ID: userID, Username: "john", Email: "john@example.com", PasswordHash: "hash"}, nil)
			},
			expectedCode: 201,
			expectedBody: map[string]any{
				"id":         userID.String(),
				"username":   "john",
				"email":      "john@example.com",
				"created_at": "0001-01-01T00:00:00Z",
			},
		},
		{
			name: "user already exists",
			reqBody: requestBody{
				username: "alice",
				password: "pass",
				email:    "alice@example.com",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "pass", "alice@example.com").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Username or email already registered"},
		},
		{
			name: "invalid email",
			reqBody: requestBody{
				username: "carol",
				password: "pass",
				email:    "nope",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "carol", "pass", "nope").
					Return(nil, fmt.Errorf("%w: invalid email address", services.ErrValidation))
			},
			expectedCode: 400,
			expectedBody: map[string]any{"error": "validation failed: invalid email address"},
		},
		{
			name: "internal server error",
			reqBody: requestBody{
				username: "bob",
				password: "pass",
				email:    "bob@example.com",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "pass", "bob@example.com").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(RegisterRequest{
					Username: tt.reqBody.username,
					Password: tt.reqBody.password,
					Email:    tt.reqBody.email,
				})
				req = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
