package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGetSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New()}
	settingsID := uuid.New()
	machine := "Linea Mini"

	mockSvc := NewMockSettingsManager(ctrl)
	mockSvc.EXPECT().
		Get(gomock.Any(), user.ID).
		Return(&models.UserSettings{ID: settingsID, UserID: user.ID, DefaultMachine: &machine}, nil)

	rr := httptest.NewRecorder()
	NewGetSettingsHandler(mockSvc)(rr, newAuthedRequest(http.MethodGet, "/api/users/settings", "", user, ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"id": "`+settingsID.String()+`",
		"user_id": "`+user.ID.String()+`",
		"default_machine": "Linea Mini",
		"default_grinder": null
	}`, rr.Body.String())
}

func TestUpdateSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New()}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockSettingsManager)
		expectedCode int
	}{
		{
			name: "clear grinder keep machine",
			body: `{"default_grinder":null}`,
			mockSetup: func(m *MockSettingsManager) {
				m.EXPECT().
					Update(gomock.Any(), user.ID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, patch models.SettingsPatch) (*models.UserSettings, error) {
						assert.False(t, patch.DefaultMachine.Set)
						assert.True(t, patch.DefaultGrinder.Set)
						assert.Nil(t, patch.DefaultGrinder.Value)
						return &models.UserSettings{UserID: user.ID}, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid json",
			body:         `[`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"default_machine":"Gaggia"}`,
			mockSetup: func(m *MockSettingsManager) {
				m.EXPECT().Update(gomock.Any(), user.ID, gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSettingsManager(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewUpdateSettingsHandler(mockSvc)(rr, newAuthedRequest(http.MethodPut, "/api/users/settings", tt.body, user, ""))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
