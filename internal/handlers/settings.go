package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
)

//go:generate mockgen -source=settings.go -destination=settings_mock.go -package=handlers

// SettingsManager defines the settings operations used by the handlers.
type SettingsManager interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error)
	Update(ctx context.Context, userID uuid.UUID, patch models.SettingsPatch) (*models.UserSettings, error)
}

// NewGetSettingsHandler returns the user's default equipment.
// @Summary Get settings
// @Tags users
// @Produce json
// @Success 200 {object} models.UserSettings
// @Failure 401 {object} handlers.ErrorResponse "Not authenticated"
// @Router /api/users/settings [get]
// @Security BearerAuth
func NewGetSettingsHandler(svc SettingsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		settings, err := svc.Get(r.Context(), user.ID)
		if err != nil {
			writeServiceError(w, err, "Settings not found")
			return
		}

		writeJSON(w, http.StatusOK, settings)
	}
}

// NewUpdateSettingsHandler changes the user's default equipment. A blank or
// null value clears the default.
// @Summary Update settings
// @Tags users
// @Accept json
// @Produce json
// @Param settings body models.SettingsPatch true "Defaults to change"
// @Success 200 {object} models.UserSettings
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /api/users/settings [put]
// @Security BearerAuth
func NewUpdateSettingsHandler(svc SettingsManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := actingUser(w, r)
		if !ok {
			return
		}

		var patch models.SettingsPatch
		if err := decodeJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		settings, err := svc.Update(r.Context(), user.ID, patch)
		if err != nil {
			writeServiceError(w, err, "Settings not found")
			return
		}

		writeJSON(w, http.StatusOK, settings)
	}
}
