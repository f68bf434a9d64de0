package models

import "github.com/google/uuid"

// UserSettings holds a user's default equipment. One row per user.
type UserSettings struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	DefaultMachine *string   `json:"default_machine" db:"default_machine"`
	DefaultGrinder *string   `json:"default_grinder" db:"default_grinder"`
}

// SettingsPatch is a partial update of UserSettings.
type SettingsPatch struct {
	DefaultMachine Optional[string] `json:"default_machine"`
	DefaultGrinder Optional[string] `json:"default_grinder"`
}
