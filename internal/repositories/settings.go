package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
)

const settingsColumns = `user_settings.id, user_settings.user_id, user_settings.default_machine, user_settings.default_grinder`

// SettingsRepository stores one UserSettings row per user.
type SettingsRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSettingsRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SettingsRepository {
	return &SettingsRepository{db: db, txGetter: txGetter}
}

// Ensure creates an empty settings row for the user unless one exists.
// Concurrent callers converge on a single row through the unique user_id.
func (r *SettingsRepository) Ensure(ctx context.Context, userID uuid.UUID) error {
	const query = `
		INSERT INTO user_settings (id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, uuid.New(), userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID}, rowsAffected, err)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Get returns the user's settings or nil when the row is absent.
func (r *SettingsRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	return r.get(ctx, userID, "")
}

// Lock is Get with a row lock held until the surrounding transaction ends.
func (r *SettingsRepository) Lock(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	return r.get(ctx, userID, " FOR UPDATE")
}

func (r *SettingsRepository) get(ctx context.Context, userID uuid.UUID, suffix string) (*models.UserSettings, error) {
	q := ownedBy("user_settings", userID)
	query := `SELECT ` + settingsColumns + ` FROM user_settings ` + q.clause() + suffix

	var settings models.UserSettings
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &settings, query, q.args...)
	logQuery(query, q.args, settings.ID, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &settings, nil
}

// Update writes the defaults of the user's settings row.
func (r *SettingsRepository) Update(ctx context.Context, settings *models.UserSettings) error {
	q := ownedBy("user_settings", settings.UserID)
	query := `
		UPDATE user_settings
		SET default_machine = ` + q.arg(settings.DefaultMachine) + `,
		    default_grinder = ` + q.arg(settings.DefaultGrinder) + `
		` + q.clause()

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, q.args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, q.args, rowsAffected, err)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
