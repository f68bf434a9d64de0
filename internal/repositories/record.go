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

const recordColumns = `espresso_records.id, espresso_records.user_id, espresso_records.bean_id,
	espresso_records.machine, espresso_records.grinder, espresso_records.grind_size,
	espresso_records.dose, espresso_records.extraction_time, espresso_records.yield_amount,
	espresso_records.rating, espresso_records.sourness, espresso_records.bitterness,
	espresso_records.sweetness, espresso_records.notes, espresso_records.created_at`

// RecordRepository handles owner-scoped espresso record persistence.
type RecordRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRecordRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RecordRepository {
	return &RecordRepository{db: db, txGetter: txGetter}
}

// Create inserts the record and fills CreatedAt.
func (r *RecordRepository) Create(ctx context.Context, rec *models.EspressoRecord) error {
	const query = `
		INSERT INTO espresso_records (
			id, user_id, bean_id, machine, grinder, grind_size,
			dose, extraction_time, yield_amount,
			rating, sourness, bitterness, sweetness, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at
	`
	args := []any{
		rec.ID, rec.UserID, rec.BeanID, rec.Machine, rec.Grinder, rec.GrindSize,
		rec.Dose, rec.ExtractionTime, rec.YieldAmount,
		rec.Rating, rec.Sourness, rec.Bitterness, rec.Sweetness, rec.Notes,
	}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rec.CreatedAt, query, args...)
	logQuery(query, args, rec.CreatedAt, err)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns the user's records matching every non-empty filter, newest first.
func (r *RecordRepository) List(ctx context.Context, userID uuid.UUID, filter models.RecordFilter) ([]models.EspressoRecord, error) {
	q := ownedBy("espresso_records", userID)
	if filter.BeanID != nil {
		q.where("espresso_records.bean_id = ?", *filter.BeanID)
	}
	if filter.Machine != "" {
		q.where("espresso_records.machine ILIKE ?", containsPattern(filter.Machine))
	}
	if filter.Grinder != "" {
		q.where("espresso_records.grinder ILIKE ?", containsPattern(filter.Grinder))
	}
	if filter.BeanVariety != "" {
		q.where("beans.variety ILIKE ?", containsPattern(filter.BeanVariety))
	}
	if filter.BeanRoaster != "" {
		q.where("beans.roaster ILIKE ?", containsPattern(filter.BeanRoaster))
	}

	query := `
		SELECT ` + recordColumns + `
		FROM espresso_records
		JOIN beans ON beans.id = espresso_records.bean_id
		` + q.clause() + `
		ORDER BY espresso_records.created_at DESC, espresso_records.id DESC
	`

	records := []models.EspressoRecord{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &records, query, q.args...)
	logQuery(query, q.args, len(records), err)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return records, nil
}

// Get returns the user's record or nil when the user owns no record with that id.
func (r *RecordRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.EspressoRecord, error) {
	return r.get(ctx, userID, id, "")
}

// Lock is Get with a row lock held until the surrounding transaction ends.
func (r *RecordRepository) Lock(ctx context.Context, userID, id uuid.UUID) (*models.EspressoRecord, error) {
	return r.get(ctx, userID, id, " FOR UPDATE")
}

func (r *RecordRepository) get(ctx context.Context, userID, id uuid.UUID, suffix string) (*models.EspressoRecord, error) {
	q := ownedBy("espresso_records", userID).where("espresso_records.id = ?", id)
	query := `SELECT ` + recordColumns + ` FROM espresso_records ` + q.clause() + suffix

	var rec models.EspressoRecord
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rec, query, q.args...)
	logQuery(query, q.args, rec.ID, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &rec, nil
}

// Update writes every mutable column of the record. It returns sql.ErrNoRows
// when the user owns no record with that id.
func (r *RecordRepository) Update(ctx context.Context, rec *models.EspressoRecord) error {
	q := ownedBy("espresso_records", rec.UserID).where("espresso_records.id = ?", rec.ID)
	query := `
		UPDATE espresso_records
		SET machine = ` + q.arg(rec.Machine) + `,
		    grinder = ` + q.arg(rec.Grinder) + `,
		    grind_size = ` + q.arg(rec.GrindSize) + `,
		    dose = ` + q.arg(rec.Dose) + `,
		    extraction_time = ` + q.arg(rec.ExtractionTime) + `,
		    yield_amount = ` + q.arg(rec.YieldAmount) + `,
		    rating = ` + q.arg(rec.Rating) + `,
		    sourness = ` + q.arg(rec.Sourness) + `,
		    bitterness = ` + q.arg(rec.Bitterness) + `,
		    sweetness = ` + q.arg(rec.Sweetness) + `,
		    notes = ` + q.arg(rec.Notes) + `
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

// Delete removes the user's record and reports whether one was deleted.
func (r *RecordRepository) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	q := ownedBy("espresso_records", userID).where("espresso_records.id = ?", id)
	query := `DELETE FROM espresso_records ` + q.clause()

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, q.args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, q.args, rowsAffected, err)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return rowsAffected > 0, nil
}
