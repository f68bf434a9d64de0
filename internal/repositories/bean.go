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

const beanColumns = `beans.id, beans.user_id, beans.variety, beans.seller, beans.roaster, beans.roast_level, beans.created_at`

// BeanRepository handles owner-scoped bean persistence.
type BeanRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBeanRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BeanRepository {
	return &BeanRepository{db: db, txGetter: txGetter}
}

// Create inserts the bean and fills CreatedAt.
func (r *BeanRepository) Create(ctx context.Context, bean *models.Bean) error {
	const query = `
		INSERT INTO beans (id, user_id, variety, seller, roaster, roast_level)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	args := []any{bean.ID, bean.UserID, bean.Variety, bean.Seller, bean.Roaster, bean.RoastLevel}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &bean.CreatedAt, query, args...)
	logQuery(query, args, bean.CreatedAt, err)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns the user's beans in insertion order.
func (r *BeanRepository) List(ctx context.Context, userID uuid.UUID) ([]models.Bean, error) {
	q := ownedBy("beans", userID)
	query := `SELECT ` + beanColumns + ` FROM beans ` + q.clause() + ` ORDER BY beans.created_at, beans.id`

	beans := []models.Bean{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &beans, query, q.args...)
	logQuery(query, q.args, len(beans), err)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return beans, nil
}

// Get returns the user's bean or nil when the user owns no bean with that id.
func (r *BeanRepository) Get(ctx context.Context, userID, id uuid.UUID) (*models.Bean, error) {
	return r.get(ctx, userID, id, "")
}

// Lock is Get with a row lock held until the surrounding transaction ends.
func (r *BeanRepository) Lock(ctx context.Context, userID, id uuid.UUID) (*models.Bean, error) {
	return r.get(ctx, userID, id, " FOR UPDATE")
}

// LockShared is Get with a shared row lock: the bean cannot be deleted until
// the surrounding transaction ends, while other readers are not blocked.
func (r *BeanRepository) LockShared(ctx context.Context, userID, id uuid.UUID) (*models.Bean, error) {
	return r.get(ctx, userID, id, " FOR SHARE")
}

func (r *BeanRepository) get(ctx context.Context, userID, id uuid.UUID, suffix string) (*models.Bean, error) {
	q := ownedBy("beans", userID).where("beans.id = ?", id)
	query := `SELECT ` + beanColumns + ` FROM beans ` + q.clause() + suffix

	var bean models.Bean
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &bean, query, q.args...)
	logQuery(query, q.args, bean.ID, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &bean, nil
}

// Update writes every mutable column of the bean. It returns sql.ErrNoRows
// when the user owns no bean with that id.
func (r *BeanRepository) Update(ctx context.Context, bean *models.Bean) error {
	q := ownedBy("beans", bean.UserID).where("beans.id = ?", bean.ID)
	query := `
		UPDATE beans
		SET variety = ` + q.arg(bean.Variety) + `,
		    seller = ` + q.arg(bean.Seller) + `,
		    roaster = ` + q.arg(bean.Roaster) + `,
		    roast_level = ` + q.arg(bean.RoastLevel) + `
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

// Delete removes the user's bean; its records go with it through the
// foreign key cascade. It reports whether a bean was deleted.
func (r *BeanRepository) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	q := ownedBy("beans", userID).where("beans.id = ?", id)
	query := `DELETE FROM beans ` + q.clause()

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
