package repositories

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/espresso-tracker/internal/logger"
)

// scopedQuery accumulates WHERE predicates and their positional arguments.
type scopedQuery struct {
	conds []string
	args  []any
}

// ownedBy starts a query over table restricted to rows whose user_id is the
// acting user. Every statement on an owned table is built from it, so a row
// belonging to another user behaves exactly like a missing row.
func ownedBy(table string, userID uuid.UUID) *scopedQuery {
	q := &scopedQuery{}
	return q.where(table+".user_id = ?", userID)
}

// where appends a predicate; each "?" in cond is bound to the next arg.
func (q *scopedQuery) where(cond string, args ...any) *scopedQuery {
	for _, a := range args {
		cond = strings.Replace(cond, "?", q.arg(a), 1)
	}
	q.conds = append(q.conds, cond)
	return q
}

// arg binds v and returns its placeholder.
func (q *scopedQuery) arg(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

// clause renders the WHERE clause.
func (q *scopedQuery) clause() string {
	return "WHERE " + strings.Join(q.conds, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s literally anywhere in the value.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// executor returns the transaction carried by ctx, or db when there is none.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// isUniqueViolation reports whether err is a PostgreSQL unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// logQuery logs a statement flattened to a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("sql",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
