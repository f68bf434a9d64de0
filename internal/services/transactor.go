package services

import "context"

//go:generate mockgen -source=transactor.go -destination=transactor_mock.go -package=services

// Transactor runs fn as one unit of work. Repositories called with the
// context handed to fn take part in the same transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
