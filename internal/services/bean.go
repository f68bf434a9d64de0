package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/espresso-tracker/internal/logger"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
)

//go:generate mockgen -source=bean.go -destination=bean_mock.go -package=services

// BeanStore persists beans. Reads and writes are scoped to the owner; a
// missing or foreign bean yields nil (or false for Delete).
type BeanStore interface {
	Create(ctx context.Context, bean *models.Bean) error
	List(ctx context.Context, userID uuid.UUID) ([]models.Bean, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Bean, error)
	Lock(ctx context.Context, userID, id uuid.UUID) (*models.Bean, error)
	Update(ctx context.Context, bean *models.Bean) error
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

// BeanService manages a user's bean catalog.
type BeanService struct {
	beans BeanStore
	tx    Transactor
}

// NewBeanService creates a new BeanService.
func NewBeanService(beans BeanStore, tx Transactor) *BeanService {
	return &BeanService{beans: beans, tx: tx}
}

// Create adds a bean owned by userID.
func (s *BeanService) Create(ctx context.Context, userID uuid.UUID, in models.BeanInput) (*models.Bean, error) {
	variety := strings.TrimSpace(in.Variety)
	if variety == "" {
		return nil, fmt.Errorf("%w: variety is required", ErrValidation)
	}

	bean := &models.Bean{
		ID:         uuid.New(),
		UserID:     userID,
		Variety:    variety,
		Seller:     in.Seller,
		Roaster:    in.Roaster,
		RoastLevel: in.RoastLevel,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.beans.Create(ctx, bean)
	})
	if err != nil {
		logger.Log.Errorw("failed to create bean", "user_id", userID, "error", err)
		return nil, err
	}

	return bean, nil
}

// List returns the user's beans in insertion order.
func (s *BeanService) List(ctx context.Context, userID uuid.UUID) ([]models.Bean, error) {
	beans, err := s.beans.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list beans", "user_id", userID, "error", err)
		return nil, err
	}
	return beans, nil
}

// Get returns one of the user's beans.
func (s *BeanService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Bean, error) {
	bean, err := s.beans.Get(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to get bean", "user_id", userID, "bean_id", id, "error", err)
		return nil, err
	}
	if bean == nil {
		return nil, ErrNotFound
	}
	return bean, nil
}

// Update applies the fields present in patch to one of the user's beans.
func (s *BeanService) Update(ctx context.Context, userID, id uuid.UUID, patch models.BeanPatch) (*models.Bean, error) {
	var bean *models.Bean

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		bean, err = s.beans.Lock(ctx, userID, id)
		if err != nil {
			return err
		}
		if bean == nil {
			return ErrNotFound
		}

		if patch.Variety.Set {
			variety := trimmed(patch.Variety.Value)
			if variety == nil {
				return fmt.Errorf("%w: variety cannot be empty", ErrValidation)
			}
			bean.Variety = *variety
		}
		patch.Seller.Apply(&bean.Seller)
		patch.Roaster.Apply(&bean.Roaster)
		patch.RoastLevel.Apply(&bean.RoastLevel)

		if err := s.beans.Update(ctx, bean); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		logFailure("failed to update bean", err, "user_id", userID, "bean_id", id)
		return nil, err
	}

	return bean, nil
}

// Delete removes one of the user's beans and, through the foreign key, its records.
func (s *BeanService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		deleted, err := s.beans.Delete(ctx, userID, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		logFailure("failed to delete bean", err, "user_id", userID, "bean_id", id)
		return err
	}

	logger.Log.Infow("bean deleted", "user_id", userID, "bean_id", id)
	return nil
}

// logFailure logs expected outcomes (not found, invalid input) at info and
// everything else at error.
func logFailure(msg string, err error, keysAndValues ...any) {
	keysAndValues = append(keysAndValues, "error", err)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation) {
		logger.Log.Infow(msg, keysAndValues...)
		return
	}
	logger.Log.Errorw(msg, keysAndValues...)
}
