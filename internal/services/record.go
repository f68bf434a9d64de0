package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/espresso-tracker/internal/logger"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
)

//go:generate mockgen -source=record.go -destination=record_mock.go -package=services

// RecordStore persists espresso records, scoped to their owner.
type RecordStore interface {
	Create(ctx context.Context, rec *models.EspressoRecord) error
	List(ctx context.Context, userID uuid.UUID, filter models.RecordFilter) ([]models.EspressoRecord, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.EspressoRecord, error)
	Lock(ctx context.Context, userID, id uuid.UUID) (*models.EspressoRecord, error)
	Update(ctx context.Context, rec *models.EspressoRecord) error
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

// BeanGetter looks up one of the user's beans, keeping it from being deleted
// until the surrounding transaction ends.
type BeanGetter interface {
	LockShared(ctx context.Context, userID, id uuid.UUID) (*models.Bean, error)
}

// RecordService manages a user's espresso records.
type RecordService struct {
	records  RecordStore
	beans    BeanGetter
	settings SettingsStore
	tx       Transactor
}

// NewRecordService creates a new RecordService.
func NewRecordService(records RecordStore, beans BeanGetter, settings SettingsStore, tx Transactor) *RecordService {
	return &RecordService{
		records:  records,
		beans:    beans,
		settings: settings,
		tx:       tx,
	}
}

// Create records a brewing session against one of the user's beans. A
// missing machine or grinder is taken from the user's settings; it is an
// error when neither the input nor the settings provide one.
func (s *RecordService) Create(ctx context.Context, userID uuid.UUID, in models.RecordInput) (*models.EspressoRecord, error) {
	if in.BeanID == uuid.Nil {
		return nil, fmt.Errorf("%w: bean_id is required", ErrValidation)
	}

	var rec *models.EspressoRecord

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		bean, err := s.beans.LockShared(ctx, userID, in.BeanID)
		if err != nil {
			return err
		}
		if bean == nil {
			return ErrNotFound
		}

		machine := trimmed(in.Machine)
		grinder := trimmed(in.Grinder)

		settings, err := getOrCreateSettings(ctx, s.settings, userID)
		if err != nil {
			return err
		}
		if machine == nil {
			machine = trimmed(settings.DefaultMachine)
		}
		if grinder == nil {
			grinder = trimmed(settings.DefaultGrinder)
		}

		if machine == nil {
			return fmt.Errorf("%w: machine is required", ErrValidation)
		}
		if grinder == nil {
			return fmt.Errorf("%w: grinder is required", ErrValidation)
		}

		rec = &models.EspressoRecord{
			ID:             uuid.New(),
			UserID:         userID,
			BeanID:         bean.ID,
			Machine:        *machine,
			Grinder:        *grinder,
			GrindSize:      in.GrindSize,
			Dose:           in.Dose,
			ExtractionTime: in.ExtractionTime,
			YieldAmount:    in.YieldAmount,
			Rating:         in.Rating,
			Sourness:       in.Sourness,
			Bitterness:     in.Bitterness,
			Sweetness:      in.Sweetness,
			Notes:          in.Notes,
		}
		return s.records.Create(ctx, rec)
	})
	if err != nil {
		logFailure("failed to create record", err, "user_id", userID, "bean_id", in.BeanID)
		return nil, err
	}

	return rec, nil
}

// List returns the user's records matching filter, newest first.
func (s *RecordService) List(ctx context.Context, userID uuid.UUID, filter models.RecordFilter) ([]models.EspressoRecord, error) {
	records, err := s.records.List(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list records", "user_id", userID, "error", err)
		return nil, err
	}
	return records, nil
}

// Get returns one of the user's records.
func (s *RecordService) Get(ctx context.Context, userID, id uuid.UUID) (*models.EspressoRecord, error) {
	rec, err := s.records.Get(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to get record", "user_id", userID, "record_id", id, "error", err)
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

// Update applies the fields present in patch to one of the user's records.
// Machine and grinder may be changed but not cleared.
func (s *RecordService) Update(ctx context.Context, userID, id uuid.UUID, patch models.RecordPatch) (*models.EspressoRecord, error) {
	var rec *models.EspressoRecord

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		rec, err = s.records.Lock(ctx, userID, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return ErrNotFound
		}

		if patch.Machine.Set {
			machine := trimmed(patch.Machine.Value)
			if machine == nil {
				return fmt.Errorf("%w: machine cannot be empty", ErrValidation)
			}
			rec.Machine = *machine
		}
		if patch.Grinder.Set {
			grinder := trimmed(patch.Grinder.Value)
			if grinder == nil {
				return fmt.Errorf("%w: grinder cannot be empty", ErrValidation)
			}
			rec.Grinder = *grinder
		}
		patch.GrindSize.Apply(&rec.GrindSize)
		patch.Dose.Apply(&rec.Dose)
		patch.ExtractionTime.Apply(&rec.ExtractionTime)
		patch.YieldAmount.Apply(&rec.YieldAmount)
		patch.Rating.Apply(&rec.Rating)
		patch.Sourness.Apply(&rec.Sourness)
		patch.Bitterness.Apply(&rec.Bitterness)
		patch.Sweetness.Apply(&rec.Sweetness)
		patch.Notes.Apply(&rec.Notes)

		if err := s.records.Update(ctx, rec); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		logFailure("failed to update record", err, "user_id", userID, "record_id", id)
		return nil, err
	}

	return rec, nil
}

// Delete removes one of the user's records.
func (s *RecordService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		deleted, err := s.records.Delete(ctx, userID, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		logFailure("failed to delete record", err, "user_id", userID, "record_id", id)
		return err
	}

	logger.Log.Infow("record deleted", "user_id", userID, "record_id", id)
	return nil
}
