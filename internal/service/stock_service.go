package service

import (
	"context"
	"errors"

	"github.com/Bakal12/backend/internal/entity"
	"github.com/Bakal12/backend/internal/repository"
	"gorm.io/gorm"
)

// Stock reconciliation actions.
const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
)

// StockService moves a part's available quantity by the amount recorded as
// placed on a repair job. The delta is always taken from the job record,
// never from the caller, so stock can only move by what was actually placed.
type StockService struct {
	jobs  *repository.RepairJobRepository
	parts *repository.PartRepository
	db    *gorm.DB
}

func NewStockService(jobs *repository.RepairJobRepository, parts *repository.PartRepository, db *gorm.DB) *StockService {
	return &StockService{jobs: jobs, parts: parts, db: db}
}

// Adjust applies one reconciliation and returns the new stock level. The
// reads and the write run in a single transaction with the part row locked,
// so concurrent adjustments of the same part serialize and the
// negative-stock guard holds.
func (s *StockService) Adjust(ctx context.Context, jobID uint, partCode, action string) (int, error) {
	if action != ActionIncrease && action != ActionDecrease {
		return 0, ErrInvalidAction
	}

	var newStock int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		job, err := s.jobs.Get(tx, jobID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		part, err := s.parts.GetByCodeForUpdate(tx, partCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		delta, ok := job.PlacedParts[partCode]
		if !ok {
			return ErrPartNotOnJob
		}

		switch action {
		case ActionDecrease:
			if part.AvailableQuantity-delta < 0 {
				return ErrNotEnoughStock
			}
			newStock = part.AvailableQuantity - delta
		case ActionIncrease:
			newStock = part.AvailableQuantity + delta
		}

		return tx.Model(&entity.Part{}).
			Where("id = ?", part.ID).
			Update("available_quantity", newStock).Error
	})
	if err != nil {
		return 0, err
	}
	return newStock, nil
}
