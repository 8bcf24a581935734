package service

import (
	"context"

	"github.com/Bakal12/backend/internal/entity"
	"github.com/Bakal12/backend/internal/repository"
)

type PartService struct {
	repo *repository.PartRepository
}

func NewPartService(repo *repository.PartRepository) *PartService {
	return &PartService{repo: repo}
}

func (s *PartService) List(ctx context.Context) ([]entity.Part, error) {
	return s.repo.List(ctx)
}

type CreatePartRequest struct {
	Code              string `json:"code" binding:"required"`
	Description       string `json:"description"`
	AvailableQuantity int    `json:"available_quantity"`
	ShelfNumber       string `json:"shelf_number"`
	RackNumber        string `json:"rack_number"`
	BinNumber         string `json:"bin_number"`
	BinPosition       string `json:"bin_position"`
}

// Create inserts a new part and returns the generated id.
func (s *PartService) Create(ctx context.Context, req CreatePartRequest) (uint, error) {
	part := &entity.Part{
		Code:              req.Code,
		Description:       req.Description,
		AvailableQuantity: req.AvailableQuantity,
		ShelfNumber:       req.ShelfNumber,
		RackNumber:        req.RackNumber,
		BinNumber:         req.BinNumber,
		BinPosition:       req.BinPosition,
	}
	if err := s.repo.Create(ctx, part); err != nil {
		return 0, err
	}
	return part.ID, nil
}

// Update applies a partial field map. Unknown field names are dropped; an
// update with nothing left after filtering is rejected before touching the
// store.
func (s *PartService) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	allowed := s.repo.UpdatableColumns()
	updates := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if allowed[key] {
			updates[key] = value
		}
	}
	if len(updates) == 0 {
		return ErrNoFields
	}
	rows, err := s.repo.UpdateFields(ctx, id, updates)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PartService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PartService) Search(ctx context.Context, term string) ([]entity.Part, error) {
	return s.repo.Search(ctx, term)
}
