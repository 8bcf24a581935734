package service

import (
	"context"
	"encoding/json"

	"github.com/Bakal12/backend/internal/entity"
	"github.com/Bakal12/backend/internal/repository"
)

type RepairJobService struct {
	repo *repository.RepairJobRepository
}

func NewRepairJobService(repo *repository.RepairJobRepository) *RepairJobService {
	return &RepairJobService{repo: repo}
}

func (s *RepairJobService) List(ctx context.Context) ([]entity.RepairJob, error) {
	return s.repo.List(ctx)
}

type CreateRepairJobRequest struct {
	FichaNumber       int                   `json:"ficha_number" binding:"required"`
	Client            string                `json:"client"`
	Serial            string                `json:"serial"`
	Model             string                `json:"model"`
	BatteryID         string                `json:"battery_id"`
	ChargerID         string                `json:"charger_id"`
	Diagnosis         string                `json:"diagnosis"`
	Type              string                `json:"type"`
	Notes             string                `json:"notes"`
	RepairDescription string                `json:"repair_description"`
	CycleCount        string                `json:"cycle_count"`
	Status            string                `json:"status"`
	PlacedParts       entity.PartQuantities `json:"placed_parts"`
	MissingParts      entity.PartQuantities `json:"missing_parts"`
}

func (s *RepairJobService) Create(ctx context.Context, req CreateRepairJobRequest) (uint, error) {
	job := &entity.RepairJob{
		FichaNumber:       req.FichaNumber,
		Client:            req.Client,
		Serial:            req.Serial,
		Model:             req.Model,
		BatteryID:         req.BatteryID,
		ChargerID:         req.ChargerID,
		Diagnosis:         req.Diagnosis,
		Type:              req.Type,
		Notes:             req.Notes,
		RepairDescription: req.RepairDescription,
		CycleCount:        req.CycleCount,
		Status:            req.Status,
		PlacedParts:       req.PlacedParts,
		MissingParts:      req.MissingParts,
	}
	if job.PlacedParts == nil {
		job.PlacedParts = entity.PartQuantities{}
	}
	if job.MissingParts == nil {
		job.MissingParts = entity.PartQuantities{}
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return 0, err
	}
	return job.ID, nil
}

// Update applies a partial field map validated against the full job schema.
// The two part maps are converted to their typed form so they serialize to
// text on the way into the store.
func (s *RepairJobService) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	allowed := s.repo.UpdatableColumns()
	updates := make(map[string]interface{}, len(fields))
	for key, value := range fields {
		if !allowed[key] {
			continue
		}
		if key == "placed_parts" || key == "missing_parts" {
			quantities, err := toPartQuantities(value)
			if err != nil {
				return ErrBadPartMap
			}
			updates[key] = quantities
			continue
		}
		updates[key] = value
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

func (s *RepairJobService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RepairJobService) Search(ctx context.Context, term string) ([]entity.RepairJob, error) {
	return s.repo.Search(ctx, term)
}

// toPartQuantities re-decodes an arbitrary JSON value as a code→int map.
func toPartQuantities(value interface{}) (entity.PartQuantities, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var quantities entity.PartQuantities
	if err := json.Unmarshal(raw, &quantities); err != nil {
		return nil, err
	}
	if quantities == nil {
		quantities = entity.PartQuantities{}
	}
	return quantities, nil
}
