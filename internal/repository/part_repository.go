package repository

import (
	"context"

	"github.com/Bakal12/backend/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// partColumns is the allow-list for partial updates. Field names coming
// from a payload are never interpolated into SQL unless they appear here.
var partColumns = map[string]bool{
	"code":               true,
	"description":        true,
	"available_quantity": true,
	"shelf_number":       true,
	"rack_number":        true,
	"bin_number":         true,
	"bin_position":       true,
}

type PartRepository struct {
	db *gorm.DB
}

func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// UpdatableColumns reports whether a payload field may be written.
func (r *PartRepository) UpdatableColumns() map[string]bool {
	return partColumns
}

func (r *PartRepository) List(ctx context.Context) ([]entity.Part, error) {
	var parts []entity.Part
	err := r.db.WithContext(ctx).Order("code ASC").Find(&parts).Error
	return parts, err
}

func (r *PartRepository) Create(ctx context.Context, part *entity.Part) error {
	return r.db.WithContext(ctx).Create(part).Error
}

// UpdateFields applies a pre-filtered column map and returns the number of
// rows matched so callers can distinguish a missing target from success.
func (r *PartRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Part{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *PartRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Part{})
	return result.RowsAffected, result.Error
}

// Search matches term as a case-sensitive substring across every column,
// numeric ones cast to text.
func (r *PartRepository) Search(ctx context.Context, term string) ([]entity.Part, error) {
	pattern := "%" + term + "%"
	var parts []entity.Part
	err := r.db.WithContext(ctx).
		Where(`code LIKE ? OR description LIKE ? OR available_quantity::text LIKE ?
			OR shelf_number LIKE ? OR rack_number LIKE ? OR bin_number LIKE ? OR bin_position LIKE ?`,
			pattern, pattern, pattern, pattern, pattern, pattern, pattern).
		Find(&parts).Error
	return parts, err
}

// GetByCodeForUpdate loads a part by business code holding a row lock for
// the duration of tx. Used by the stock reconciliation transaction.
func (r *PartRepository) GetByCodeForUpdate(tx *gorm.DB, code string) (*entity.Part, error) {
	var part entity.Part
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ?", code).First(&part).Error
	if err != nil {
		return nil, err
	}
	return &part, nil
}
