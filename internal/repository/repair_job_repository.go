package repository

import (
	"context"

	"github.com/Bakal12/backend/internal/entity"
	"gorm.io/gorm"
)

// jobColumns covers the full jobs schema. Job updates historically accepted
// any field name; validating against the known column set keeps that
// flexibility without interpolating untrusted names into SQL.
var jobColumns = map[string]bool{
	"ficha_number":       true,
	"client":             true,
	"serial":             true,
	"model":              true,
	"battery_id":         true,
	"charger_id":         true,
	"diagnosis":          true,
	"type":               true,
	"notes":              true,
	"repair_description": true,
	"cycle_count":        true,
	"status":             true,
	"placed_parts":       true,
	"missing_parts":      true,
}

type RepairJobRepository struct {
	db *gorm.DB
}

func NewRepairJobRepository(db *gorm.DB) *RepairJobRepository {
	return &RepairJobRepository{db: db}
}

func (r *RepairJobRepository) UpdatableColumns() map[string]bool {
	return jobColumns
}

func (r *RepairJobRepository) List(ctx context.Context) ([]entity.RepairJob, error) {
	var jobs []entity.RepairJob
	err := r.db.WithContext(ctx).Order("ficha_number ASC").Find(&jobs).Error
	return jobs, err
}

func (r *RepairJobRepository) Create(ctx context.Context, job *entity.RepairJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *RepairJobRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.RepairJob{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *RepairJobRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.RepairJob{})
	return result.RowsAffected, result.Error
}

func (r *RepairJobRepository) Search(ctx context.Context, term string) ([]entity.RepairJob, error) {
	pattern := "%" + term + "%"
	var jobs []entity.RepairJob
	err := r.db.WithContext(ctx).
		Where(`ficha_number::text LIKE ? OR client LIKE ? OR serial LIKE ? OR model LIKE ?
			OR battery_id LIKE ? OR charger_id LIKE ? OR diagnosis LIKE ? OR type LIKE ?
			OR notes LIKE ? OR repair_description LIKE ? OR cycle_count LIKE ? OR status LIKE ?`,
			pattern, pattern, pattern, pattern, pattern, pattern,
			pattern, pattern, pattern, pattern, pattern, pattern).
		Find(&jobs).Error
	return jobs, err
}

// Get loads a single job inside tx. The stock reconciliation transaction
// uses it to read placed_parts.
func (r *RepairJobRepository) Get(tx *gorm.DB, id uint) (*entity.RepairJob, error) {
	var job entity.RepairJob
	if err := tx.First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}
