package repository

import "gorm.io/gorm"

// Repositories bundles all data access.
type Repositories struct {
	Part *PartRepository
	Job  *RepairJobRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Part: NewPartRepository(db),
		Job:  NewRepairJobRepository(db),
	}
}
