package entity

import "gorm.io/gorm"

// AutoMigrate migrates all tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Part{},
		&RepairJob{},
	)
}
