package entity

import "time"

// RepairJob is a tracked repair case (historically "ficha"). The two part
// maps record which spare parts were installed during the repair and which
// are still missing.
type RepairJob struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	FichaNumber       int            `json:"ficha_number" gorm:"index;not null"`
	Client            string         `json:"client" gorm:"size:128"`
	Serial            string         `json:"serial" gorm:"size:64"`
	Model             string         `json:"model" gorm:"size:64"`
	BatteryID         string         `json:"battery_id" gorm:"size:64"`
	ChargerID         string         `json:"charger_id" gorm:"size:64"`
	Diagnosis         string         `json:"diagnosis" gorm:"type:text"`
	Type              string         `json:"type" gorm:"column:type;size:64"`
	Notes             string         `json:"notes" gorm:"type:text"`
	RepairDescription string         `json:"repair_description" gorm:"type:text"`
	CycleCount        string         `json:"cycle_count" gorm:"size:32"`
	Status            string         `json:"status" gorm:"size:32"`
	PlacedParts       PartQuantities `json:"placed_parts" gorm:"type:text;not null"`
	MissingParts      PartQuantities `json:"missing_parts" gorm:"type:text;not null"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (RepairJob) TableName() string {
	return "jobs"
}
