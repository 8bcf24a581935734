package entity

import "time"

// Part is a stocked spare component with a warehouse location.
type Part struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Code              string    `json:"code" gorm:"size:64;uniqueIndex;not null"`
	Description       string    `json:"description" gorm:"size:255"`
	AvailableQuantity int       `json:"available_quantity" gorm:"not null;default:0"`
	ShelfNumber       string    `json:"shelf_number" gorm:"size:32"`
	RackNumber        string    `json:"rack_number" gorm:"size:32"`
	BinNumber         string    `json:"bin_number" gorm:"size:32"`
	BinPosition       string    `json:"bin_position" gorm:"size:32"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Part) TableName() string {
	return "parts"
}
