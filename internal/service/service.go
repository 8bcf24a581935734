package service

import (
	"errors"

	"github.com/Bakal12/backend/internal/repository"
	"gorm.io/gorm"
)

// Business errors. Handlers map these onto the HTTP surface.
var (
	ErrNotFound       = errors.New("record not found")
	ErrNoFields       = errors.New("no fields to update")
	ErrBadPartMap     = errors.New("invalid part quantity map")
	ErrPartNotOnJob   = errors.New("part not recorded on repair job")
	ErrNotEnoughStock = errors.New("not enough stock")
	ErrInvalidAction  = errors.New("invalid action")
)

// Services bundles all business logic.
type Services struct {
	Part  *PartService
	Job   *RepairJobService
	Stock *StockService
}

func NewServices(repos *repository.Repositories, db *gorm.DB) *Services {
	return &Services{
		Part:  NewPartService(repos.Part),
		Job:   NewRepairJobService(repos.Job),
		Stock: NewStockService(repos.Job, repos.Part, db),
	}
}
