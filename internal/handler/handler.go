package handler

import "github.com/Bakal12/backend/internal/service"

// Handlers bundles all HTTP handlers.
type Handlers struct {
	Part  *PartHandler
	Job   *RepairJobHandler
	Stock *StockHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Part:  NewPartHandler(services.Part),
		Job:   NewRepairJobHandler(services.Job),
		Stock: NewStockHandler(services.Stock),
	}
}
