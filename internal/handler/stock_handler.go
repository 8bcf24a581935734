package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Bakal12/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	svc *service.StockService
}

func NewStockHandler(svc *service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

type updateStockRequest struct {
	Action string `json:"action" binding:"required"`
}

// Update reconciles a part's stock against the quantity recorded as placed
// on a repair job. PUT /jobs/:id/parts/:code/stock
func (h *StockHandler) Update(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "invalid id"})
		return
	}
	var req updateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}

	newStock, err := h.svc.Adjust(c.Request.Context(), uint(jobID), c.Param("code"), req.Action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "invalid action"})
		case errors.Is(err, service.ErrPartNotOnJob):
			c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "part not recorded on repair job"})
		case errors.Is(err, service.ErrNotEnoughStock):
			c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "not enough stock"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "repair job or part not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "stock updated", "data": gin.H{"new_stock": newStock}})
}
