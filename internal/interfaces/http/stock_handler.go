package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/application/stock"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// StockHandler stock mutations and the movement ledger.
type StockHandler struct {
	uc *stock.UseCase
}

func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Add godoc
// @Summary      Add stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "Product and quantity"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/add [post]
func (h *StockHandler) Add(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.AddStock(c.Context(), GetUserID(c), in.ProductID, in.Quantity, in.Notes); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "stock added"})
}

// Adjust godoc
// @Summary      Adjust stock to an absolute count
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "New quantity and reason"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.AdjustStock(c.Context(), GetUserID(c), in.ProductID, in.NewQuantity, in.Reason); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "stock adjusted"})
}

// Movements godoc
// @Summary      List stock movements
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filter by product"
// @Param        type        query  string  false  "Filter by movement type"
// @Param        from        query  string  false  "RFC3339 lower bound"
// @Param        to          query  string  false  "RFC3339 upper bound"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()

	filter := repository.MovementFilter{
		ProductID: c.Query("product_id"),
		Type:      c.Query("type"),
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from must be RFC3339"})
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to must be RFC3339"})
		}
		filter.To = &t
	}

	items, err := h.uc.ListMovements(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}
