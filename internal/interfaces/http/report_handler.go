package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/application/reports"
)

// ReportHandler read-only reports and the dashboard.
type ReportHandler struct {
	uc *reports.UseCase
}

func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parseRange reads from/to query params (YYYY-MM-DD); defaults to the last
// 30 days. The upper bound is extended to the end of its day so the range is
// inclusive.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, bool) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from must be YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to must be YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, true
}

// SalesSummary godoc
// @Summary      Daily sales summary
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD"
// @Param        to    query  string  false  "YYYY-MM-DD"
// @Success      200   {array}  dto.DailySalesDTO
// @Router       /api/reports/sales-summary [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	from, to, ok := parseRange(c)
	if !ok {
		return nil
	}
	out, err := h.uc.SalesSummary(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesByCustomer godoc
// @Summary      Sales grouped by customer
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CustomerSalesDTO
// @Router       /api/reports/sales-by-customer [get]
func (h *ReportHandler) SalesByCustomer(c *fiber.Ctx) error {
	from, to, ok := parseRange(c)
	if !ok {
		return nil
	}
	out, err := h.uc.SalesByCustomer(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesByCustomerXLSX streams the sales-by-customer report as an xlsx
// download.
func (h *ReportHandler) SalesByCustomerXLSX(c *fiber.Ctx) error {
	from, to, ok := parseRange(c)
	if !ok {
		return nil
	}
	raw, err := h.uc.BuildSalesByCustomerXLSX(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales-by-customer.xlsx"`)
	return c.Send(raw)
}

// StockValuation godoc
// @Summary      Stock valued at cost
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockValuationDTO
// @Router       /api/reports/stock-valuation [get]
func (h *ReportHandler) StockValuation(c *fiber.Ctx) error {
	out, err := h.uc.StockValuation(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Products at or below their threshold
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LowStockDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Headline counters
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  repository.DashboardCounters
// @Router       /api/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
