package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mtechuganda/backoffice-api/internal/application/documents"
	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// DocumentHandler invoices, receipts and quotes.
type DocumentHandler struct {
	uc *documents.UseCase
}

func NewDocumentHandler(uc *documents.UseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Create godoc
// @Summary      Create document
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "Document with lines"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      409   {object}  dto.ErrorResponse  "Insufficient stock"
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "document not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List documents
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        type        query  string  false  "invoice, receipt or quote"
// @Param        contact_id  query  string  false  "Filter by contact"
// @Param        from        query  string  false  "RFC3339 lower bound"
// @Param        to          query  string  false  "RFC3339 upper bound"
// @Success      200  {object}  dto.DocumentListResponse
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()

	filter := repository.DocumentFilter{
		Type:      c.Query("type"),
		ContactID: c.Query("contact_id"),
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

	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetPaid flips the paid flag on a document.
func (h *DocumentHandler) SetPaid(c *fiber.Ctx) error {
	var in struct {
		Paid bool `json:"paid"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "malformed request body"})
	}
	if err := h.uc.SetPaid(c.Params("id"), in.Paid); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "document updated"})
}

// PDF godoc
// @Summary      Download document as PDF
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "Document ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/pdf [get]
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	raw, err := h.uc.RenderPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="document.pdf"`)
	return c.Send(raw)
}
