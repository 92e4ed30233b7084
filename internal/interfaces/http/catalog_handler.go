package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/application/usecase"
)

// CategoryHandler HTTP endpoints for product categories.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "category deleted"})
}

// TaxRateHandler HTTP endpoints for tax rates.
type TaxRateHandler struct {
	uc *usecase.TaxRateUseCase
}

func NewTaxRateHandler(uc *usecase.TaxRateUseCase) *TaxRateHandler {
	return &TaxRateHandler{uc: uc}
}

func (h *TaxRateHandler) Create(c *fiber.Ctx) error {
	var in dto.TaxRateRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *TaxRateHandler) Update(c *fiber.Ctx) error {
	var in dto.TaxRateRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *TaxRateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *TaxRateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tax rate deleted"})
}

// PriceListHandler HTTP endpoints for price lists and their overrides.
type PriceListHandler struct {
	uc *usecase.PriceListUseCase
}

func NewPriceListHandler(uc *usecase.PriceListUseCase) *PriceListHandler {
	return &PriceListHandler{uc: uc}
}

func (h *PriceListHandler) Create(c *fiber.Ctx) error {
	var in dto.PriceListRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PriceListHandler) Update(c *fiber.Ctx) error {
	var in dto.PriceListRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PriceListHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PriceListHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "price list deleted"})
}

func (h *PriceListHandler) SetItem(c *fiber.Ctx) error {
	var in dto.PriceListItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	if err := h.uc.SetItem(c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "price set"})
}

func (h *PriceListHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.uc.ListItems(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *PriceListHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.DeleteItem(c.Params("id"), c.Params("productId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "price removed"})
}
