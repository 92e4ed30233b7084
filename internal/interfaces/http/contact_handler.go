package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/application/usecase"
	"github.com/mtechuganda/backoffice-api/internal/domain/repository"
)

// ContactHandler HTTP endpoints for customers and suppliers.
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Create godoc
// @Summary      Create contact
// @Tags         contacts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContactRequest  true  "Contact data; at least one of is_customer/is_supplier"
// @Success      201   {object}  dto.ContactResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContactRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ContactHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contact not found"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List contacts
// @Tags         contacts
// @Security     Bearer
// @Produce      json
// @Param        customers  query  bool    false  "Customers only"
// @Param        suppliers  query  bool    false  "Suppliers only"
// @Param        active     query  bool    false  "Active only"
// @Param        search     query  string  false  "Match code or name"
// @Success      200  {object}  dto.ContactListResponse
// @Router       /api/contacts [get]
func (h *ContactHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(repository.ContactFilter{
		CustomersOnly: c.QueryBool("customers", false),
		SuppliersOnly: c.QueryBool("suppliers", false),
		ActiveOnly:    c.QueryBool("active", false),
		Search:        c.Query("search"),
		Limit:         page.Limit,
		Offset:        page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ContactHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContactRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contact deleted"})
}
