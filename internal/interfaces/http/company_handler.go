package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mtechuganda/backoffice-api/internal/application/dto"
	"github.com/mtechuganda/backoffice-api/internal/application/usecase"
	"github.com/mtechuganda/backoffice-api/internal/infrastructure/upload"
)

// CompanyHandler the singleton company profile.
type CompanyHandler struct {
	uc      *usecase.CompanyUseCase
	storage *upload.Storage
}

func NewCompanyHandler(uc *usecase.CompanyUseCase, storage *upload.Storage) *CompanyHandler {
	return &CompanyHandler{uc: uc, storage: storage}
}

// Get godoc
// @Summary      Company profile
// @Tags         company
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Router       /api/company [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update company profile
// @Tags         company
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyRequest  true  "Fields to update"
// @Success      200   {object}  dto.CompanyResponse
// @Router       /api/company [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UploadLogo stores a new logo and removes the previous one.
func (h *CompanyHandler) UploadLogo(c *fiber.Ctx) error {
	fh, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "logo file required"})
	}
	path, err := h.storage.SaveImage(fh, "company")
	if err != nil {
		return respondError(c, err)
	}
	previous, err := h.uc.SetLogoPath(path)
	if err != nil {
		_ = h.storage.Delete(path)
		return respondError(c, err)
	}
	_ = h.storage.Delete(previous)
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
