package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP de empresas y sus industrias.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empresa
// @Description  El código se deriva del nombre (slug); un code enviado se ignora.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "name, description"
// @Success      201   {object}  dto.CompanyEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	company, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompanyEnvelope{Company: *company})
}

// Get godoc
// @Summary      Obtener empresa con facturas e industrias
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "código de la empresa"
// @Success      200   {object}  dto.CompanyDetailEnvelope
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{code} [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	company, err := h.uc.Get(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CompanyDetailEnvelope{Company: *company})
}

// Update godoc
// @Summary      Actualizar empresa
// @Description  name y description se escriben siempre; description ausente queda en null.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        code  path  string                    true  "código de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "name, description"
// @Success      200   {object}  dto.CompanyEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /companies/{code} [patch]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	company, err := h.uc.Update(c.UserContext(), c.Params("code"), in)
	if err != nil {
		return err
	}
	return c.JSON(dto.CompanyEnvelope{Company: *company})
}

// Delete godoc
// @Summary      Eliminar empresa
// @Description  Borra en cascada sus facturas y asociaciones.
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "código de la empresa"
// @Success      200   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{code} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("code")); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Status: dto.StatusDeleted})
}

// ListIndustries godoc
// @Summary      Listar asociaciones empresa-industria
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "código de la empresa"
// @Success      200   {object}  dto.CompanyIndustryListResponse
// @Router       /companies/{code}/industries [get]
func (h *CompanyHandler) ListIndustries(c *fiber.Ctx) error {
	out, err := h.uc.ListIndustries(c.UserContext(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// AddIndustry godoc
// @Summary      Asociar industria a la empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        code  path  string                      true  "código de la empresa"
// @Param        body  body  dto.CompanyIndustryRequest  true  "ind_code"
// @Success      201   {object}  dto.CompanyIndustryEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /companies/{code}/industries [post]
func (h *CompanyHandler) AddIndustry(c *fiber.Ctx) error {
	var in dto.CompanyIndustryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	link, err := h.uc.AddIndustry(c.UserContext(), c.Params("code"), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CompanyIndustryEnvelope{CompanyIndustry: *link})
}

// RemoveIndustry godoc
// @Summary      Desasociar industria de la empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        code  path  string                      true  "código de la empresa"
// @Param        body  body  dto.CompanyIndustryRequest  true  "ind_code"
// @Success      200   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /companies/{code}/industries [delete]
func (h *CompanyHandler) RemoveIndustry(c *fiber.Ctx) error {
	var in dto.CompanyIndustryRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	if err := h.uc.RemoveIndustry(c.UserContext(), c.Params("code"), in); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Status: dto.StatusDeleted})
}
