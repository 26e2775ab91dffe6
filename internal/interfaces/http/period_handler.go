package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jportillo/incidencias-api/internal/application/dto"
	"github.com/jportillo/incidencias-api/internal/application/usecase"
)

// PeriodHandler maneja las peticiones HTTP para periodos de nómina (protegido).
type PeriodHandler struct {
	uc *usecase.PeriodUseCase
}

// NewPeriodHandler construye el handler.
func NewPeriodHandler(uc *usecase.PeriodUseCase) *PeriodHandler {
	return &PeriodHandler{uc: uc}
}

// Create godoc
// @Summary      Crear periodo
// @Tags         periods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePeriodRequest  true  "Datos del periodo (fechas YYYY-MM-DD)"
// @Success      201   {object}  dto.PeriodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/periods [post]
func (h *PeriodHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePeriodRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener periodo por ID
// @Tags         periods
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del periodo"
// @Success      200  {object}  dto.PeriodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/periods/{id} [get]
func (h *PeriodHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "periodo no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar periodos
// @Tags         periods
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca por nombre"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.PeriodListResponse
// @Router       /api/periods [get]
func (h *PeriodHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar periodo
// @Tags         periods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del periodo"
// @Param        body  body  dto.UpdatePeriodRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PeriodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/periods/{id} [put]
func (h *PeriodHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePeriodRequest
	if err := bindBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar periodo
// @Tags         periods
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del periodo"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/periods/{id} [delete]
func (h *PeriodHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
