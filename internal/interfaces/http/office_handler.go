package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jportillo/incidencias-api/internal/application/dto"
	"github.com/jportillo/incidencias-api/internal/application/usecase"
)

// OfficeHandler maneja las peticiones HTTP para oficinas (protegido).
type OfficeHandler struct {
	uc *usecase.OfficeUseCase
}

// NewOfficeHandler construye el handler.
func NewOfficeHandler(uc *usecase.OfficeUseCase) *OfficeHandler {
	return &OfficeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear oficina
// @Tags         offices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOfficeRequest  true  "Datos de la oficina"
// @Success      201   {object}  dto.OfficeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/offices [post]
func (h *OfficeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfficeRequest
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
// @Summary      Obtener oficina por ID
// @Tags         offices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la oficina"
// @Success      200  {object}  dto.OfficeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/offices/{id} [get]
func (h *OfficeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "oficina no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar oficinas
// @Tags         offices
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca por nombre (ignora acentos)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.OfficeListResponse
// @Router       /api/offices [get]
func (h *OfficeHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar oficina
// @Tags         offices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la oficina"
// @Param        body  body  dto.UpdateOfficeRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.OfficeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/offices/{id} [put]
func (h *OfficeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateOfficeRequest
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
// @Summary      Eliminar oficina
// @Tags         offices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la oficina"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/offices/{id} [delete]
func (h *OfficeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
