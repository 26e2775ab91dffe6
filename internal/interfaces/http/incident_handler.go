package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jportillo/incidencias-api/internal/application/dto"
	"github.com/jportillo/incidencias-api/internal/application/usecase"
)

// IncidentHandler maneja las peticiones HTTP para el catálogo de incidencias (protegido).
type IncidentHandler struct {
	uc *usecase.IncidentUseCase
}

// NewIncidentHandler construye el handler.
func NewIncidentHandler(uc *usecase.IncidentUseCase) *IncidentHandler {
	return &IncidentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear incidencia
// @Tags         incidents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIncidentRequest  true  "Datos de la incidencia"
// @Success      201   {object}  dto.IncidentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/incidents [post]
func (h *IncidentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIncidentRequest
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
// @Summary      Obtener incidencia por ID
// @Tags         incidents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la incidencia"
// @Success      200  {object}  dto.IncidentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/incidents/{id} [get]
func (h *IncidentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "incidencia no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar incidencias
// @Tags         incidents
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca por nombre o código (ignora acentos)"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.IncidentListResponse
// @Router       /api/incidents [get]
func (h *IncidentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar incidencia
// @Tags         incidents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la incidencia"
// @Param        body  body  dto.UpdateIncidentRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.IncidentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/incidents/{id} [put]
func (h *IncidentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIncidentRequest
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
// @Summary      Eliminar incidencia
// @Tags         incidents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la incidencia"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/incidents/{id} [delete]
func (h *IncidentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
