package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dstore/dsms-api/internal/application/analytics"
)

// DashboardHandler expone el resumen general del almacén.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Totales de productos, stock, órdenes, órdenes de hoy e ingresos.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
