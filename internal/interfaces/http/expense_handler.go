package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dstore/dsms-api/internal/application/dto"
	"github.com/dstore/dsms-api/internal/application/usecase"
)

// ExpenseHandler maneja las peticiones HTTP de gastos/ingresos.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Add godoc
// @Summary      Registrar gasto o ingreso
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddExpenseRequest  true  "description, amount, date, type (expenses|revenue)"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Add(c *fiber.Ctx) error {
	var in dto.AddExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MonthlySummary godoc
// @Summary      Resumen financiero mensual
// @Description  Gastos, ingresos y ganancia/pérdida agregados por mes calendario.
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MonthlySummaryResponse
// @Router       /api/expenses/summary [get]
func (h *ExpenseHandler) MonthlySummary(c *fiber.Ctx) error {
	out, err := h.uc.MonthlySummary(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
