package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dstore/dsms-api/internal/application/dto"
	"github.com/dstore/dsms-api/internal/application/orders"
	"github.com/dstore/dsms-api/internal/domain/entity"
)

// OrderHandler maneja las peticiones HTTP de órdenes de compra.
type OrderHandler struct {
	placeUC *orders.PlaceOrderUseCase
	guardUC *orders.StatusGuardUseCase
	queryUC *orders.QueryUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(
	placeUC *orders.PlaceOrderUseCase,
	guardUC *orders.StatusGuardUseCase,
	queryUC *orders.QueryUseCase,
) *OrderHandler {
	return &OrderHandler{placeUC: placeUC, guardUC: guardUC, queryUC: queryUC}
}

// Place godoc
// @Summary      Crear orden (reserva stock)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlaceOrderRequest  true  "product_id y quantity"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "stock insuficiente"
// @Router       /api/orders [post]
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	order, err := h.placeUC.PlaceOrder(c.Context(), customerID, in.ProductID, in.Quantity)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(orders.ToOrderResponse(order))
}

// ListMine godoc
// @Summary      Listar mis órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de resultados (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	customerID := GetUserID(c)
	if customerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "user_id requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.queryUC.ListByCustomer(c.Context(), customerID, page.Limit, page.Offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todas las órdenes (administración)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo de resultados (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/orders/all [get]
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.queryUC.ListAll(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.queryUC.GetByID(c.Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	// Un cliente solo ve sus propias órdenes.
	if GetRole(c) == entity.RoleCustomer && out.CustomerID != GetUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la orden pertenece a otro cliente"})
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de la orden
// @Description  Transiciones permitidas: pending→confirmed, pending→cancelled, confirmed→delivered.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.ChangeOrderStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "transición no permitida"
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ChangeOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.guardUC.ChangeStatus(c.Context(), id, entity.OrderStatus(in.Status))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(orders.ToOrderResponse(order))
}

// Delete godoc
// @Summary      Eliminar orden
// @Description  Una orden pending devuelve su stock antes de borrarse; confirmed/delivered no se eliminan.
// @Tags         orders
// @Security     Bearer
// @Param        id   path  string  true  "ID de la orden"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	// Un cliente solo elimina sus propias órdenes; admin puede eliminar cualquiera.
	if GetRole(c) == entity.RoleCustomer {
		order, err := h.queryUC.GetByID(c.Context(), id)
		if err != nil {
			return errorJSON(c, err)
		}
		if order == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		if order.CustomerID != GetUserID(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la orden pertenece a otro cliente"})
		}
	}
	if err := h.guardUC.Delete(c.Context(), id); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
