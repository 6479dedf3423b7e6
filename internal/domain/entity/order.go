package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del ciclo de vida de una orden.
type OrderStatus string

// Estados válidos de Order.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// allowedTransitions tabla explícita de transiciones permitidas.
// Regla de negocio: una orden confirmada no se puede cancelar;
// delivered y cancelled son estados terminales.
var allowedTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending: {
		OrderStatusConfirmed: true,
		OrderStatusCancelled: true,
	},
	OrderStatusConfirmed: {
		OrderStatusDelivered: true,
	},
}

// IsValid indica si el valor corresponde a un estado conocido.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo consulta la tabla de transiciones.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return allowedTransitions[s][next]
}

// IsTerminal indica si desde el estado no existe ninguna transición de salida.
func (s OrderStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// Order representa una orden de compra de un cliente sobre un producto.
// Quantity, Price y Total se fijan en la creación y nunca se modifican;
// solo Status cambia vía transiciones válidas.
type Order struct {
	ID         string
	CustomerID string
	ProductID  string
	Quantity   int64           // entero >= 1
	Price      decimal.Decimal // precio unitario capturado al crear la orden
	Total      decimal.Decimal // Quantity × Price, calculado al crear; inmune a cambios de precio posteriores
	Status     OrderStatus
	OrderDate  time.Time
}

// CanBeDeleted indica si la orden puede eliminarse: las órdenes
// confirmadas o entregadas no se borran (quedan como historial de venta).
func (o *Order) CanBeDeleted() bool {
	return o.Status != OrderStatusConfirmed && o.Status != OrderStatusDelivered
}

// NeedsStockRestore indica si eliminar la orden debe devolver stock.
// Una orden cancelada ya devolvió su stock al cancelarse.
func (o *Order) NeedsStockRestore() bool {
	return o.CanBeDeleted() && o.Status != OrderStatusCancelled
}
