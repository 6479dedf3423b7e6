// Package orders contiene el flujo de órdenes del almacén: creación con
// reserva atómica de stock y la máquina de estados del ciclo de vida.
package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/dstore/dsms-api/internal/domain"
	"github.com/dstore/dsms-api/internal/domain/entity"
	"github.com/dstore/dsms-api/internal/domain/repository"
	"github.com/dstore/dsms-api/pkg/logger"
)

// PlaceOrderUseCase crea órdenes reservando stock con un update condicional
// atómico (una sola operación check-and-decrement en la DB, no read-then-write),
// de modo que dos compradores concurrentes nunca sobrevendan el mismo producto.
type PlaceOrderUseCase struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	log         *logger.Logger
}

// NewPlaceOrderUseCase construye el caso de uso.
func NewPlaceOrderUseCase(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	log *logger.Logger,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{productRepo: productRepo, orderRepo: orderRepo, log: log}
}

// PlaceOrder valida la solicitud, reserva stock y persiste la orden.
//
// Secuencia:
//  1. quantity >= 1, producto existente (errores de validación sin efectos).
//  2. DecrementStock condicional: si no alcanza el stock, ErrOutOfStock y
//     nada queda tocado.
//  3. Crea la orden en pending con el precio unitario vigente del producto;
//     Total = Quantity × Price se fija aquí y no se recalcula nunca.
//  4. Si la creación falla después de reservar, se devuelve el stock
//     (acción compensatoria; no se asume transacción multi-documento).
//
// Garantía: exactamente una mutación de stock y a lo sumo una orden por llamada.
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, customerID, productID string, quantity int64) (*entity.Order, error) {
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	// Reserva: check-and-decrement en una sola operación atómica.
	ok, err := uc.productRepo.DecrementStock(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrOutOfStock
	}

	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
		Price:      product.Price,
		Total:      product.Price.Mul(decimal.NewFromInt(quantity)),
		Status:     entity.OrderStatusPending,
		OrderDate:  now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		// Rollback de la reserva: el stock ya se descontó y la orden no existe.
		if compErr := uc.productRepo.IncrementStock(ctx, productID, quantity); compErr != nil {
			// Stock queda sub-acreditado: requiere visibilidad del operador,
			// se registra distinto de un fallo ordinario.
			uc.log.Error().
				Err(compErr).
				Str("product_id", productID).
				Int64("quantity", quantity).
				Msg("fallo la compensación de stock tras error al crear la orden: stock sub-acreditado, requiere intervención manual")
		}
		return nil, err
	}

	return order, nil
}
