package repository

import (
	"context"

	"github.com/dstore/dsms-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.Order, error)
	ListAll(ctx context.Context, limit, offset int) ([]*entity.Order, error)

	// UpdateStatus cambia el estado solo si el estado actual es `from`
	// (UPDATE condicional). Devuelve false si la orden no estaba en `from`,
	// lo que cierra la carrera entre dos cancelaciones concurrentes: solo
	// una gana y dispara la compensación de stock.
	UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus) (bool, error)

	Delete(ctx context.Context, id string) error
}
