package repository

import (
	"context"

	"github.com/dstore/dsms-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// DecrementStock e IncrementStock son las únicas mutaciones de stock permitidas
// desde el flujo de órdenes: una sola operación atómica en el almacenamiento,
// nunca un read-check-write en memoria.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error

	// DecrementStock descuenta qty unidades solo si el stock actual alcanza
	// (UPDATE condicional `stock >= qty`). Devuelve false si no había stock
	// suficiente; en ese caso no se modifica nada.
	DecrementStock(ctx context.Context, id string, qty int64) (bool, error)

	// IncrementStock devuelve qty unidades al stock (acción compensatoria de
	// cancelación/eliminación de órdenes, o reposición).
	IncrementStock(ctx context.Context, id string, qty int64) error
}
