package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de Product.
const (
	ProductStatusAvailable    = "available"
	ProductStatusOutOfStock   = "out-of-stock"
	ProductStatusDiscontinued = "discontinued"
)

// Product representa un producto del almacén.
// Stock nunca es negativo: toda venta lo descuenta con un update condicional
// en la capa de persistencia, no con read-modify-write en memoria.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, >= 0
	Stock       int64           // unidades disponibles, >= 0
	CategoryID  string
	SupplierID  string
	Status      string // available, out-of-stock, discontinued
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
