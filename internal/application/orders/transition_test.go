package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/dstore/dsms-api/internal/application/orders"
	"github.com/dstore/dsms-api/internal/domain"
	"github.com/dstore/dsms-api/internal/domain/entity"
)

func newOrden(id string, status entity.OrderStatus, productID string, qty int64) *entity.Order {
	precio := decimal.NewFromInt(100)
	return &entity.Order{
		ID:         id,
		CustomerID: "c1",
		ProductID:  productID,
		Quantity:   qty,
		Price:      precio,
		Total:      precio.Mul(decimal.NewFromInt(qty)),
		Status:     status,
	}
}

func TestChangeStatus_PendingAConfirmed(t *testing.T) {
	productos := newFakeProductRepo(newProducto("p1", 100, 5))
	ordenes := newFakeOrderRepo(newOrden("o1", entity.OrderStatusPending, "p1", 2))
	uc := orders.NewStatusGuardUseCase(ordenes, productos, testLogger())

	orden, err := uc.ChangeStatus(context.Background(), "o1", entity.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, orden.Status)
	assert.Equal(t, int64(5), productos.stockOf("p1"), "confirmar no toca el stock")
}

func TestChangeStatus_ConfirmadaNoSeCancela(t *testing.T) {
	productos := newFakeProductRepo(newProducto("p1", 100, 5))
	ordenes := newFakeOrderRepo(newOrden("o1", entity.OrderStatusConfirmed, "p1", 2))
	uc := orders.NewStatusGuardUseCase(ordenes, productos, testLogger())

	_, err := uc.ChangeStatus(context.Background(), "o1", entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"confirmed → cancelled siempre se rechaza")
	assert.Equal(t, entity.OrderStatusConfirmed, ordenes.statusOf("o1"), "el estado queda intacto")
	assert.Equal(t, int64(5), productos.stockOf("p1"), "el stock queda intacto")
}

// Cancelar una vez acredita el stock exactamente una vez; el segundo intento
// falla con InvalidTransition antes de disparar la compensación.
func TestChangeStatus_CancelacionIdempotente(t *testing.T) {
	productos := newFakeProductRepo(newProducto("p1", 100, 3))
	ordenes := newFakeOrderRepo(newOrden("o1", entity.OrderStatusPending, "p1", 2))
	uc := orders.NewStatusGuardUseCase(ordenes, productos, testLogger())

	orden, err := uc.ChangeStatus(context.Background(), "o1", entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, orden.Status)
	assert.Equal(t, int64(5), productos.stockOf("p1"), "la cancelación devuelve la cantidad de la orden")

	_, err = uc.ChangeStatus(context.Background(), "o1", entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "segunda cancelación rechazada")
	assert.Equal(t, int64(5), productos.stockOf("p1"), "el stock no se acredita dos veces")
	assert.Equal(t, 1, productos.incrementCalls, "exactamente una compensación")
}

func TestChangeStatus_EstadosTerminales(t *testing.T) {
	productos := newFakeProductRepo(newProducto("p1", 100, 5))
	ordenes := newFakeOrderRepo(
		newOrden("entregada", entity.OrderStatusDelivered, "p1", 1),
		newOrden("cancelada", entity.OrderStatusCancelled, "p1", 1),
	)
	uc := orders.NewStatusGuardUseCase(ordenes, productos, testLogger())

	for _, id := range []string{"entregada", "cancelada"} {
		for _, destino := range []entity.OrderStatus{
			entity.OrderStatusPending, entity.OrderStatusConfirmed,
			entity.OrderStatusDelivered, entity.OrderStatusCancelled,
		} {
			_, err := uc.ChangeStatus(context.Background(), id, destino)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition,
				"%s → %s debe rechazarse", id, destino)
		}
	}
	assert.Equal(t, int64(5), productos.stockOf("p1"))
}

func TestChangeStatus_EstadoDesconocido(t *testing.T) {
	productos := newFakeProductRepo(newProducto("p1", 100, 5))
	ordenes := newFakeOrderRepo(newOrden("o1", entity.OrderStatusPending, "p1", 1))
	uc := orders.NewStatusGuardUseCase(ordenes, productos, testLogger())

	_, err := uc.ChangeStatus(context.Background(), "o1", entity.OrderStatus("shipped"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChangeStatus_OrdenNoExiste(t *testing.T) {
	productos := newFakeProductRepo()
	ordenes := newFakeOrderRepo()
	uc := orders.NewStatusGuardUseCase(ordenes, productos, testLogger())

	_, err := uc.ChangeStatus(context.Background(), "no-existe", entity.OrderStatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_PendingDevuelveStock(t *testing.T) {
	productos := newFakeProductRepo(newProducto("p1", 100, 3))
	ordenes := newFakeOrderRepo(newOrden("o1", entity.OrderStatusPending, "p1", 2))
	uc := orders.NewStatusGuardUseCase(ordenes, productos, testLogger())

	require.NoError(t, uc.Delete(context.Background(), "o1"))
	assert.Equal(t, int64(5), productos.stockOf("p1"), "borrar una orden pending devuelve su stock")
	assert.Equal(t, 0, ordenes.count())
}

func TestDelete_ConfirmadaYEntregadaSeRechazan(t *testing.T) {
	productos := newFakeProductRepo(newProducto("p1", 100, 3))
	ordenes := newFakeOrderRepo(
		newOrden("confirmada", entity.OrderStatusConfirmed, "p1", 2),
		newOrden("entregada", entity.OrderStatusDelivered, "p1", 2),
	)
	uc := orders.NewStatusGuardUseCase(ordenes, productos, testLogger())

	for _, id := range []string{"confirmada", "entregada"} {
		err := uc.Delete(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "borrar %s debe rechazarse", id)
	}
	assert.Equal(t, int64(3), productos.stockOf("p1"), "el stock queda intacto")
	assert.Equal(t, 2, ordenes.count(), "las órdenes siguen existiendo")
}

// Una orden cancelada ya devolvió su stock; borrarla no lo acredita otra vez.
func TestDelete_CanceladaNoDevuelveStockOtraVez(t *testing.T) {
	productos := newFakeProductRepo(newProducto("p1", 100, 5))
	ordenes := newFakeOrderRepo(newOrden("o1", entity.OrderStatusCancelled, "p1", 2))
	uc := orders.NewStatusGuardUseCase(ordenes, productos, testLogger())

	require.NoError(t, uc.Delete(context.Background(), "o1"))
	assert.Equal(t, int64(5), productos.stockOf("p1"), "sin compensación adicional")
	assert.Equal(t, 0, productos.incrementCalls)
	assert.Equal(t, 0, ordenes.count())
}

// lecturaDesfasadaOrderRepo sirve una copia vieja de la orden en la primera
// lectura, simulando otra petición que cambia el estado entre el GetByID del
// delete y su UPDATE condicional.
type lecturaDesfasadaOrderRepo struct {
	*fakeOrderRepo
	vieja *entity.Order
	usada bool
}

func (f *lecturaDesfasadaOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	if !f.usada && f.vieja != nil && f.vieja.ID == id {
		f.usada = true
		copia := *f.vieja
		return &copia, nil
	}
	return f.fakeOrderRepo.GetByID(ctx, id)
}

// Carrera delete vs confirm: el delete lee la orden en pending, pero otra
// petición la confirma antes del UPDATE condicional. El delete pierde el
// update, relee el estado real y debe rechazarse sin borrar la venta.
func TestDelete_ConfirmadaDuranteElDelete_SeRechaza(t *testing.T) {
	productos := newFakeProductRepo(newProducto("p1", 100, 3))
	ordenes := &lecturaDesfasadaOrderRepo{
		fakeOrderRepo: newFakeOrderRepo(newOrden("o1", entity.OrderStatusConfirmed, "p1", 2)),
		vieja:         newOrden("o1", entity.OrderStatusPending, "p1", 2),
	}
	uc := orders.NewStatusGuardUseCase(ordenes, productos, testLogger())

	err := uc.Delete(context.Background(), "o1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"una orden confirmada durante el delete no debe borrarse")
	assert.Equal(t, 1, ordenes.count(), "la orden confirmada sigue existiendo")
	assert.Equal(t, entity.OrderStatusConfirmed, ordenes.statusOf("o1"))
	assert.Equal(t, int64(3), productos.stockOf("p1"), "el stock queda intacto")
	assert.Equal(t, 0, productos.incrementCalls)
}

// Carrera delete vs cancel: la cancelación concurrente gana el UPDATE
// condicional y acredita el stock; el delete relee, ve cancelled y borra
// sin una segunda compensación.
func TestDelete_CanceladaDuranteElDelete_BorraSinDobleCredito(t *testing.T) {
	productos := newFakeProductRepo(newProducto("p1", 100, 5))
	ordenes := &lecturaDesfasadaOrderRepo{
		fakeOrderRepo: newFakeOrderRepo(newOrden("o1", entity.OrderStatusCancelled, "p1", 2)),
		vieja:         newOrden("o1", entity.OrderStatusPending, "p1", 2),
	}
	uc := orders.NewStatusGuardUseCase(ordenes, productos, testLogger())

	require.NoError(t, uc.Delete(context.Background(), "o1"))
	assert.Equal(t, 0, ordenes.count(), "la orden cancelada sí se borra")
	assert.Equal(t, int64(5), productos.stockOf("p1"), "el stock no se acredita otra vez")
	assert.Equal(t, 0, productos.incrementCalls)
}

func TestDelete_OrdenNoExiste(t *testing.T) {
	uc := orders.NewStatusGuardUseCase(newFakeOrderRepo(), newFakeProductRepo(), testLogger())
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
