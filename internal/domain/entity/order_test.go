package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/dstore/dsms-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la tabla de transiciones de OrderStatus.
//
// La máquina de estados es la fuente de verdad del ciclo de vida de una orden:
//
//	pending   → confirmed | cancelled
//	confirmed → delivered
//	delivered → (terminal)
//	cancelled → (terminal)
//
// Regla de negocio: una orden confirmada NO se puede cancelar.
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderStatus_TransicionesPermitidas(t *testing.T) {
	assert.True(t, entity.OrderStatusPending.CanTransitionTo(entity.OrderStatusConfirmed),
		"pending → confirmed debe estar permitido")
	assert.True(t, entity.OrderStatusPending.CanTransitionTo(entity.OrderStatusCancelled),
		"pending → cancelled debe estar permitido")
	assert.True(t, entity.OrderStatusConfirmed.CanTransitionTo(entity.OrderStatusDelivered),
		"confirmed → delivered debe estar permitido")
}

func TestOrderStatus_ConfirmadaNoSePuedeCancelar(t *testing.T) {
	assert.False(t, entity.OrderStatusConfirmed.CanTransitionTo(entity.OrderStatusCancelled),
		"confirmed → cancelled está prohibido: una orden confirmada no se cancela")
}

func TestOrderStatus_EstadosTerminales(t *testing.T) {
	terminales := []entity.OrderStatus{entity.OrderStatusDelivered, entity.OrderStatusCancelled}
	destinos := []entity.OrderStatus{
		entity.OrderStatusPending, entity.OrderStatusConfirmed,
		entity.OrderStatusDelivered, entity.OrderStatusCancelled,
	}
	for _, desde := range terminales {
		assert.True(t, desde.IsTerminal(), "%s debe ser terminal", desde)
		for _, hacia := range destinos {
			assert.False(t, desde.CanTransitionTo(hacia),
				"%s → %s debe estar prohibido (estado terminal)", desde, hacia)
		}
	}
}

func TestOrderStatus_SinAutoTransiciones(t *testing.T) {
	estados := []entity.OrderStatus{
		entity.OrderStatusPending, entity.OrderStatusConfirmed,
		entity.OrderStatusDelivered, entity.OrderStatusCancelled,
	}
	for _, s := range estados {
		assert.False(t, s.CanTransitionTo(s), "%s → %s no es una transición", s, s)
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, entity.OrderStatusPending.IsValid())
	assert.True(t, entity.OrderStatusCancelled.IsValid())
	assert.False(t, entity.OrderStatus("shipped").IsValid(),
		"un estado desconocido no debe ser válido")
	assert.False(t, entity.OrderStatus("").IsValid())
}

func TestOrder_CanBeDeleted(t *testing.T) {
	casos := []struct {
		status   entity.OrderStatus
		esperado bool
	}{
		{entity.OrderStatusPending, true},
		{entity.OrderStatusCancelled, true},
		{entity.OrderStatusConfirmed, false},
		{entity.OrderStatusDelivered, false},
	}
	for _, c := range casos {
		o := &entity.Order{Status: c.status}
		assert.Equal(t, c.esperado, o.CanBeDeleted(),
			"CanBeDeleted con status %s", c.status)
	}
}

// Una orden cancelada ya devolvió su stock; borrarla no debe devolverlo otra vez.
func TestOrder_NeedsStockRestore(t *testing.T) {
	pendiente := &entity.Order{Status: entity.OrderStatusPending, Quantity: 2, Price: decimal.NewFromInt(10)}
	cancelada := &entity.Order{Status: entity.OrderStatusCancelled, Quantity: 2, Price: decimal.NewFromInt(10)}
	entregada := &entity.Order{Status: entity.OrderStatusDelivered, Quantity: 2, Price: decimal.NewFromInt(10)}

	assert.True(t, pendiente.NeedsStockRestore(), "borrar una orden pending devuelve stock")
	assert.False(t, cancelada.NeedsStockRestore(), "una orden cancelada ya devolvió su stock")
	assert.False(t, entregada.NeedsStockRestore(), "una orden delivered no se borra ni devuelve stock")
}
