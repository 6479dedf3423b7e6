package orders

import (
	"context"

	"github.com/dstore/dsms-api/internal/domain"
	"github.com/dstore/dsms-api/internal/domain/entity"
	"github.com/dstore/dsms-api/internal/domain/repository"
	"github.com/dstore/dsms-api/pkg/logger"
)

// StatusGuardUseCase aplica la máquina de estados de Order y las acciones
// compensatorias de stock en cancelación y eliminación.
type StatusGuardUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewStatusGuardUseCase construye el caso de uso.
func NewStatusGuardUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	log *logger.Logger,
) *StatusGuardUseCase {
	return &StatusGuardUseCase{orderRepo: orderRepo, productRepo: productRepo, log: log}
}

// ChangeStatus intenta la transición status-actual → next.
//
// Una transición ilegal devuelve ErrInvalidTransition sin tocar nada. La
// transición a cancelled primero gana el UPDATE condicional de estado y solo
// entonces acredita el stock: un segundo intento de cancelar pierde el update
// condicional y falla antes de que la compensación dispare, así el stock
// nunca se acredita dos veces.
func (uc *StatusGuardUseCase) ChangeStatus(ctx context.Context, orderID string, next entity.OrderStatus) (*entity.Order, error) {
	if !next.IsValid() {
		return nil, domain.ErrInvalidInput
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}

	// UPDATE condicional sobre el estado actual: si otra petición concurrente
	// ya movió la orden, esta pierde y no ejecuta ninguna compensación.
	ok, err := uc.orderRepo.UpdateStatus(ctx, orderID, order.Status, next)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	if next == entity.OrderStatusCancelled {
		if err := uc.productRepo.IncrementStock(ctx, order.ProductID, order.Quantity); err != nil {
			// La orden quedó cancelada pero el stock no se acreditó:
			// visibilidad de operador, registro distinto de un fallo ordinario.
			uc.log.Error().
				Err(err).
				Str("order_id", orderID).
				Str("product_id", order.ProductID).
				Int64("quantity", order.Quantity).
				Msg("fallo la compensación de stock al cancelar la orden: stock sub-acreditado, requiere intervención manual")
			return nil, err
		}
	}

	order.Status = next
	return order, nil
}

// Delete elimina una orden devolviendo antes su stock cuando corresponde.
//
// Las órdenes confirmed/delivered no se eliminan (ErrInvalidTransition). Una
// orden cancelled ya devolvió su stock al cancelarse, así que se borra sin
// compensación adicional.
func (uc *StatusGuardUseCase) Delete(ctx context.Context, orderID string) error {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}

	if !order.CanBeDeleted() {
		return domain.ErrInvalidTransition
	}

	if order.NeedsStockRestore() {
		// Se marca cancelled antes de borrar: el UPDATE condicional garantiza
		// que la restauración de stock ocurre exactamente una vez aunque
		// lleguen un delete y un cancel concurrentes sobre la misma orden.
		ok, err := uc.orderRepo.UpdateStatus(ctx, orderID, order.Status, entity.OrderStatusCancelled)
		if err != nil {
			return err
		}
		if !ok {
			// Otra petición movió la orden después de la lectura: releer y
			// decidir con el estado real. Si quedó confirmed/delivered ya no
			// se puede borrar; si quedó cancelled, esa petición ya acreditó
			// el stock y aquí solo resta borrar.
			current, err := uc.orderRepo.GetByID(ctx, orderID)
			if err != nil {
				return err
			}
			if current == nil {
				return domain.ErrNotFound
			}
			if !current.CanBeDeleted() {
				return domain.ErrInvalidTransition
			}
		} else {
			if err := uc.productRepo.IncrementStock(ctx, order.ProductID, order.Quantity); err != nil {
				uc.log.Error().
					Err(err).
					Str("order_id", orderID).
					Str("product_id", order.ProductID).
					Int64("quantity", order.Quantity).
					Msg("fallo la compensación de stock al eliminar la orden: stock sub-acreditado, requiere intervención manual")
				return err
			}
		}
	}

	return uc.orderRepo.Delete(ctx, orderID)
}
