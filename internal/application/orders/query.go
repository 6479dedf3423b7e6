package orders

import (
	"context"

	"github.com/dstore/dsms-api/internal/application/dto"
	"github.com/dstore/dsms-api/internal/domain/entity"
	"github.com/dstore/dsms-api/internal/domain/repository"
)

// QueryUseCase lecturas de órdenes: las propias del cliente y el listado
// completo para la vista de administración.
type QueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(orderRepo repository.OrderRepository) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo}
}

// GetByID devuelve una orden o nil si no existe.
func (uc *QueryUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// ListByCustomer lista las órdenes de un cliente con paginación.
func (uc *QueryUseCase) ListByCustomer(ctx context.Context, customerID string, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(list, limit, offset), nil
}

// ListAll lista todas las órdenes (vista admin) con paginación.
func (uc *QueryUseCase) ListAll(ctx context.Context, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(list, limit, offset), nil
}

func toOrderListResponse(list []*entity.Order, limit, offset int) *dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *ToOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

// ToOrderResponse convierte la entidad en DTO de salida.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		Price:      o.Price,
		Total:      o.Total,
		Status:     string(o.Status),
		OrderDate:  o.OrderDate,
	}
}
