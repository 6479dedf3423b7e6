package orders_test

import (
	"context"
	"errors"
	"sync"

	"github.com/dstore/dsms-api/internal/domain/entity"
	"github.com/dstore/dsms-api/internal/domain/repository"
	"github.com/dstore/dsms-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia.
//
// fakeProductRepo serializa las mutaciones de stock con un mutex, igual que la
// DB garantiza la atomicidad de un UPDATE condicional sobre una fila: el par
// check-and-decrement ocurre como operación indivisible.
// ──────────────────────────────────────────────────────────────────────────────

var errStoreDown = errors.New("store no disponible")

type fakeProductRepo struct {
	mu            sync.Mutex
	products      map[string]*entity.Product
	failIncrement bool

	incrementCalls int
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) DecrementStock(_ context.Context, id string, qty int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (f *fakeProductRepo) IncrementStock(_ context.Context, id string, qty int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.incrementCalls++
	if f.failIncrement {
		return errStoreDown
	}
	if p, ok := f.products[id]; ok {
		p.Stock += qty
	}
	return nil
}

func (f *fakeProductRepo) stockOf(id string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.products[id].Stock
}

type fakeOrderRepo struct {
	mu         sync.Mutex
	orders     map[string]*entity.Order
	failCreate bool
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	m := make(map[string]*entity.Order, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return &fakeOrderRepo{orders: m}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return errStoreDown
	}
	copia := *o
	f.orders[o.ID] = &copia
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	copia := *o
	return &copia, nil
}

func (f *fakeOrderRepo) ListByCustomer(_ context.Context, customerID string, _, _ int) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			copia := *o
			list = append(list, &copia)
		}
	}
	return list, nil
}

func (f *fakeOrderRepo) ListAll(_ context.Context, _, _ int) ([]*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []*entity.Order
	for _, o := range f.orders {
		copia := *o
		list = append(list, &copia)
	}
	return list, nil
}

// UpdateStatus replica el UPDATE condicional: solo muta si el estado actual es `from`.
func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, from, to entity.OrderStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

func (f *fakeOrderRepo) statusOf(id string) entity.OrderStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orders[id].Status
}

// testLogger logger silencioso para los tests (solo nivel error, salida JSON).
func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}
