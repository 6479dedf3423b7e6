// Package analytics contiene el caso de uso del panel de administración.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/dstore/dsms-api/internal/application/dto"
	"github.com/dstore/dsms-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen general del almacén.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// lowStockThreshold productos con stock por debajo de este valor entran en
// la alerta de reposición del dashboard.
const lowStockThreshold = 5

// GetSummary construye el DashboardSummaryDTO.
//
// Ocho lecturas en paralelo:
//  1. CountProducts        → TotalProducts
//  2. TotalStock           → TotalStock
//  3. CountOrders          → TotalOrders
//  4. CountOrdersBetween   → OrdersToday (rango semiabierto [hoy 00:00, mañana 00:00))
//  5. TotalRevenue         → TotalRevenue
//  6. CountOutOfStock      → OutOfStock
//  7. CountLowStock        → LowStock
//  8. TopSellingProduct    → TopProduct
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Límite exclusivo: el repositorio compara con order_date < fin.
	todayEnd := todayStart.Add(24 * time.Hour)

	type countResult struct {
		n   int64
		err error
	}
	type revenueResult struct {
		total decimal.Decimal
		err   error
	}
	type topResult struct {
		top *repository.ProductSales
		err error
	}

	productsCh := make(chan countResult, 1)
	stockCh := make(chan countResult, 1)
	ordersCh := make(chan countResult, 1)
	todayCh := make(chan countResult, 1)
	revenueCh := make(chan revenueResult, 1)
	outOfStockCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.TotalStock(ctx)
		stockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOrders(ctx)
		ordersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOrdersBetween(ctx, todayStart, todayEnd)
		todayCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.TotalRevenue(ctx)
		revenueCh <- revenueResult{total, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOutOfStock(ctx)
		outOfStockCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountLowStock(ctx, lowStockThreshold)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		top, err := uc.analyticsRepo.TopSellingProduct(ctx)
		topCh <- topResult{top, err}
	}()

	products := <-productsCh
	stock := <-stockCh
	orders := <-ordersCh
	today := <-todayCh
	revenue := <-revenueCh
	outOfStock := <-outOfStockCh
	lowStock := <-lowStockCh
	top := <-topCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard productos: %w", products.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard stock: %w", stock.err)
	}
	if orders.err != nil {
		return nil, fmt.Errorf("dashboard órdenes: %w", orders.err)
	}
	if today.err != nil {
		return nil, fmt.Errorf("dashboard órdenes de hoy: %w", today.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard ingresos: %w", revenue.err)
	}
	if outOfStock.err != nil {
		return nil, fmt.Errorf("dashboard productos agotados: %w", outOfStock.err)
	}
	if lowStock.err != nil {
		return nil, fmt.Errorf("dashboard stock bajo: %w", lowStock.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard producto más vendido: %w", top.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalProducts: products.n,
		TotalStock:    stock.n,
		TotalOrders:   orders.n,
		OrdersToday:   today.n,
		TotalRevenue:  revenue.total,
		OutOfStock:    outOfStock.n,
		LowStock:      lowStock.n,
	}
	if top.top != nil {
		summary.TopProduct = &dto.TopProductDTO{
			ProductID: top.top.ProductID,
			Name:      top.top.Name,
			UnitsSold: top.top.UnitsSold,
		}
	}
	return summary, nil
}
