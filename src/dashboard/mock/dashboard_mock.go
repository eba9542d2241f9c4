package mock

import (
	"context"
	"sync"

	"github.com/azhagan2/retail-pos-pipeline/src/common/models"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/business"
)

// DashboardServiceMock is a hand-rolled stub of business.DashboardService
// for handler and refresher tests.
type DashboardServiceMock struct {
	mu sync.Mutex

	SalesRows []models.SalesSummaryRow
	Rates     []models.RateRow
	StoreRows []models.StoreSalesRow
	Items     []models.InventoryItem
	Err       error

	SalesCalls int
	LastFilter business.SalesFilter
}

func (m *DashboardServiceMock) SalesSummary(ctx context.Context, filter business.SalesFilter) ([]models.SalesSummaryRow, error) {
	m.mu.Lock()
	m.SalesCalls++
	m.LastFilter = filter
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	return m.SalesRows, nil
}

func (m *DashboardServiceMock) RefundRates(ctx context.Context, filter business.SalesFilter) ([]models.RateRow, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Rates, nil
}

func (m *DashboardServiceMock) CancelRates(ctx context.Context, filter business.SalesFilter) ([]models.RateRow, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Rates, nil
}

func (m *DashboardServiceMock) StoreSales(ctx context.Context) ([]models.StoreSalesRow, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.StoreRows, nil
}

func (m *DashboardServiceMock) Inventory(ctx context.Context) ([]models.InventoryItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Items, nil
}

func (m *DashboardServiceMock) ReorderAlerts(ctx context.Context) ([]models.InventoryItem, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	var low []models.InventoryItem
	for _, it := range m.Items {
		if it.UnitsLeft <= it.ReorderPoint {
			low = append(low, it)
		}
	}
	return low, nil
}

// Calls returns how many times SalesSummary ran.
func (m *DashboardServiceMock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SalesCalls
}
