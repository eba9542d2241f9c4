package business

import (
	"context"

	"github.com/azhagan2/retail-pos-pipeline/src/common/models"
)

// DashboardService exposes the warehouse aggregations the dashboard renders.
type DashboardService interface {
	// SalesSummary runs the windowed per-(store, city) aggregation.
	SalesSummary(ctx context.Context, filter SalesFilter) ([]models.SalesSummaryRow, error)

	// RefundRates ranks stores by refund percentage, highest first.
	RefundRates(ctx context.Context, filter SalesFilter) ([]models.RateRow, error)

	// CancelRates ranks stores by cancellation percentage, highest first.
	CancelRates(ctx context.Context, filter SalesFilter) ([]models.RateRow, error)

	// StoreSales rolls up non-canceled sales per region/city/store.
	StoreSales(ctx context.Context) ([]models.StoreSalesRow, error)

	// Inventory returns the full inventory table.
	Inventory(ctx context.Context) ([]models.InventoryItem, error)

	// ReorderAlerts returns inventory items at or below their reorder point.
	ReorderAlerts(ctx context.Context) ([]models.InventoryItem, error)
}
