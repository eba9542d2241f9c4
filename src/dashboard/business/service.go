package business

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/azhagan2/retail-pos-pipeline/src/common/models"
	"github.com/azhagan2/retail-pos-pipeline/src/common/warehouse"
)

type dashboardService struct {
	client *warehouse.Client
}

func NewDashboardService(client *warehouse.Client) DashboardService {
	return &dashboardService{client: client}
}

func (ds *dashboardService) SalesSummary(ctx context.Context, filter SalesFilter) ([]models.SalesSummaryRow, error) {
	query, args := BuildSalesSummaryQuery(filter)

	rows, err := ds.client.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query sales summary")
	}
	defer rows.Close()

	var summary []models.SalesSummaryRow
	for rows.Next() {
		var r models.SalesSummaryRow
		if err := rows.Scan(
			&r.StoreID,
			&r.City,
			&r.Transactions,
			&r.NetSalesAmount,
			&r.TotalUnits,
			&r.Refunds,
			&r.Cancels,
			&r.WindowStart,
			&r.WindowEnd,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan sales summary row")
		}
		summary = append(summary, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read sales summary rows")
	}

	return summary, nil
}

func (ds *dashboardService) RefundRates(ctx context.Context, filter SalesFilter) ([]models.RateRow, error) {
	summary, err := ds.SalesSummary(ctx, filter)
	if err != nil {
		return nil, err
	}
	return rateRows(summary, func(r models.SalesSummaryRow) int64 { return r.Refunds }), nil
}

func (ds *dashboardService) CancelRates(ctx context.Context, filter SalesFilter) ([]models.RateRow, error) {
	summary, err := ds.SalesSummary(ctx, filter)
	if err != nil {
		return nil, err
	}
	return rateRows(summary, func(r models.SalesSummaryRow) int64 { return r.Cancels }), nil
}

// rateRows converts absolute counts to percentages of transactions and
// orders stores worst-first.
func rateRows(summary []models.SalesSummaryRow, count func(models.SalesSummaryRow) int64) []models.RateRow {
	rates := make([]models.RateRow, 0, len(summary))
	for _, row := range summary {
		rate := 0.0
		if row.Transactions > 0 {
			rate = float64(count(row)) / float64(row.Transactions) * 100
		}
		rates = append(rates, models.RateRow{
			StoreID:      row.StoreID,
			Count:        count(row),
			Transactions: row.Transactions,
			Rate:         rate,
		})
	}

	sort.Slice(rates, func(i, j int) bool { return rates[i].Rate > rates[j].Rate })
	return rates
}

func (ds *dashboardService) StoreSales(ctx context.Context) ([]models.StoreSalesRow, error) {
	rows, err := ds.client.QueryContext(ctx, StoreSalesQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query store sales")
	}
	defer rows.Close()

	var sales []models.StoreSalesRow
	for rows.Next() {
		var r models.StoreSalesRow
		if err := rows.Scan(
			&r.Region,
			&r.City,
			&r.StoreName,
			&r.IsActive,
			&r.TotalSales,
			&r.NumTransactions,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan store sales row")
		}
		sales = append(sales, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read store sales rows")
	}

	return sales, nil
}

func (ds *dashboardService) Inventory(ctx context.Context) ([]models.InventoryItem, error) {
	rows, err := ds.client.QueryContext(ctx, InventoryQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query inventory")
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var it models.InventoryItem
		if err := rows.Scan(
			&it.ID,
			&it.Image,
			&it.ItemName,
			&it.Price,
			&it.UnitsSold,
			&it.UnitsLeft,
			&it.CostPrice,
			&it.ReorderPoint,
			&it.Description,
			&it.LastUpdated,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan inventory row")
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read inventory rows")
	}

	return items, nil
}

func (ds *dashboardService) ReorderAlerts(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := ds.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	var low []models.InventoryItem
	for _, it := range items {
		if it.UnitsLeft <= it.ReorderPoint {
			low = append(low, it)
		}
	}
	return low, nil
}
