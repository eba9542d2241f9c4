package business_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azhagan2/retail-pos-pipeline/src/common/warehouse"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/business"
)

var summaryColumns = []string{
	"store_id", "city", "transactions", "net_sales_amount",
	"total_units", "refunds", "cancels", "window_start", "window_end",
}

func newServiceWithMock(t *testing.T) (business.DashboardService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return business.NewDashboardService(warehouse.NewClient(db)), mock
}

func TestSalesSummaryScansRows(t *testing.T) {
	service, mock := newServiceWithMock(t)

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(15 * time.Minute)

	mock.ExpectQuery("FROM retail_pos_processed").
		WithArgs("%york%").
		WillReturnRows(sqlmock.NewRows(summaryColumns).
			AddRow("295", "New York", 12, 843.50, 31, 2, 1, start, end))

	rows, err := service.SalesSummary(context.Background(), business.SalesFilter{City: "york"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "295", row.StoreID)
	assert.Equal(t, "New York", row.City)
	assert.EqualValues(t, 12, row.Transactions)
	assert.InDelta(t, 843.50, row.NetSalesAmount, 0.001)
	assert.EqualValues(t, 31, row.TotalUnits)
	assert.Equal(t, start, row.WindowStart)
	assert.Equal(t, end, row.WindowEnd)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefundRatesRankWorstFirst(t *testing.T) {
	service, mock := newServiceWithMock(t)

	start := time.Now().UTC()
	mock.ExpectQuery("FROM retail_pos_processed").
		WillReturnRows(sqlmock.NewRows(summaryColumns).
			AddRow("295", "New York", 10, 100.0, 20, 1, 0, start, start).
			AddRow("296", "Los Angeles", 10, 100.0, 20, 5, 0, start, start).
			AddRow("297", "Miami", 10, 100.0, 20, 3, 0, start, start))

	rates, err := service.RefundRates(context.Background(), business.SalesFilter{})
	require.NoError(t, err)
	require.Len(t, rates, 3)

	assert.Equal(t, "296", rates[0].StoreID)
	assert.InDelta(t, 50.0, rates[0].Rate, 0.001)
	assert.Equal(t, "297", rates[1].StoreID)
	assert.Equal(t, "295", rates[2].StoreID)
}

func TestCancelRatesUseCancelCounts(t *testing.T) {
	service, mock := newServiceWithMock(t)

	start := time.Now().UTC()
	mock.ExpectQuery("FROM retail_pos_processed").
		WillReturnRows(sqlmock.NewRows(summaryColumns).
			AddRow("295", "New York", 4, 100.0, 8, 0, 1, start, start))

	rates, err := service.CancelRates(context.Background(), business.SalesFilter{})
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.InDelta(t, 25.0, rates[0].Rate, 0.001)
}

func TestStoreSalesScansJoinRollup(t *testing.T) {
	service, mock := newServiceWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN retail_pos_processed")).
		WillReturnRows(sqlmock.NewRows(
			[]string{"region", "city", "store_name", "is_active", "total_sales", "num_transactions"}).
			AddRow("East", "New York", "Store_295", true, 1290.45, 17))

	sales, err := service.StoreSales(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "East", sales[0].Region)
	assert.Equal(t, "Store_295", sales[0].StoreName)
	assert.True(t, sales[0].IsActive)
	assert.EqualValues(t, 17, sales[0].NumTransactions)
}

func TestReorderAlertsFilterLowStock(t *testing.T) {
	service, mock := newServiceWithMock(t)

	updated := time.Now().UTC()
	mock.ExpectQuery("FROM inventory").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "image", "item_name", "price", "units_sold", "units_left", "cost_price", "reorder_point", "description", "last_updated"}).
			AddRow(1, "mug.png", "Coffee Mug", 9.99, 120, 4, 4.50, 10, "12oz ceramic", updated).
			AddRow(2, "lamp.png", "Desk Lamp", 24.99, 40, 50, 12.00, 10, "LED", updated))

	low, err := service.ReorderAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Coffee Mug", low[0].ItemName)
}

func TestSalesSummaryPropagatesQueryFailure(t *testing.T) {
	service, mock := newServiceWithMock(t)

	mock.ExpectQuery("FROM retail_pos_processed").
		WillReturnError(assert.AnError)

	_, err := service.SalesSummary(context.Background(), business.SalesFilter{})
	assert.Error(t, err)
}
