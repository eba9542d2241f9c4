package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azhagan2/retail-pos-pipeline/src/common/models"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/business"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/config"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/internal/server"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/mock"
)

func doRequest(t *testing.T, service business.DashboardService, path string) *httptest.ResponseRecorder {
	t.Helper()

	conf := &config.Config{Port: "0", RefreshSeconds: 120}
	srv := server.InitServer(conf, service)

	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, &mock.DashboardServiceMock{}, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSalesPassesQueryFilters(t *testing.T) {
	service := &mock.DashboardServiceMock{
		SalesRows: []models.SalesSummaryRow{{StoreID: "295", City: "New York", Transactions: 3}},
	}

	rec := doRequest(t, service, "/api/sales?city=york&store=295")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, business.SalesFilter{City: "york", StoreID: "295"}, service.LastFilter)

	var rows []models.SalesSummaryRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "295", rows[0].StoreID)
}

func TestSalesSurfacesQueryFailureAsBadGateway(t *testing.T) {
	service := &mock.DashboardServiceMock{Err: assert.AnError}

	rec := doRequest(t, service, "/api/sales")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestReorderAlertsReturnLowStockOnly(t *testing.T) {
	service := &mock.DashboardServiceMock{
		Items: []models.InventoryItem{
			{ItemName: "Coffee Mug", UnitsLeft: 4, ReorderPoint: 10},
			{ItemName: "Desk Lamp", UnitsLeft: 50, ReorderPoint: 10},
		},
	}

	rec := doRequest(t, service, "/api/inventory/reorder")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.InventoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Coffee Mug", items[0].ItemName)
}

func TestSnapshotEndpointServesCachedView(t *testing.T) {
	rec := doRequest(t, &mock.DashboardServiceMock{}, "/api/snapshot")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "refreshed_at")
}

func TestMetricsEndpointIsExposed(t *testing.T) {
	rec := doRequest(t, &mock.DashboardServiceMock{}, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
}
