package models

import "time"

// SalesSummaryRow is one per-(store, city) row of the windowed sales
// aggregation over retail_pos_processed.
type SalesSummaryRow struct {
	StoreID        string    `json:"store_id"`
	City           string    `json:"city"`
	Transactions   int64     `json:"transactions"`
	NetSalesAmount float64   `json:"net_sales_amount"`
	TotalUnits     int64     `json:"total_units"`
	Refunds        int64     `json:"refunds"`
	Cancels        int64     `json:"cancels"`
	WindowStart    time.Time `json:"window_start"`
	WindowEnd      time.Time `json:"window_end"`
}

// RateRow ranks stores by refund or cancellation rate (percentage of
// transactions).
type RateRow struct {
	StoreID      string  `json:"store_id"`
	Count        int64   `json:"count"`
	Transactions int64   `json:"transactions"`
	Rate         float64 `json:"rate"`
}

// StoreSalesRow is one row of the dim_store x fact rollup, canceled
// transactions excluded.
type StoreSalesRow struct {
	Region          string  `json:"region"`
	City            string  `json:"city"`
	StoreName       string  `json:"store_name"`
	IsActive        bool    `json:"is_active"`
	TotalSales      float64 `json:"total_sales"`
	NumTransactions int64   `json:"num_transactions"`
}

// InventoryItem is one row of the silver-layer inventory table.
type InventoryItem struct {
	ID           int64     `json:"id"`
	Image        string    `json:"image"`
	ItemName     string    `json:"item_name"`
	Price        float64   `json:"price"`
	UnitsSold    int64     `json:"units_sold"`
	UnitsLeft    int64     `json:"units_left"`
	CostPrice    float64   `json:"cost_price"`
	ReorderPoint int64     `json:"reorder_point"`
	Description  string    `json:"description"`
	LastUpdated  time.Time `json:"last_updated"`
}
