package models

// DimStore is one row of the dim_store dimension table.
type DimStore struct {
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`
	City      string `json:"city"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	IsActive  bool   `json:"is_active"`
}
