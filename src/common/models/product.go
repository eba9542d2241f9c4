package models

// DimProduct is one row of the dim_product dimension table.
type DimProduct struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
}
