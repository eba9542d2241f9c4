package business

import "github.com/pkg/errors"

// CatalogProduct is one sellable entry of the fixed demo catalog.
type CatalogProduct struct {
	ProductID string
	Price     float64
}

// Fixed mapping of 10 store IDs to 10 cities.
var storeCityMapping = map[string]string{
	"295": "New York",
	"296": "Los Angeles",
	"298": "Chicago",
	"299": "Houston",
	"297": "Miami",
	"300": "San Francisco",
	"301": "Seattle",
	"302": "Boston",
	"303": "Denver",
	"304": "Atlanta",
}

// storeIDs keeps a stable order so seeded runs stay reproducible.
var storeIDs = []string{
	"295", "296", "298", "299", "297", "300", "301", "302", "303", "304",
}

var products = []CatalogProduct{
	{ProductID: "P001", Price: 52.99},
	{ProductID: "P002", Price: 63.99},
	{ProductID: "P003", Price: 72.99},
	{ProductID: "P004", Price: 83.99},
	{ProductID: "P005", Price: 92.99},
	{ProductID: "P006", Price: 104.99},
	{ProductID: "P007", Price: 114.99},
	{ProductID: "P008", Price: 116.99},
	{ProductID: "P009", Price: 124.99},
}

var paymentMethods = []string{"Credit Card", "Debit Card", "Cash", "Mobile Payment"}

// CityForStore resolves the 1:1 store to city mapping. A miss means the
// catalog data is malformed and the caller must abort.
func CityForStore(storeID string) (string, error) {
	city, ok := storeCityMapping[storeID]
	if !ok {
		return "", errors.Errorf("store id %s missing from city mapping", storeID)
	}
	return city, nil
}

// StoreIDs returns the store codes transactions are drawn from.
func StoreIDs() []string {
	ids := make([]string, len(storeIDs))
	copy(ids, storeIDs)
	return ids
}

// Catalog returns a copy of the fixed product catalog.
func Catalog() []CatalogProduct {
	c := make([]CatalogProduct, len(products))
	copy(c, products)
	return c
}
