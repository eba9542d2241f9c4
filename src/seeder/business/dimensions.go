package business

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/azhagan2/retail-pos-pipeline/src/common/models"
)

const (
	StoreCount   = 10
	ProductCount = 9

	storeIDBase  = 295
	defaultPrice = 99.99
)

var seedCities = []string{"New York", "Los Angeles", "Chicago", "Houston", "Miami"}

var seedRegions = []string{"East", "West", "Midwest", "South"}

// categoryNames keeps a stable draw order over the nested enumeration.
var categoryNames = []string{"Electronics", "Home", "Books"}

var categories = map[string][]string{
	"Electronics": {"Phones", "Laptops", "Tablets", "Accessories"},
	"Home":        {"Furniture", "Appliances", "Decor"},
	"Books":       {"Fiction", "Non-fiction", "Comics", "Educational"},
}

var brands = []string{"Sony", "Nike", "Apple", "Samsung", "Adidas", "Ikea", "Hasbro", "Penguin"}

var fixedPrices = map[string]float64{
	"P001": 49.99,
	"P002": 59.99,
	"P003": 69.99,
	"P004": 79.99,
	"P005": 89.99,
	"P006": 99.99,
	"P007": 109.99,
	"P008": 119.99,
	"P009": 129.99,
}

// Seeder generates the synthetic dimension rows loaded into the warehouse.
type Seeder struct {
	rng *rand.Rand
}

func NewSeeder(rng *rand.Rand) *Seeder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Seeder{rng: rng}
}

// GenerateStores produces the 10 dim_store rows with sequential ids.
func (s *Seeder) GenerateStores() []models.DimStore {
	stores := make([]models.DimStore, 0, StoreCount)
	for i := 0; i < StoreCount; i++ {
		id := storeIDBase + i
		stores = append(stores, models.DimStore{
			StoreID:   fmt.Sprintf("%d", id),
			StoreName: fmt.Sprintf("Store_%d", id),
			City:      seedCities[s.rng.Intn(len(seedCities))],
			Region:    seedRegions[s.rng.Intn(len(seedRegions))],
			Country:   "USA",
			IsActive:  s.rng.Intn(3) < 2,
		})
	}
	return stores
}

// GenerateProducts produces the 9 dim_product rows. Prices come from the
// fixed table keyed by product id, with a fallback for out-of-range ids.
func (s *Seeder) GenerateProducts() []models.DimProduct {
	dimProducts := make([]models.DimProduct, 0, ProductCount)
	for i := 1; i <= ProductCount; i++ {
		productID := fmt.Sprintf("P%03d", i)
		category := categoryNames[s.rng.Intn(len(categoryNames))]
		subCategories := categories[category]
		subCategory := subCategories[s.rng.Intn(len(subCategories))]
		brand := brands[s.rng.Intn(len(brands))]

		price, ok := fixedPrices[productID]
		if !ok {
			price = defaultPrice
		}

		dimProducts = append(dimProducts, models.DimProduct{
			ProductID:   productID,
			ProductName: fmt.Sprintf("%s %s %s", brand, subCategory, productID),
			Category:    category,
			SubCategory: subCategory,
			Brand:       brand,
			Price:       price,
		})
	}
	return dimProducts
}
