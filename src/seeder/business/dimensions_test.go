package business_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azhagan2/retail-pos-pipeline/src/seeder/business"
)

func TestGenerateStoresProducesTenSequentialRows(t *testing.T) {
	seeder := business.NewSeeder(rand.New(rand.NewSource(1)))
	stores := seeder.GenerateStores()

	require.Len(t, stores, 10)
	for i, store := range stores {
		assert.Equal(t, fmt.Sprintf("%d", 295+i), store.StoreID)
		assert.Equal(t, fmt.Sprintf("Store_%d", 295+i), store.StoreName)
		assert.Equal(t, "USA", store.Country)
		assert.NotEmpty(t, store.City)
		assert.NotEmpty(t, store.Region)
	}
}

func TestGenerateProductsUsesFixedPriceTable(t *testing.T) {
	wantPrices := []float64{49.99, 59.99, 69.99, 79.99, 89.99, 99.99, 109.99, 119.99, 129.99}

	seeder := business.NewSeeder(rand.New(rand.NewSource(7)))
	dimProducts := seeder.GenerateProducts()

	require.Len(t, dimProducts, 9)
	for i, p := range dimProducts {
		assert.Equal(t, fmt.Sprintf("P%03d", i+1), p.ProductID)
		assert.Equal(t, wantPrices[i], p.Price)
		assert.Contains(t, p.ProductName, p.Brand)
		assert.Contains(t, p.ProductName, p.SubCategory)
		assert.Contains(t, p.ProductName, p.ProductID)
	}
}

func TestGenerateProductsSubCategoryBelongsToCategory(t *testing.T) {
	allowed := map[string][]string{
		"Electronics": {"Phones", "Laptops", "Tablets", "Accessories"},
		"Home":        {"Furniture", "Appliances", "Decor"},
		"Books":       {"Fiction", "Non-fiction", "Comics", "Educational"},
	}

	for seed := int64(0); seed < 20; seed++ {
		seeder := business.NewSeeder(rand.New(rand.NewSource(seed)))
		for _, p := range seeder.GenerateProducts() {
			subs, ok := allowed[p.Category]
			require.True(t, ok, "unknown category %s", p.Category)
			assert.Contains(t, subs, p.SubCategory)
		}
	}
}
