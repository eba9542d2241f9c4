package loader

import (
	"context"

	"github.com/pkg/errors"

	"github.com/azhagan2/retail-pos-pipeline/src/common/logger"
	"github.com/azhagan2/retail-pos-pipeline/src/common/models"
	"github.com/azhagan2/retail-pos-pipeline/src/common/warehouse"
)

var log = logger.GetLogger()

const (
	StoreTable   = "dim_store"
	ProductTable = "dim_product"
)

var storeColumns = []string{"store_id", "store_name", "city", "region", "country", "is_active"}

var productColumns = []string{"product_id", "product_name", "category", "sub_category", "brand", "price"}

// Loader persists dimension row sets with full-overwrite semantics.
type Loader struct {
	client *warehouse.Client
}

func NewLoader(client *warehouse.Client) *Loader {
	return &Loader{client: client}
}

func (l *Loader) LoadDimensions(ctx context.Context, stores []models.DimStore, dimProducts []models.DimProduct) error {
	storeRows := make([][]any, 0, len(stores))
	for _, s := range stores {
		storeRows = append(storeRows, []any{s.StoreID, s.StoreName, s.City, s.Region, s.Country, s.IsActive})
	}
	if err := l.client.Overwrite(ctx, StoreTable, storeColumns, storeRows); err != nil {
		return errors.Wrap(err, "failed to load dim_store")
	}
	log.Infof("Loaded %d rows into %s", len(storeRows), StoreTable)

	productRows := make([][]any, 0, len(dimProducts))
	for _, p := range dimProducts {
		productRows = append(productRows, []any{p.ProductID, p.ProductName, p.Category, p.SubCategory, p.Brand, p.Price})
	}
	if err := l.client.Overwrite(ctx, ProductTable, productColumns, productRows); err != nil {
		return errors.Wrap(err, "failed to load dim_product")
	}
	log.Infof("Loaded %d rows into %s", len(productRows), ProductTable)

	return nil
}
