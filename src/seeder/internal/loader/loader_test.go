package loader_test

import (
	"context"
	"math/rand"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azhagan2/retail-pos-pipeline/src/common/warehouse"
	"github.com/azhagan2/retail-pos-pipeline/src/seeder/business"
	"github.com/azhagan2/retail-pos-pipeline/src/seeder/internal/loader"
)

func TestLoadDimensionsOverwritesBothTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	seeder := business.NewSeeder(rand.New(rand.NewSource(5)))
	stores := seeder.GenerateStores()
	dimProducts := seeder.GenerateProducts()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM dim_store")).
		WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO dim_store (store_id, store_name, city, region, country, is_active)")).
		WillReturnResult(sqlmock.NewResult(0, 10))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM dim_product")).
		WillReturnResult(sqlmock.NewResult(0, 9))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO dim_product (product_id, product_name, category, sub_category, brand, price)")).
		WillReturnResult(sqlmock.NewResult(0, 9))
	mock.ExpectCommit()

	l := loader.NewLoader(warehouse.NewClient(db))
	err = l.LoadDimensions(context.Background(), stores, dimProducts)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadDimensionsPropagatesWriteFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	seeder := business.NewSeeder(rand.New(rand.NewSource(5)))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM dim_store")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	l := loader.NewLoader(warehouse.NewClient(db))
	err = l.LoadDimensions(context.Background(), seeder.GenerateStores(), seeder.GenerateProducts())
	assert.ErrorContains(t, err, "dim_store")
}
