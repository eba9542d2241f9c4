package main

import (
	"context"
	"math/rand"
	"os"

	"github.com/joho/godotenv"

	"github.com/azhagan2/retail-pos-pipeline/src/common/logger"
	"github.com/azhagan2/retail-pos-pipeline/src/common/warehouse"
	"github.com/azhagan2/retail-pos-pipeline/src/seeder/business"
	"github.com/azhagan2/retail-pos-pipeline/src/seeder/config"
	"github.com/azhagan2/retail-pos-pipeline/src/seeder/internal/loader"
)

var log = logger.GetLogger()

func main() {
	godotenv.Load()

	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	conf, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("%s", err)
	}

	if err := logger.InitLogger(conf.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}
	defer logger.Sync()

	log.Debug(conf)

	client, err := warehouse.Open(conf.Warehouse)
	if err != nil {
		log.Fatalf("Failed to connect to warehouse: %s", err)
	}
	defer client.Close()

	var rng *rand.Rand
	if conf.Seed != 0 {
		rng = rand.New(rand.NewSource(conf.Seed))
	}
	seeder := business.NewSeeder(rng)

	stores := seeder.GenerateStores()
	dimProducts := seeder.GenerateProducts()

	if err := loader.NewLoader(client).LoadDimensions(context.Background(), stores, dimProducts); err != nil {
		log.Fatalf("Failed to load dimension tables: %s", err)
	}

	log.Info("dim_store and dim_product successfully loaded")
}
