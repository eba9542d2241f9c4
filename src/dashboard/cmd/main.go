package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/azhagan2/retail-pos-pipeline/src/common/logger"
	"github.com/azhagan2/retail-pos-pipeline/src/common/warehouse"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/business"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/config"
	"github.com/azhagan2/retail-pos-pipeline/src/dashboard/internal/server"
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

	service := business.NewDashboardService(client)

	srv := server.InitServer(conf, service)
	if err := srv.Run(); err != nil {
		log.Fatalf("%s", err)
	}
}
