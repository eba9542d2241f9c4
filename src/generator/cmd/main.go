package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/azhagan2/retail-pos-pipeline/src/common/logger"
	"github.com/azhagan2/retail-pos-pipeline/src/generator/config"
	"github.com/azhagan2/retail-pos-pipeline/src/generator/internal/server"
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

	srv, err := server.InitServer(conf)
	if err != nil {
		log.Fatalf("%s", err)
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("%s", err)
	}
}
