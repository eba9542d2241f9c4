package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/azhagan2/retail-pos-pipeline/src/common/warehouse"
)

type Config struct {
	Port           string
	RefreshSeconds int
	AllowedOrigins []string
	Warehouse      warehouse.Config
	LogLevel       string
}

func (c Config) String() string {
	return fmt.Sprintf(
		"Port: %s | RefreshSeconds: %d | AllowedOrigins: %v | Account: %s | Database: %s | Schema: %s | LogLevel: %s",
		c.Port,
		c.RefreshSeconds,
		c.AllowedOrigins,
		c.Warehouse.Account,
		c.Warehouse.Database,
		c.Warehouse.Schema,
		c.LogLevel,
	)
}

const CONFIG_FILE_PATH = "./config.yaml"

func InitConfig(configFilePath string) (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := CONFIG_FILE_PATH
	if configFilePath != "" {
		configFile = configFilePath
	}

	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
	}

	config := &Config{
		Port:           v.GetString("server.port"),
		RefreshSeconds: v.GetInt("server.refresh_seconds"),
		AllowedOrigins: v.GetStringSlice("server.allowed_origins"),
		Warehouse: warehouse.Config{
			Account:   v.GetString("warehouse.account"),
			User:      v.GetString("warehouse.user"),
			Password:  v.GetString("warehouse.password"),
			Role:      v.GetString("warehouse.role"),
			Warehouse: v.GetString("warehouse.warehouse"),
			Database:  v.GetString("warehouse.database"),
			Schema:    v.GetString("warehouse.schema"),
		},
		LogLevel: v.GetString("log.level"),
	}

	if config.RefreshSeconds <= 0 {
		config.RefreshSeconds = 120
	}

	return config, nil
}
