package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/azhagan2/retail-pos-pipeline/src/common/warehouse"
)

type Config struct {
	Warehouse warehouse.Config
	Seed      int64
	LogLevel  string
}

func (c Config) String() string {
	return fmt.Sprintf(
		"Account: %s | User: %s | Role: %s | Warehouse: %s | Database: %s | Schema: %s | Seed: %d | LogLevel: %s",
		c.Warehouse.Account,
		c.Warehouse.User,
		c.Warehouse.Role,
		c.Warehouse.Warehouse,
		c.Warehouse.Database,
		c.Warehouse.Schema,
		c.Seed,
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
		Warehouse: warehouse.Config{
			Account:   v.GetString("warehouse.account"),
			User:      v.GetString("warehouse.user"),
			Password:  v.GetString("warehouse.password"),
			Role:      v.GetString("warehouse.role"),
			Warehouse: v.GetString("warehouse.warehouse"),
			Database:  v.GetString("warehouse.database"),
			Schema:    v.GetString("warehouse.schema"),
		},
		Seed:     v.GetInt64("seeder.seed"),
		LogLevel: v.GetString("log.level"),
	}

	return config, nil
}
