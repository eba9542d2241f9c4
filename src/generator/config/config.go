package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	StreamName    string
	Sink          string
	AWSRegion     string
	MiddlewareURL string
	Count         int
	IntervalMs    int
	Seed          int64
	LogLevel      string
}

func (c Config) String() string {
	return fmt.Sprintf(
		"StreamName: %s | Sink: %s | AWSRegion: %s | MiddlewareURL: %s | Count: %d | IntervalMs: %d | Seed: %d | LogLevel: %s",
		c.StreamName,
		c.Sink,
		c.AWSRegion,
		c.MiddlewareURL,
		c.Count,
		c.IntervalMs,
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
		StreamName:    v.GetString("stream.name"),
		Sink:          v.GetString("stream.sink"),
		AWSRegion:     v.GetString("aws.region"),
		MiddlewareURL: v.GetString("middleware.address"),
		Count:         v.GetInt("generator.count"),
		IntervalMs:    v.GetInt("generator.interval_ms"),
		Seed:          v.GetInt64("generator.seed"),
		LogLevel:      v.GetString("log.level"),
	}

	return config, nil
}
