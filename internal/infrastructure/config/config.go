// Package config loads runtime settings from the environment.
//
// A .env file is honoured through godotenv/autoload in the binaries; values
// are then bound with envconfig.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverMemory   = "memory"
	StoreDriverDynamoDB = "dynamodb"
)

type Config struct {
	Port int `envconfig:"PORT" default:"8080"`

	StoreDriver        string        `envconfig:"STORE_DRIVER" default:"sqlite"`
	SQLitePath         string        `envconfig:"SQLITE_PATH" default:"meraki.db"`
	StoreWatchInterval time.Duration `envconfig:"STORE_WATCH_INTERVAL" default:"2s"`

	// DynamoDB driver. Local DynamoDB does not validate credentials, but the
	// AWS SDK requires them.
	KVTable            string `envconfig:"KV_TABLE" default:"estimator_kv"`
	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
