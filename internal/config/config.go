package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendMongoDB  = "mongodb"
)

// Config holds all configuration for the recurring service.
type Config struct {
	Port     string `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	Timezone string `mapstructure:"TIMEZONE"`

	StoreBackend        string `mapstructure:"STORE_BACKEND"`
	AWSRegion           string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID      string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey  string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint    string `mapstructure:"DYNAMODB_ENDPOINT"`
	RecurringItemsTable string `mapstructure:"RECURRING_ITEMS_TABLE"`
	MongoDBURI          string `mapstructure:"MONGODB_URI"`
	MongoDBDatabase     string `mapstructure:"MONGODB_DB"`

	AMQPURL        string `mapstructure:"AMQP_URL"`
	LedgerExchange string `mapstructure:"LEDGER_EXCHANGE"`

	DueScanSchedule   string        `mapstructure:"DUE_SCAN_SCHEDULE"`
	DueScanTimeout    time.Duration `mapstructure:"DUE_SCAN_TIMEOUT"`
	SummaryCacheTTL   time.Duration `mapstructure:"SUMMARY_CACHE_TTL"`
	UpdateMaxAttempts int           `mapstructure:"UPDATE_MAX_ATTEMPTS"`

	JWTSecret string `mapstructure:"JWT_SECRET"`
}

var keys = []string{
	"PORT", "LOG_LEVEL", "TIMEZONE",
	"STORE_BACKEND", "AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
	"DYNAMODB_ENDPOINT", "RECURRING_ITEMS_TABLE", "MONGODB_URI", "MONGODB_DB",
	"AMQP_URL", "LEDGER_EXCHANGE",
	"DUE_SCAN_SCHEDULE", "DUE_SCAN_TIMEOUT", "SUMMARY_CACHE_TTL", "UPDATE_MAX_ATTEMPTS",
	"JWT_SECRET",
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TIMEZONE", "UTC")
	viper.SetDefault("STORE_BACKEND", BackendDynamoDB)
	viper.SetDefault("AWS_REGION", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	viper.SetDefault("AWS_ACCESS_KEY_ID", "local")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	viper.SetDefault("RECURRING_ITEMS_TABLE", "recurring_items")
	viper.SetDefault("MONGODB_DB", "recurring_finance")
	viper.SetDefault("LEDGER_EXCHANGE", "recurring_events")
	viper.SetDefault("DUE_SCAN_SCHEDULE", "0 6 * * *") // Every day at 06:00.
	viper.SetDefault("DUE_SCAN_TIMEOUT", "2m")
	viper.SetDefault("SUMMARY_CACHE_TTL", "5m")
	viper.SetDefault("UPDATE_MAX_ATTEMPTS", 3)
	viper.AutomaticEnv()

	// Bind environment variables explicitly to ensure they appear in Unmarshal
	for _, key := range keys {
		_ = viper.BindEnv(key)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.StoreBackend = strings.ToLower(strings.TrimSpace(config.StoreBackend))

	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	switch c.StoreBackend {
	case BackendDynamoDB:
	case BackendMongoDB:
		if c.MongoDBURI == "" {
			return fmt.Errorf("MONGODB_URI is required when STORE_BACKEND=%s", BackendMongoDB)
		}
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	if _, err := cron.ParseStandard(c.DueScanSchedule); err != nil {
		return fmt.Errorf("invalid DUE_SCAN_SCHEDULE %q: %w", c.DueScanSchedule, err)
	}
	if c.UpdateMaxAttempts < 1 {
		return fmt.Errorf("UPDATE_MAX_ATTEMPTS must be at least 1, got %d", c.UpdateMaxAttempts)
	}
	if c.DueScanTimeout <= 0 {
		return fmt.Errorf("DUE_SCAN_TIMEOUT must be positive, got %s", c.DueScanTimeout)
	}
	return nil
}

// Location resolves the configured time zone. LoadConfig already validated it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
