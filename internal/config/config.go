package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMySQL    = "mysql"
)

// Config is read from the environment; a .env file is loaded first by cmd/api.
type Config struct {
	Port      string `envconfig:"PORT"       default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL"  default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"dynamodb"`

	AWSRegion          string `envconfig:"AWS_REGION"            default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"     default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	PedidosTable      string `envconfig:"PEDIDOS_TABLE"       default:"pedidos"`
	MesasOrdenesTable string `envconfig:"MESAS_ORDENES_TABLE" default:"mesas_ordenes"`
	PaymentsTable     string `envconfig:"PAYMENTS_TABLE"      default:"pagos"`
	CartsTable        string `envconfig:"CARTS_TABLE"         default:"carritos"`
	ProductsTable     string `envconfig:"PRODUCTS_TABLE"      default:"productos"`
	UsersTable        string `envconfig:"USERS_TABLE"         default:"usuarios"`

	MySQLDSN         string `envconfig:"MYSQL_DSN"`
	MySQLAutoMigrate bool   `envconfig:"MYSQL_AUTO_MIGRATE" default:"false"`

	CORSAllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
}

// Load processes the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageDynamoDB:
	case StorageMySQL:
		if strings.TrimSpace(c.MySQLDSN) == "" {
			return fmt.Errorf("MYSQL_DSN is required when STORAGE_DRIVER=%s", StorageMySQL)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

// Addr is the listen address for gin.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
