package main

import (
	"context"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	_ "github.com/greikol4321-hub/Restaurante/docs"
	"github.com/greikol4321-hub/Restaurante/internal/adapter/http/routes"
	"github.com/greikol4321-hub/Restaurante/internal/config"
	"github.com/greikol4321-hub/Restaurante/internal/infrastructure/logging"
)

// @title           Restaurante API
// @version         1.0
// @description     Order lifecycle service: pedidos, mesas-ordenes, carritos and the payment ledger.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	if err := routes.Run(context.Background(), cfg, logger); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
