package routes

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/greikol4321-hub/Restaurante/docs"
	"github.com/greikol4321-hub/Restaurante/internal/adapter/http/handlers"
	"github.com/greikol4321-hub/Restaurante/internal/adapter/persistence/gormrepository"
	"github.com/greikol4321-hub/Restaurante/internal/adapter/persistence/repository"
	"github.com/greikol4321-hub/Restaurante/internal/config"
	"github.com/greikol4321-hub/Restaurante/internal/infrastructure/database"
	"github.com/greikol4321-hub/Restaurante/internal/infrastructure/logging"
	"github.com/greikol4321-hub/Restaurante/internal/usecase"
	"github.com/greikol4321-hub/Restaurante/internal/usecase/interfaces"
)

// Run will start the server
func Run(ctx context.Context, cfg config.Config, logger *logrus.Logger) error {
	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	router := NewRouter(cfg, logger, newHandlers(repos, logger))

	logger.WithFields(logrus.Fields{"addr": cfg.Addr(), "storage": cfg.StorageDriver}).Info("starting HTTP server")
	if err := router.Run(cfg.Addr()); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Pedidos      *handlers.PedidoHandler
	MesasOrdenes *handlers.MesaOrdenHandler
	Pagos        *handlers.PaymentHandler
	Carritos     *handlers.CartHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the versioned API.
func NewRouter(cfg config.Config, logger *logrus.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPedidoRoutes(v1, h.Pedidos)
	addMesaOrdenRoutes(v1, h.MesasOrdenes)
	addPagoRoutes(v1, h.Pagos)
	addCarritoRoutes(v1, h.Carritos)
	return router
}

type repositories struct {
	pedidos  interfaces.IPedidoRepository
	mesas    interfaces.IMesaOrdenRepository
	payments interfaces.IPaymentRepository
	carts    interfaces.ICartRepository
	products interfaces.IProductCatalog
	users    interfaces.IUserDirectory
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logrus.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageMySQL:
		db, err := database.ConnectMySQL(cfg.MySQLDSN, logger)
		if err != nil {
			return repositories{}, err
		}
		if cfg.MySQLAutoMigrate {
			if err := gormrepository.AutoMigrate(db); err != nil {
				return repositories{}, fmt.Errorf("auto migrate: %w", err)
			}
			logger.Info("MySQL schema migrated")
		}
		return repositories{
			pedidos:  gormrepository.NewPedidoGormRepository(db),
			mesas:    gormrepository.NewMesaOrdenGormRepository(db),
			payments: gormrepository.NewPaymentGormRepository(db),
			carts:    gormrepository.NewCartGormRepository(db),
			products: gormrepository.NewProductGormRepository(db),
			users:    gormrepository.NewUserGormRepository(db),
		}, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			pedidos:  repository.NewPedidoDynamoRepository(ddb, cfg.PedidosTable),
			mesas:    repository.NewMesaOrdenDynamoRepository(ddb, cfg.MesasOrdenesTable),
			payments: repository.NewPaymentDynamoRepository(ddb, cfg.PaymentsTable, cfg.PedidosTable, cfg.MesasOrdenesTable),
			carts:    repository.NewCartDynamoRepository(ddb, cfg.CartsTable, cfg.PedidosTable),
			products: repository.NewProductDynamoRepository(ddb, cfg.ProductsTable),
			users:    repository.NewUserDynamoRepository(ddb, cfg.UsersTable),
		}, nil
	}
}

func newHandlers(r repositories, logger *logrus.Logger) Handlers {
	pedidoUseCase := usecase.NewPedidoUseCase(r.pedidos, r.payments, r.users, r.products, logger)
	mesaOrdenUseCase := usecase.NewMesaOrdenUseCase(r.mesas, r.payments, r.users, r.products, logger)
	paymentUseCase := usecase.NewPaymentUseCase(r.payments, r.pedidos, r.mesas, logger)
	cartUseCase := usecase.NewCartUseCase(r.carts, r.users, r.products, logger)

	return Handlers{
		Pedidos:      handlers.NewPedidoHandler(pedidoUseCase),
		MesasOrdenes: handlers.NewMesaOrdenHandler(mesaOrdenUseCase),
		Pagos:        handlers.NewPaymentHandler(paymentUseCase),
		Carritos:     handlers.NewCartHandler(cartUseCase),
	}
}

func setMiddlewares(router *gin.Engine, cfg config.Config, logger *logrus.Logger) {
	router.Use(logging.GinMiddleware(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
