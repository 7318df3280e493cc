package routes

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "capquote/docs" // swag-generated descriptor
	"capquote/internal/adapter/http/handlers"
	"capquote/internal/adapter/persistence/repository"
	"capquote/internal/config"
	"capquote/internal/extractor"
	"capquote/internal/infrastructure/database"
	"capquote/internal/infrastructure/payments"
	"capquote/internal/normalizer"
	"capquote/internal/orderstate"
	"capquote/internal/usecase"
	"capquote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the service for cfg and serves until the listener fails.
func Run(cfg config.Config) error {
	threadRepo, paymentRepo, closeStore, err := openStores(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	n := normalizer.New(cfg.Tunables.Defaults)
	threadUseCase := usecase.NewQuoteThreadUseCase(
		threadRepo,
		extractor.New(cfg.Tunables.Extraction.MaxCaptureLength),
		n,
		orderstate.NewMachine(n, cfg.Tunables.PricingRules()),
	)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("[routes] mercado pago gateway not configured err=%v", err)
	} else {
		paymentGateway = mpGateway
	}
	checkoutUseCase := usecase.NewQuoteCheckoutUseCase(paymentRepo, threadRepo, paymentGateway)

	router := NewRouter(handlers.NewQuoteThreadHandler(threadUseCase), handlers.NewQuoteCheckoutHandler(checkoutUseCase))
	log.Printf("[routes] listening port=%s driver=%s", cfg.Port, cfg.PersistenceDriver)
	return router.Run(":" + cfg.Port)
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(threadHandler *handlers.QuoteThreadHandler, checkoutHandler *handlers.QuoteCheckoutHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addThreadRoutes(v1, threadHandler, checkoutHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[routes] recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func openStores(ctx context.Context, cfg config.Config) (interfaces.IThreadRepository, interfaces.IQuotePaymentRepository, func(), error) {
	switch cfg.PersistenceDriver {
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, nil, err
		}
		if os.Getenv("DYNAMODB_ENDPOINT") != "" {
			if err := database.EnsureQuoteTables(ctx, ddb, cfg.ThreadsTable, cfg.PaymentsTable); err != nil {
				return nil, nil, nil, err
			}
		}
		return repository.NewThreadDynamoRepository(ddb, cfg.ThreadsTable),
			repository.NewQuotePaymentDynamoRepository(ddb, cfg.PaymentsTable),
			func() {}, nil
	case config.DriverSQLite, config.DriverMySQL:
		var db *sql.DB
		var err error
		if cfg.PersistenceDriver == config.DriverSQLite {
			db, err = database.OpenSQLite(cfg.SQLitePath)
		} else {
			db, err = database.OpenMySQL(cfg.MySQL)
		}
		if err != nil {
			return nil, nil, nil, err
		}
		if err := repository.MigrateSQL(ctx, db, cfg.PersistenceDriver); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return repository.NewThreadSQLRepository(db, cfg.PersistenceDriver),
			repository.NewQuotePaymentSQLRepository(db),
			func() { db.Close() }, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported persistence driver %q", cfg.PersistenceDriver)
	}
}
