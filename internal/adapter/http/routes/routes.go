package routes

import (
	"fmt"
	"log"
	"strconv"

	_ "clictopay_gateway/docs"
	"clictopay_gateway/internal/adapter/http/handlers"
	"clictopay_gateway/internal/adapter/http/middleware"
	"clictopay_gateway/internal/config"
	"clictopay_gateway/internal/domain/entities"
	"clictopay_gateway/internal/infrastructure/logger"
	"clictopay_gateway/internal/infrastructure/payments"
	"clictopay_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run() {
	cfg, err := config.LoadConfig("./")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lg, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	router, err := NewRouter(cfg, lg)
	if err != nil {
		lg.Fatal("Failed to build router", zap.Error(err))
	}

	lg.Info("starting server", zap.Int("port", cfg.Port), zap.Bool("payment_gateway_mock", cfg.PaymentGatewayMock))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		lg.Fatal("Failed to startup the application", zap.Error(err))
	}
}

// NewRouter wires gateways, use case and handlers into a gin engine.
func NewRouter(cfg *config.Config, lg *zap.Logger) (*gin.Engine, error) {
	defaultEnv, err := entities.ParseEnvironment(cfg.DefaultEnvironment)
	if err != nil {
		return nil, fmt.Errorf("default_environment %q: %w", cfg.DefaultEnvironment, err)
	}

	router := gin.New()
	setMiddlewares(router, lg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	gateways := payments.NewGateways(*cfg, lg)
	paymentUseCase := usecase.NewPaymentUseCase(gateways, lg)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase, lg)
	infoHandler := handlers.NewInfoHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	scoped := v1.Group("", middleware.Environment(defaultEnv))
	addInfoRoutes(scoped, infoHandler)
	addPaymentRoutes(scoped, paymentHandler)
	return router, nil
}

func setMiddlewares(router *gin.Engine, lg *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		lg.Error("Recovered from panic", zap.Any("panic", recovered), zap.String("request_id", middleware.GetRequestID(c)))
		c.AbortWithStatus(500)
	}))
}
