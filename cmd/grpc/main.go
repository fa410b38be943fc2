package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-pos-service/config"
	"github.com/fekuna/omnipos-pos-service/internal/api/posv1"
	"github.com/fekuna/omnipos-pos-service/internal/cart"
	"github.com/fekuna/omnipos-pos-service/internal/migration"
	"github.com/fekuna/omnipos-pos-service/internal/notice"
	"github.com/fekuna/omnipos-pos-service/internal/sale"
	"github.com/fekuna/omnipos-pos-service/pkg/broker"
	"github.com/fekuna/omnipos-pos-service/pkg/cache"
	"github.com/fekuna/omnipos-pos-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-pos-service/pkg/logger"
	"github.com/fekuna/omnipos-pos-service/pkg/middleware"

	catH "github.com/fekuna/omnipos-pos-service/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-pos-service/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-pos-service/internal/category/usecase"

	cartH "github.com/fekuna/omnipos-pos-service/internal/cart/handler"
	cartUCPkg "github.com/fekuna/omnipos-pos-service/internal/cart/usecase"

	prodH "github.com/fekuna/omnipos-pos-service/internal/product/handler"
	prodListenerPkg "github.com/fekuna/omnipos-pos-service/internal/product/listener"
	prodRepoPkg "github.com/fekuna/omnipos-pos-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-pos-service/internal/product/usecase"

	reportH "github.com/fekuna/omnipos-pos-service/internal/report/handler"
	reportRepoPkg "github.com/fekuna/omnipos-pos-service/internal/report/repository"
	reportUCPkg "github.com/fekuna/omnipos-pos-service/internal/report/usecase"

	saleH "github.com/fekuna/omnipos-pos-service/internal/sale/handler"
	salePublisherPkg "github.com/fekuna/omnipos-pos-service/internal/sale/publisher"
	saleRepoPkg "github.com/fekuna/omnipos-pos-service/internal/sale/repository"
	saleUCPkg "github.com/fekuna/omnipos-pos-service/internal/sale/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
		FilePath:          cfg.Logger.File,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		URL:             cfg.Postgres.URL,
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database")

	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migration.EnsureSchema(schemaCtx, db); err != nil {
		schemaCancel()
		appLogger.Fatal("Could not prepare database schema", zap.Error(err))
	}
	schemaCancel()

	// 4. Initialize Repositories
	catRepo := catRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	saleRepo := saleRepoPkg.NewPGRepository(db)
	reportRepo := reportRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis (reports will not be cached)", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5.5 Initialize Kafka
	var (
		salePublisher   sale.EventPublisher
		restockConsumer *broker.KafkaConsumer
	)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = broker.Ping(pingCtx, cfg.Kafka.Brokers)
	pingCancel()
	if err != nil {
		appLogger.Warn("Could not reach Kafka (sale events and restock listener disabled)", zap.Error(err))
	} else {
		saleProducer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.SalesTopic,
		})
		defer saleProducer.Close()
		salePublisher = salePublisherPkg.NewSalePublisher(saleProducer)

		restockConsumer = broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.RestockTopic,
			GroupID: cfg.Kafka.RestockGroup,
		})
		defer restockConsumer.Close()
		appLogger.Info("Connected to Kafka",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("sales_topic", cfg.Kafka.SalesTopic),
			zap.String("restock_topic", cfg.Kafka.RestockTopic),
		)
	}

	// 6. Initialize UseCases
	sessions := cart.NewSessionStore()
	engine := cart.NewEngine(prodRepo, appLogger)

	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger, prodUCPkg.WithDefaultCategory(cfg.Store.DefaultCategory))
	cartUC := cartUCPkg.NewCartUseCase(engine, sessions, appLogger)
	saleUC := saleUCPkg.NewSaleUseCase(saleRepo, sessions, salePublisher, appLogger)
	reportUC := reportUCPkg.NewReportUseCase(reportRepo, redisClient, cfg.Redis.ReportCacheTTL, appLogger)

	// 6.5 Initialize Listeners
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if restockConsumer != nil {
		restockListener := prodListenerPkg.NewRestockListener(restockConsumer, prodUC, appLogger)
		go restockListener.Start(ctx)
	}

	// 7. Initialize Handlers
	board := notice.NewBoard(cfg.Store.NoticeTTL)
	defer board.Stop()

	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	cartHandler := cartH.NewCartHandler(cartUC, appLogger)
	saleHandler := saleH.NewSaleHandler(saleUC, board, appLogger)
	reportHandler := reportH.NewReportHandler(reportUC, appLogger)

	// 8. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(middleware.ContextInterceptor(appLogger)),
	)

	posv1.RegisterCategoryServiceServer(grpcServer, catHandler)
	posv1.RegisterProductServiceServer(grpcServer, prodHandler)
	posv1.RegisterCartServiceServer(grpcServer, cartHandler)
	posv1.RegisterSaleServiceServer(grpcServer, saleHandler)
	posv1.RegisterReportServiceServer(grpcServer, reportHandler)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	grpcServer.GracefulStop()

	if cfg.Store.ReleaseCartsOnShutdown {
		releaseCtx, releaseCancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := cartUC.ReleaseAll(releaseCtx); err != nil {
			appLogger.Error("Could not release every open cart", zap.Error(err))
		}
		releaseCancel()
	}
	appLogger.Info("Server stopped")
}
