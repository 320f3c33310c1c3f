// @title Art Atlas API
// @version 1.0
// @description Study service for African art: catalog filters, timeline, quiz and visual-analysis worksheets.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "art-atlas/cmd/api/docs"
	"art-atlas/internal/config"
	"art-atlas/internal/dataset"
	"art-atlas/internal/domain"
	"art-atlas/internal/handler"
	"art-atlas/internal/logger"
	"art-atlas/internal/middleware"
	"art-atlas/internal/quiz"
	"art-atlas/internal/service"
	"art-atlas/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// newRand returns a seeded source when seed is set, nil otherwise. Each
// consumer passes its own stream so seeded sources do not repeat each other.
func newRand(seed, stream uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, stream))
}

const (
	timelineStream uint64 = iota + 1
	quizStream
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// The dataset and the worksheet store are independent; open them together.
	var (
		ds         *domain.Dataset
		worksheets *store.Store
	)
	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		loader := dataset.NewLoader(&http.Client{Timeout: cfg.Data.FetchTimeout}, appLogger)
		loaded, err := loader.Load(gctx, cfg.Data.Source)
		if err != nil {
			return err
		}
		ds = loaded
		return nil
	})
	g.Go(func() error {
		opened, err := store.Open(gctx, cfg, appLogger)
		if err != nil {
			return err
		}
		worksheets = opened
		return nil
	})
	if err := g.Wait(); err != nil {
		if worksheets != nil {
			_ = worksheets.Close()
		}
		appLogger.Fatal("Failed to start", zap.Error(err))
	}
	defer worksheets.Close()

	// Initialize services
	catalogService := service.NewCatalogService(ds, newRand(cfg.Quiz.Seed, timelineStream))
	quizService := service.NewQuizSessionService(ds.Items,
		quiz.NewGenerator(newRand(cfg.Quiz.Seed, quizStream), cfg.Quiz.MaxAttempts),
		worksheets.Sessions, cfg.Quiz.SessionTTL)
	worksheetService := service.NewWorksheetService(ds, worksheets.Repository)

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(catalogService)
	quizHandler := handler.NewQuizHandler(quizService)
	worksheetHandler := handler.NewWorksheetHandler(worksheetService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept," + middleware.SessionHeader,
		ExposeHeaders: "Content-Disposition," + middleware.SessionHeader,
		MaxAge:        300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app.Group("/api"), catalogHandler, quizHandler, worksheetHandler)

	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.String("worksheet_store", worksheets.Backend),
			zap.Int("items", len(ds.Items)),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
