package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/locallibrary/internal/catalog"
	"github.com/mrlokans/locallibrary/internal/config"
	"github.com/mrlokans/locallibrary/internal/database"
	"github.com/mrlokans/locallibrary/internal/database/authors"
	"github.com/mrlokans/locallibrary/internal/database/books"
	"github.com/mrlokans/locallibrary/internal/database/genres"
	http_controllers "github.com/mrlokans/locallibrary/internal/http"
	"github.com/mrlokans/locallibrary/internal/observability"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill -2 is SIGINT, plain kill is SIGTERM; SIGKILL cannot be caught
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	// Flush spans only once in-flight requests have finished.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting LocalLibrary v%s", version)

	shutdownTracing, err := observability.InitTracing(context.Background(), cfg.Tracing, version)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	if cfg.Tracing.Enabled {
		log.Printf("Tracing enabled (service=%s, sample ratio=%.2f)", cfg.Tracing.ServiceName, cfg.Tracing.SampleRatio)
	}

	db, err := database.NewDatabase(cfg.Database.Target(),
		database.WithDriver(cfg.Database.Driver),
		database.WithLogLevel(cfg.Database.LogLevel),
	)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	service := catalog.NewService(
		books.NewRepository(db.DB),
		authors.NewRepository(db.DB),
		genres.NewRepository(db.DB),
		catalog.WithQueryTimeout(cfg.Store.QueryTimeout),
	)

	routerCfg := http_controllers.RouterConfig{
		Catalog:        service,
		Database:       db,
		CORSOrigins:    cfg.HTTP.CORSAllowedOrigins,
		TemplatesPath:  cfg.UI.TemplatesPath,
		StaticPath:     cfg.UI.StaticPath,
		TracingEnabled: cfg.Tracing.Enabled,
		ServiceName:    cfg.Tracing.ServiceName,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("Error shutting down tracing: %v", err)
		}
	}

	Serve(router, cfg, onShutdown)
}
