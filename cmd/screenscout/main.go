package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/screenscout/screenscout/internal/catalog"
	"github.com/screenscout/screenscout/internal/config"
	"github.com/screenscout/screenscout/internal/logger"
	"github.com/screenscout/screenscout/internal/mcpserver"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	httpAddr := flag.String("http", "", "Serve MCP over HTTP on this address instead of stdio, e.g. :8710")
	check := flag.Bool("check", false, "Probe provider connectivity and exit")
	flag.Parse()

	// Missing .env is fine, environment variables may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Path:       cfg.Logging.Path,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	defer log.Close()

	log.Info().
		Str("version", config.Version).
		Str("logLevel", cfg.Logging.Level).
		Msg("starting ScreenScout")

	svc := catalog.NewService(cfg, log.Logger)

	if *check {
		os.Exit(runCheck(svc, log))
	}

	srv := mcpserver.NewServer(svc, log.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *httpAddr != "" {
		if err := serveHTTP(ctx, srv, *httpAddr, log); err != nil {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
		return
	}

	log.Info().Msg("serving MCP over stdio")
	if err := srv.ServeStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("stdio server failed")
	}
	log.Info().Msg("shutdown complete")
}

func serveHTTP(ctx context.Context, srv *mcpserver.Server, addr string, log *logger.Logger) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))

	e.Any("/mcp", echo.WrapHandler(srv.HTTPHandler()))
	e.Any("/mcp/*", echo.WrapHandler(srv.HTTPHandler()))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": config.Version})
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("HTTP shutdown error")
		}
	}()

	log.Info().Str("address", addr).Msg("serving MCP over HTTP")
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info().Msg("shutdown complete")
	return nil
}

func requestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

// runCheck probes both providers and reports which are reachable.
// Exits non-zero when a configured provider fails its probe.
func runCheck(svc *catalog.Service, log *logger.Logger) int {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	failed := false

	if !svc.IsTMDBConfigured() {
		fmt.Println("TMDB:  not configured (set TMDB_API_KEY)")
	} else if err := svc.TestTMDB(ctx); err != nil {
		fmt.Printf("TMDB:  FAILED (%v)\n", err)
		failed = true
	} else {
		fmt.Println("TMDB:  ok")
	}

	if !svc.IsOMDBConfigured() {
		fmt.Println("OMDb:  not configured (set OMDB_API_KEY)")
	} else if err := svc.TestOMDB(ctx); err != nil {
		fmt.Printf("OMDb:  FAILED (%v)\n", err)
		failed = true
	} else {
		fmt.Println("OMDb:  ok")
	}

	if failed {
		return 1
	}
	log.Info().Msg("connectivity check passed")
	return 0
}
