package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"
	"golang.org/x/time/rate"

	"github.com/packrat-io/packrat/cachestore"
	"github.com/packrat-io/packrat/countstore"
	"github.com/packrat-io/packrat/util"
	"github.com/packrat-io/packrat/webcache"
)

type Server struct {
	echo    *echo.Echo
	httpd   *http.Server
	fetcher *webcache.CachedFetcher
	logger  *slog.Logger
}

type Config struct {
	Logger         *slog.Logger
	RedisURL       string
	Bind           string
	TTL            time.Duration
	FetchRateLimit int
}

func NewServer(config Config) (*Server, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	ttl := config.TTL
	if ttl <= 0 {
		ttl = webcache.DefaultTTL
	}

	var pages cachestore.CacheStore
	var counts countstore.CountStore
	if config.RedisURL != "" {
		rdb, err := util.RedisClient(context.TODO(), config.RedisURL)
		if err != nil {
			return nil, err
		}
		pages = cachestore.NewRedisCacheStore(rdb, ttl)
		counts = countstore.NewRedisCountStore(rdb)
	} else {
		pages = cachestore.NewMemCacheStore(5_000, ttl)
		counts = countstore.NewMemCountStore()
	}

	var limiter *rate.Limiter
	if config.FetchRateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.FetchRateLimit), 1)
	}
	fetcher := webcache.New(webcache.NewHTTPFetcher(limiter), pages, counts)

	e := echo.New()

	// httpd
	var (
		httpTimeout        = 1 * time.Minute
		httpMaxHeaderBytes = 1 * (1024 * 1024)
	)

	srv := &Server{
		echo:    e,
		fetcher: fetcher,
		logger:  logger,
	}
	srv.httpd = &http.Server{
		Handler:        srv,
		Addr:           config.Bind,
		WriteTimeout:   httpTimeout,
		ReadTimeout:    httpTimeout,
		MaxHeaderBytes: httpMaxHeaderBytes,
	}

	e.HideBanner = true
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = srv.errorHandler

	e.GET("/_health", srv.HandleHealthCheck)
	e.GET("/page", srv.HandlePage)
	e.GET("/counts", srv.HandleCounts)

	return srv, nil
}

func (srv *Server) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	srv.echo.ServeHTTP(rw, req)
}

func (srv *Server) RunAPI() error {
	srv.logger.Info("starting server", "bind", srv.httpd.Addr)
	go func() {
		if err := srv.httpd.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				srv.logger.Error("HTTP server shutting down unexpectedly", "err", err)
			}
		}
	}()

	// Wait for a signal to exit.
	srv.logger.Info("registering OS exit signal handler")
	quit := make(chan struct{})
	exitSignals := make(chan os.Signal, 1)
	signal.Notify(exitSignals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-exitSignals
		srv.logger.Info("received OS exit signal", "signal", sig)

		if err := srv.Shutdown(); err != nil {
			srv.logger.Error("HTTP server shutdown error", "err", err)
		}

		// Trigger the return that causes an exit.
		close(quit)
	}()
	<-quit
	srv.logger.Info("graceful shutdown complete")
	return nil
}

func (srv *Server) RunMetrics(listen string) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(listen, nil)
}

func (srv *Server) Shutdown() error {
	srv.logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.httpd.Shutdown(ctx)
}
