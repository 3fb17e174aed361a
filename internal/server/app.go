// Package server wires the rating server together: it seeds the in-memory
// store, builds the services and runs the gRPC and metrics listeners until a
// shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrijs2005/storerating/internal/common"
	"github.com/dmitrijs2005/storerating/internal/logging"
	"github.com/dmitrijs2005/storerating/internal/server/config"
	"github.com/dmitrijs2005/storerating/internal/server/metrics"
	"github.com/dmitrijs2005/storerating/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/storerating/internal/server/seed"
	"github.com/dmitrijs2005/storerating/internal/server/services"

	gs "github.com/dmitrijs2005/storerating/internal/server/grpc"
)

type App struct {
	config           *config.Config
	logger           logging.Logger
	registry         *prometheus.Registry
	metrics          *metrics.Metrics
	userService      *services.UserService
	storeService     *services.StoreService
	ratingService    *services.RatingService
	dashboardService *services.DashboardService
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stdout, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	if c.SecretKey == "" {
		if c.SecretKey, err = common.MakeRandHexString(32); err != nil {
			return nil, fmt.Errorf("secret key error: %w", err)
		}
		logger.Warn(context.Background(), "no secret key configured, using a random one; tokens will not survive a restart")
	}

	fixtures, err := seed.Load(c.FixturesPath)
	if err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}

	rm := repomanager.NewInMemoryRepositoryManager()
	if err := seed.Apply(context.Background(), rm, fixtures, c.BcryptCost, time.Now()); err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	us := services.NewUserService(rm, c)
	ss := services.NewStoreService(rm)
	rs := services.NewRatingService(rm)

	return &App{
		config:           c,
		logger:           logger,
		registry:         reg,
		metrics:          metrics.New(reg),
		userService:      us,
		storeService:     ss,
		ratingService:    rs,
		dashboardService: services.NewDashboardService(us, ss, rs),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.userService, app.storeService, app.ratingService, app.dashboardService,
		gs.Options{
			SecretKey:          app.config.SecretKey,
			LoginRatePerSecond: app.config.LoginRatePerSecond,
			LoginBurst:         app.config.LoginBurst,
			Metrics:            app.metrics,
		})

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := metrics.NewHTTPServer(app.config.MetricsAddr, app.registry, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or one of
// the listeners fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}
