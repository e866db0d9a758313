package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"route-roster-service/internal/adapters/cache"
	"route-roster-service/internal/adapters/repositories"
	"route-roster-service/internal/adapters/schedules"
	"route-roster-service/internal/api"
	"route-roster-service/internal/config"
	"route-roster-service/internal/domain"
	"route-roster-service/internal/platform/db"
	"route-roster-service/internal/platform/logger"
	"route-roster-service/internal/platform/metrics"
	"route-roster-service/internal/platform/obs"
	"route-roster-service/internal/services"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// Service wires the configured adapters behind the ports and serves the API.
type Service struct {
	Config      *config.Config
	DB          *sql.DB
	Rosters     *services.RosterService
	Inspections *repositories.SQLInspectionRepository
	Movements   *repositories.SQLMovementRepository
	Ledger      *services.Ledger
	Metrics     *metrics.Recorder
	Location    *time.Location
	// Now is the clock; tests replace it.
	Now func() time.Time

	redis *redis.Client
	log   logger.Logger
}

// New opens the database, creates the schema and builds the services.
func New(ctx context.Context, cfg *config.Config) (*Service, error) {
	if err := logger.SetLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logg := logger.New("service")
	obs.SetLogger(logger.New("obs"))

	rec, err := metrics.New(nil)
	if err != nil {
		return nil, err
	}

	conn, err := db.Open(cfg.Storage.Backend, cfg.Storage.DSN())
	if err != nil {
		return nil, err
	}
	if err := repositories.InitSchema(ctx, conn, cfg.Storage.Backend); err != nil {
		_ = conn.Close()
		return nil, err
	}

	s := &Service{
		Config:      cfg,
		DB:          conn,
		Inspections: repositories.NewSQLInspectionRepository(conn, cfg.Storage.Backend),
		Movements:   repositories.NewSQLMovementRepository(conn, cfg.Storage.Backend),
		Metrics:     rec,
		Location:    cfg.Roster.Location(),
		Now:         time.Now,
		log:         logg,
	}
	s.Ledger = &services.Ledger{Repo: s.Movements, UnitCost: cfg.Signs.UnitCost}
	s.Rosters, err = NewRosterService(cfg, rec)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if cfg.Cache.Enabled() {
		s.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := s.redis.Ping(pingCtx).Err(); err != nil {
			logg.Warnf("redis %s unreachable, roster cache will miss: %v", cfg.Cache.RedisAddr, err)
		}
		cancel()
		s.Rosters.Cache = cache.NewRedisRosterCache(s.redis)
	}

	return s, nil
}

// NewRosterService builds the roster service from the schedule table, without
// a cache. rec may be nil.
func NewRosterService(cfg *config.Config, rec *metrics.Recorder) (*services.RosterService, error) {
	list, err := cfg.Schedules()
	if err != nil {
		return nil, fmt.Errorf("schedules: %w", err)
	}
	source, err := schedules.NewStaticSource(list)
	if err != nil {
		return nil, fmt.Errorf("schedules: %w", err)
	}
	locale, err := services.LookupLocale(cfg.Roster.Locale)
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}

	return &services.RosterService{
		Source:   source,
		CacheTTL: cfg.Cache.TTL(),
		Policy: domain.WindowPolicy{
			LookbackDays:  cfg.Roster.LookbackDays,
			LookaheadDays: cfg.Roster.LookaheadDays,
			MaxDays:       cfg.Roster.MaxWindowDays,
		},
		Locale:  locale,
		Metrics: rec,
		Log:     logger.New("roster"),
	}, nil
}

// Today is the current calendar day in the configured zone.
func (s *Service) Today() domain.Date {
	return domain.DateOf(s.Now().In(s.Location))
}

// Handler returns the HTTP API.
func (s *Service) Handler() http.Handler {
	return api.NewRouter(api.Deps{
		Rosters:     s.Rosters,
		Inspections: s.Inspections,
		Ledger:      s.Ledger,
		Metrics:     s.Metrics,
		Location:    s.Location,
		Now:         s.Now,
		Log:         logger.New("http"),
	})
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Config.Server.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      s.Config.Server.WriteTimeout(),
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Infof("server listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout())
		defer cancel()
		s.log.Infof("server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// Close releases the database and the cache client.
func (s *Service) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.DB != nil {
		errs = append(errs, s.DB.Close())
	}
	return errors.Join(errs...)
}
