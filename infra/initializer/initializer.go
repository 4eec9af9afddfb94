package initializer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/amirasaad/ledger/infra"
	infracache "github.com/amirasaad/ledger/infra/cache"
	infracustomer "github.com/amirasaad/ledger/infra/repository/customer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/idgen"
	"gorm.io/gorm"
)

type options struct {
	logOutput io.Writer
}

// Option customizes InitializeDependencies.
type Option func(*options)

// WithLogOutput sends process logs to w instead of stdout.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// InitializeDependencies initializes all the application dependencies.
// On error, anything already opened is released before returning.
func InitializeDependencies(cfg *config.App, opts ...Option) (
	deps *app.Deps,
	err error,
) {
	o := options{logOutput: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	deps = &app.Deps{IDs: idgen.Default, Clock: time.Now}
	logger := newLogger(o.logOutput, cfg.Log)
	deps.Logger = logger
	defer func() {
		if err != nil {
			_ = deps.Close()
			deps = nil
		}
	}()

	deps.Location, err = cfg.Ledger.Location()
	if err != nil {
		return deps, fmt.Errorf("invalid LEDGER_TIMEZONE %q: %w", cfg.Ledger.TimeZone, err)
	}

	if err = initStore(deps, cfg); err != nil {
		logger.Error("Failed to initialize store", "driver", cfg.Store.Driver, "error", err)
		return deps, err
	}

	if err = initDenylist(deps, cfg); err != nil {
		logger.Error("Failed to initialize token denylist", "error", err)
		return deps, err
	}

	logger.Info("Dependencies initialized",
		"store_driver", cfg.Store.Driver,
		"timezone", deps.Location.String(),
		"redis", cfg.Redis.URL != "",
	)
	return deps, nil
}

func initStore(deps *app.Deps, cfg *config.App) error {
	if cfg.Store.Driver == "" || cfg.Store.Driver == "memory" {
		deps.Store = infracustomer.NewMemory()
		return nil
	}
	db, err := infra.NewDBConnection(cfg.Store, cfg.Env)
	if err != nil {
		return err
	}
	deps.Closers = append(deps.Closers, dbCloser{db})
	if err := infracustomer.Migrate(db); err != nil {
		return fmt.Errorf("migrate customer tables: %w", err)
	}
	deps.Store = infracustomer.New(db)
	return nil
}

func initDenylist(deps *app.Deps, cfg *config.App) error {
	if cfg.Redis.URL == "" {
		d := infracache.NewMemoryDenylist(5 * time.Minute)
		deps.Denylist = d
		deps.Closers = append(deps.Closers, d)
		return nil
	}
	d, err := infracache.NewRedisDenylist(cfg.Redis.URL, cfg.Redis.KeyPrefix, deps.Logger)
	if err != nil {
		return err
	}
	deps.Closers = append(deps.Closers, d)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.Ping(ctx); err != nil {
		return fmt.Errorf("redis unreachable: %w", err)
	}
	deps.Denylist = d
	return nil
}

type dbCloser struct{ db *gorm.DB }

func (c dbCloser) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ io.Closer = dbCloser{}
