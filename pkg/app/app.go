package app

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/cache"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/idgen"
	repo "github.com/amirasaad/ledger/pkg/repository/customer"
	"github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/pkg/service/auth"
	"github.com/amirasaad/ledger/pkg/service/ledger"
)

// Deps contains the infrastructure the services are built on
type Deps struct {
	Store    repo.Repository
	Denylist cache.TokenDenylist
	IDs      idgen.Generator
	Location *time.Location
	Clock    func() time.Time
	Logger   *slog.Logger
	// Closers are released by Close in reverse order.
	Closers []io.Closer
}

// Close releases every resource registered in Closers.
func (d *Deps) Close() error {
	var errs []error
	for i := len(d.Closers) - 1; i >= 0; i-- {
		if err := d.Closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	d.Closers = nil
	return errors.Join(errs...)
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AuthService    *auth.Service
	AccountService *account.Service
	LedgerService  *ledger.Service
}

func New(deps *Deps, cfg *config.App) (*App, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.IDs == nil {
		deps.IDs = idgen.Default
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}

	authSvc, err := auth.NewWithJWT(cfg.Auth, deps.IDs, deps.Denylist, deps.Logger)
	if err != nil {
		return nil, err
	}
	app.AuthService = authSvc
	app.AccountService = account.New(
		deps.Store,
		deps.Logger,
		account.WithIDGenerator(deps.IDs),
		account.WithClock(deps.Clock),
	)
	app.LedgerService = ledger.New(
		deps.Store,
		deps.Logger,
		ledger.WithClock(deps.Clock),
		ledger.WithLocation(deps.Location),
	)
	return app, nil
}
