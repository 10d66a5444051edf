// Package cli implements the spendlog command tree.
package cli

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"spendlog/internal/budget"
	"spendlog/internal/config"
	"spendlog/internal/core"
	"spendlog/internal/kv"
	"spendlog/internal/log"
	"spendlog/internal/store"
)

// App holds the wired components shared by all commands.
type App struct {
	cfg     *config.Config
	logger  *log.Logger
	store   *store.Store
	budgets *budget.Book
	cleanup func() error
}

// NewRootCmd builds the command tree. Components are wired lazily in the
// persistent pre-run so `--help` never touches storage.
func NewRootCmd() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:           "spendlog",
		Short:         "Personal expense log",
		Long:          "spendlog records dated, categorized expenses and reports aggregated views over them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.shutdown()
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newSetCmd(app),
		newRemoveCmd(app),
		newReportCmd(app),
		newChartCmd(app),
		newBudgetCmd(app),
	)
	return root
}

func (a *App) init(cmd *cobra.Command) error {
	// .env is optional in production, same as the environment it mimics.
	_ = godotenv.Load()

	a.cfg = config.Load()
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, _ := a.cfg.SlogLevel()
	a.logger = log.New(log.Config{Level: level, Component: log.ComponentApp})
	log.SetDefault(a.logger)

	adapter, cleanup, err := openBackend(a.cfg, a.logger)
	if err != nil {
		return err
	}
	a.cleanup = cleanup

	a.store = store.New(adapter,
		store.WithLogger(a.logger.WithComponent(log.ComponentStore)),
		store.WithWriteTimeout(a.cfg.WriteTimeout),
	)
	a.store.Hydrate(cmd.Context())
	a.budgets = budget.New(adapter, a.logger)
	return nil
}

func (a *App) shutdown() {
	if a.store != nil {
		a.store.Flush()
	}
	if a.cleanup != nil {
		if err := a.cleanup(); err != nil {
			a.logger.Warn("backend cleanup failed", log.FieldError, err)
		}
	}
}

func openBackend(cfg *config.Config, logger *log.Logger) (kv.Store, func() error, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		s, err := kv.NewSQLite(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("initialized sqlite backend", log.FieldPath, cfg.SQLiteDBPath)
		return s, s.Close, nil
	case config.BackendMemory:
		logger.Info("initialized memory backend")
		return kv.NewMemory(), nil, nil
	default:
		s, err := kv.NewFile(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("initialized file backend", log.FieldPath, cfg.DataDir)
		return s, nil, nil
	}
}

// today is the reference day shared by the range-aware commands.
func today() core.Date {
	return core.DateOf(time.Now().UTC())
}
