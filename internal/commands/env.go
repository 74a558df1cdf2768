package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/financas-dev/financas/internal/config"
	"github.com/financas-dev/financas/internal/feed"
	"github.com/financas-dev/financas/internal/logger"
	"github.com/financas-dev/financas/internal/notify"
	"github.com/financas-dev/financas/internal/pipeline"
	"github.com/financas-dev/financas/internal/rules"
	"github.com/financas-dev/financas/internal/store"
)

// env bundles the services a command needs.
type env struct {
	cfg      *config.Config
	store    *store.Store
	pipeline *pipeline.Service
	rules    *rules.Service
	log      zerolog.Logger
}

// newEnv loads config and wires the pipeline for one command
// invocation.
func newEnv(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)
	st := store.New(cfg.DataDir, log)
	broker := notify.NewBroker()

	return &env{
		cfg:      cfg,
		store:    st,
		pipeline: pipeline.NewService(st, feed.DefaultRegistry(), cfg, broker, log),
		rules:    rules.NewService(st, broker),
		log:      log,
	}, nil
}
