package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/financas-dev/financas/internal/config"
	"github.com/financas-dev/financas/internal/gitops"
	"github.com/financas-dev/financas/internal/logger"
	"github.com/financas-dev/financas/internal/model"
	"github.com/financas-dev/financas/internal/store"
)

func newInitCommand() *cobra.Command {
	var autoCommit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new financas project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, autoCommit)
		},
	}

	cmd.Flags().BoolVar(&autoCommit, "git", false, "track the data directory with git")

	return cmd
}

func runInit(dir string, autoCommit bool) error {
	cfg := config.Default()
	cfg.Git.AutoCommit = autoCommit

	dataDir := filepath.Join(dir, cfg.DataDir)
	for _, d := range []string{cfg.DataDir, "inbox", filepath.Join(cfg.DataDir, "logs")} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, "financas.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed an empty rule set so every transaction starts in the
	// fallback category until the user defines rules.
	st := store.New(dataDir, logger.New(false))
	if err := st.SaveCategories([]model.Category{}, false); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}

	if autoCommit {
		if err := gitops.Init(dataDir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.CommitAll(dataDir, "init: new financas store", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Printf("Initialized financas project at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Printf("Initialized financas project at %s\n", dir)
	return nil
}
