package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/financas-dev/financas/internal/feed"
	"github.com/financas-dev/financas/internal/pipeline"
)

func newImportCommand() *cobra.Command {
	var feedName string
	var onConflict string
	var inbox string

	cmd := &cobra.Command{
		Use:   "import [file.csv]",
		Short: "Import a statement CSV into the monthly store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			if feedName == "" {
				feedName = e.cfg.DefaultFeed
			}
			policy, err := pipeline.ParseConflictPolicy(onConflict)
			if err != nil {
				return err
			}

			if inbox != "" {
				return runImportInbox(e, feedName, inbox, policy)
			}
			if len(args) == 0 {
				return fmt.Errorf("provide a CSV file or --inbox directory")
			}
			return runImportFile(e, feedName, args[0], policy)
		},
	}

	cmd.Flags().StringVar(&feedName, "feed", "", "feed format (card or bank; default from config)")
	cmd.Flags().StringVar(&onConflict, "on-conflict", "ask", "what to do when the month is already loaded: ask, append or replace")
	cmd.Flags().StringVar(&inbox, "inbox", "", "import every CSV in a directory, moving processed files aside")

	return cmd
}

func runImportFile(e *env, feedName, path string, policy pipeline.ConflictPolicy) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	res, err := e.pipeline.Import(feedName, f, policy)
	switch {
	case errors.Is(err, pipeline.ErrAlreadyImported):
		fmt.Printf("Skipped %s: this file was already imported.\n", path)
		return nil
	case errors.Is(err, pipeline.ErrMonthConflict):
		return fmt.Errorf("%w; rerun with --on-conflict append or --on-conflict replace", err)
	case err != nil:
		return err
	}

	verb := "merged into"
	if res.Replaced {
		verb = "replaced"
	}
	fmt.Printf("Imported %d transactions %s %s (%d rows skipped)\n", res.Valid, verb, res.BucketKey, res.Skipped)
	return nil
}

func runImportInbox(e *env, feedName, dir string, policy pipeline.ConflictPolicy) error {
	files, err := feed.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No CSV files waiting in", dir)
		return nil
	}

	for _, file := range files {
		if err := runImportFile(e, feedName, file.Path, policy); err != nil {
			return fmt.Errorf("%s: %w", file.Name, err)
		}
		if err := feed.MarkProcessed(dir, file.Name); err != nil {
			return err
		}
	}
	return nil
}
