package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/kensho-project/kensho/internal/application"
	"github.com/kensho-project/kensho/internal/infrastructure/annotation"
	"github.com/kensho-project/kensho/internal/infrastructure/storage"
	"github.com/kensho-project/kensho/internal/infrastructure/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and analyze documents as they arrive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return NewCLIError(fmt.Sprintf("%q is not a directory", dir), "Pass the inbox directory to watch", err)
		}

		// One provider for the whole watch session: the model loads once.
		provider, err := annotation.NewProseProvider()
		if err != nil {
			return NewCLIError("annotation engine failed to start", "Reinstall kensho: the bundled language model is broken", err)
		}

		cwd, _ := os.Getwd()
		repo := storage.NewFilesystemRepository(cwd)
		if err := repo.Initialize(); err != nil {
			return err
		}
		audit := application.NewAuditService(repo)
		service := application.NewAnalysisService(provider, audit, hclog.Default())

		watcher, err := watch.NewInboxWatcher(watchDebounce, func(path string) {
			data, err := os.ReadFile(path) // #nosec G304 -- paths come from the watched inbox
			if err != nil {
				printError("failed to read %s: %v", path, err)
				return
			}

			p, err := service.Analyze(cmd.Context(), string(data), titleFromFilename(path))
			if err != nil {
				printError("analysis of %s failed: %v", path, MapError(err))
				return
			}
			if err := repo.SavePlan(p); err != nil {
				printError("failed to store plan for %s: %v", path, err)
				return
			}
			if err := repo.SaveReport(p.Report); err != nil {
				printError("failed to store report for %s: %v", path, err)
				return
			}
			printSuccess("Analyzed %s: %d group(s), %d task(s)", path, len(p.ThematicGroups), p.TaskCount())
		})
		if err != nil {
			return err
		}

		if err := watcher.Watch(dir); err != nil {
			return err
		}

		printInfo("Watching %s for documents (Ctrl-C to stop)", dir)
		if err := watcher.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "quiet window before a document is analyzed")
	RootCmd.AddCommand(watchCmd)
}
