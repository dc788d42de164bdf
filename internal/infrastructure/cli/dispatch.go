package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/kensho-project/kensho/internal/application"
	"github.com/kensho-project/kensho/internal/domain/plan"
	"github.com/kensho-project/kensho/internal/infrastructure/config"
	"github.com/kensho-project/kensho/internal/infrastructure/plugin"
	"github.com/kensho-project/kensho/internal/infrastructure/storage"
)

var dispatchTargets = []string{"jira", "asana", "confluence", "trello", "slack"}

var (
	dispatchInput      string
	dispatchPluginPath string
)

var dispatchCmd = &cobra.Command{
	Use:       "dispatch [target]",
	Short:     "Publish the analyzed plan to an external system via its connector plugin",
	Args:      cobra.ExactArgs(1),
	ValidArgs: dispatchTargets,
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if !validTarget(target) {
			return NewCLIError(
				fmt.Sprintf("unknown target %q", target),
				fmt.Sprintf("Valid targets: %v", dispatchTargets),
				nil,
			)
		}

		cwd, _ := os.Getwd()
		repo := storage.NewFilesystemRepository(cwd)

		p, err := loadDispatchPlan(repo)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConnectors(cwd)
		if err != nil {
			return err
		}

		pluginPath, err := resolvePluginPath(target, dispatchPluginPath)
		if err != nil {
			return MapError(err)
		}

		loader := plugin.NewLoader()
		defer loader.Cleanup()

		publisher, err := loader.Load(pluginPath)
		if err != nil {
			return fmt.Errorf("failed to load connector plugin: %w", err)
		}

		audit := application.NewAuditService(repo)
		service := application.NewDispatchService(audit, hclog.Default())

		result, err := service.Dispatch(publisher, p, cfg.Settings(target))
		if err != nil {
			return MapError(err)
		}

		printSuccess("Dispatched %q to %s: %d epic(s), %d issue(s)",
			p.ProjectName, result.Target, result.EpicsCreated, result.IssuesCreated)
		for _, note := range result.Notes {
			printInfo("  %s", note)
		}
		for _, e := range result.Errors {
			printError("  %s", e)
		}
		if len(result.Errors) > 0 {
			return NewCLIError("dispatch finished with errors", "Inspect the connector output above", nil)
		}
		return nil
	},
}

func validTarget(target string) bool {
	for _, t := range dispatchTargets {
		if t == target {
			return true
		}
	}
	return false
}

// loadDispatchPlan reads the plan either from --input or from the workspace.
func loadDispatchPlan(repo *storage.FilesystemRepository) (*plan.Plan, error) {
	if dispatchInput == "" {
		p, err := repo.LoadPlan()
		if err != nil {
			return nil, NewCLIError("no analyzed plan found", "Run 'kensho analyze <document>' first, or pass --input", err)
		}
		return p, nil
	}

	// #nosec G304 -- User-supplied plan path is the point of --input
	data, err := os.ReadFile(dispatchInput)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}
	var p plan.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid plan JSON: %w", err)
	}
	return &p, nil
}

// resolvePluginPath finds the connector binary: an explicit --plugin path,
// then a sibling of the kensho executable, then the PATH.
func resolvePluginPath(target, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	name := "kensho-plugin-" + target
	if self, err := os.Executable(); err == nil {
		sibling := filepath.Join(filepath.Dir(self), name)
		if _, err := os.Stat(sibling); err == nil {
			return sibling, nil
		}
	}

	if found, err := exec.LookPath(name); err == nil {
		return found, nil
	}
	return "", NewCLIError(
		fmt.Sprintf("connector plugin %q not found", name),
		"Install the plugin next to the kensho binary or pass --plugin",
		nil,
	)
}

func init() {
	dispatchCmd.Flags().StringVar(&dispatchInput, "input", "", "path to a plan JSON file (default: the workspace plan)")
	dispatchCmd.Flags().StringVar(&dispatchPluginPath, "plugin", "", "explicit path to the connector plugin binary")
	RootCmd.AddCommand(dispatchCmd)
}
