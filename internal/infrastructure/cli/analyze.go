package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/kensho-project/kensho/internal/application"
	"github.com/kensho-project/kensho/internal/infrastructure/annotation"
	"github.com/kensho-project/kensho/internal/infrastructure/storage"
)

var (
	analyzeTitle      string
	analyzeShowReport bool
	analyzeJSON       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [document]",
	Short: "Analyze a project document into a structured plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		// #nosec G304 -- User-supplied document path is the point of this command
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}

		title := analyzeTitle
		if title == "" {
			title = titleFromFilename(path)
		}

		provider, err := annotation.NewProseProvider()
		if err != nil {
			// Model load failure is fatal by contract; nothing is retried.
			return NewCLIError("annotation engine failed to start", "Reinstall kensho: the bundled language model is broken", err)
		}

		cwd, _ := os.Getwd()
		repo := storage.NewFilesystemRepository(cwd)
		if err := repo.Initialize(); err != nil {
			return err
		}

		audit := application.NewAuditService(repo)
		service := application.NewAnalysisService(provider, audit, hclog.Default())

		p, err := service.Analyze(cmd.Context(), string(data), title)
		if err != nil {
			return MapError(err)
		}

		if err := repo.SavePlan(p); err != nil {
			return fmt.Errorf("failed to store plan: %w", err)
		}
		if err := repo.SaveReport(p.Report); err != nil {
			return fmt.Errorf("failed to store report: %w", err)
		}

		if analyzeJSON {
			out, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode plan: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		printSuccess("Analyzed %q: %d group(s), %d task(s), %d requirement(s), %d team member(s)",
			p.ProjectName, len(p.ThematicGroups), p.TaskCount(), len(p.Requirements), len(p.Team))
		for _, g := range p.ThematicGroups {
			printInfo("  %s — %d task(s)", g.Name, len(g.Tasks))
		}
		if len(p.Skipped) > 0 {
			printInfo("  %d sentence(s) skipped", len(p.Skipped))
		}

		if analyzeShowReport {
			fmt.Println()
			fmt.Println(p.Report)
		}
		return nil
	},
}

// titleFromFilename derives a project title from the document filename:
// stem, underscores to spaces, words capitalized.
func titleFromFilename(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := strings.Fields(strings.ReplaceAll(stem, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return "Untitled Project"
	}
	return strings.Join(words, " ")
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "project title (default: derived from filename)")
	analyzeCmd.Flags().BoolVar(&analyzeShowReport, "report", false, "print the narrative report after analysis")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the plan as JSON")
	RootCmd.AddCommand(analyzeCmd)
}
