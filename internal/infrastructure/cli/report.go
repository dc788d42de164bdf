package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kensho-project/kensho/internal/infrastructure/storage"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the narrative report of the last analysis",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		repo := storage.NewFilesystemRepository(cwd)

		report, err := repo.LoadReport()
		if err != nil {
			return NewCLIError("no report found", "Run 'kensho analyze <document>' first", err)
		}
		fmt.Println(report)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(reportCmd)
}
