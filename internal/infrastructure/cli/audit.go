package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kensho-project/kensho/internal/application"
	"github.com/kensho-project/kensho/internal/infrastructure/storage"
)

var auditVerify bool

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the workspace audit timeline",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, _ := os.Getwd()
		repo := storage.NewFilesystemRepository(cwd)
		audit := application.NewAuditService(repo)

		if auditVerify {
			violations, err := audit.VerifyIntegrity()
			if err != nil {
				return err
			}
			if len(violations) == 0 {
				printSuccess("Audit trail intact")
				return nil
			}
			for _, v := range violations {
				printError("%s", v)
			}
			return NewCLIError("audit trail verification failed", "The events file was modified outside kensho", nil)
		}

		events, err := audit.GetTimeline()
		if err != nil {
			return err
		}
		if len(events) == 0 {
			printInfo("No events recorded yet")
			return nil
		}
		for _, e := range events {
			fmt.Printf("%s  %-18s %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.Actor)
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().BoolVar(&auditVerify, "verify", false, "verify the hash chain of the audit trail")
	RootCmd.AddCommand(auditCmd)
}
