package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/faculty-scheduler/internal/application"
)

func newBackupCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or import the whole dataset",
	}

	var outPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write all collections to one JSON document",
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := app.Backups.Export(cmd.Context())
			if err != nil {
				return err
			}
			raw, err := json.MarshalIndent(backup, "", "  ")
			if err != nil {
				return err
			}
			if outPath == "" {
				fmt.Fprintln(app.out(), string(raw))
				return nil
			}
			if err := os.WriteFile(outPath, raw, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "exported snapshot %s to %s\n", backup.SnapshotID, outPath)
			return nil
		},
	}
	export.Flags().StringVar(&outPath, "out", "", "output file path (stdout when omitted)")

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replay a backup document into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var backup application.Backup
			if err := json.Unmarshal(raw, &backup); err != nil {
				return fmt.Errorf("parse backup: %w", err)
			}
			issues, err := app.Backups.Import(cmd.Context(), backup)
			if err != nil {
				return err
			}
			if len(issues) > 0 {
				fmt.Fprintln(app.out(), "imported with integrity issues:")
				for _, issue := range issues {
					fmt.Fprintf(app.out(), "  %s\n", issue)
				}
				return nil
			}
			fmt.Fprintln(app.out(), "backup imported")
			return nil
		},
	}

	cmd.AddCommand(export, importCmd)
	return cmd
}
