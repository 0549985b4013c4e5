package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ticktock/export"
	"ticktock/service"
)

var (
	exportEmail  string
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a user's timesheets as csv or xlsx",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportEmail, "email", "", "User email")
	exportCmd.Flags().StringVar(&exportFormat, "format", export.FormatCSV, "Output format: csv, xlsx")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
	exportCmd.MarkFlagRequired("email")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if exportFormat != export.FormatCSV && exportFormat != export.FormatXLSX {
		return fmt.Errorf("unsupported format %q", exportFormat)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	user, err := store.UserByEmail(ctx, exportEmail)
	if err != nil {
		return fmt.Errorf("look up %s: %w", exportEmail, err)
	}

	rows, err := service.NewTimesheets(store).ExportRows(ctx, user.ID, service.Filter{})
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return export.Write(w, exportFormat, rows)
}
