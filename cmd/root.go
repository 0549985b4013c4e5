package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ticktock/config"
)

var (
	cfg       *config.Config
	storeFlag string
)

var rootCmd = &cobra.Command{
	Use:   "ticktock",
	Short: "ticktock - weekly employee timesheets",
	Long: `ticktock tracks time entries per week and derives each week's
completion status from the hours logged against a 40 hour target.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if storeFlag != "" {
			cfg.Store = storeFlag
		}
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Backing store: memory, postgres, sqlite (default from STORE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
}
