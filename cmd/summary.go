package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ticktock/models"
	"ticktock/service"
)

var (
	summaryEmail string
	summaryFrom  string
	summaryTo    string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a user's weekly timesheet status",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryEmail, "email", "", "User email")
	summaryCmd.Flags().StringVar(&summaryFrom, "from", "", "Only weeks overlapping this date onwards (YYYY-MM-DD)")
	summaryCmd.Flags().StringVar(&summaryTo, "to", "", "Only weeks overlapping up to this date (YYYY-MM-DD)")
	summaryCmd.MarkFlagRequired("email")
}

func runSummary(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	user, err := store.UserByEmail(ctx, summaryEmail)
	if err != nil {
		return fmt.Errorf("look up %s: %w", summaryEmail, err)
	}

	res, err := service.NewTimesheets(store).List(ctx, user.ID, service.Filter{StartDate: summaryFrom, EndDate: summaryTo})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s <%s>\n", user.DisplayName(), user.Email)
	for _, ts := range res.Timesheets {
		fmt.Fprintf(out, "  Week %-3d %-32s %-10s %5.1f / %.0fh\n",
			ts.WeekNumber, ts.DateRange, ts.Status, ts.TotalHours, models.ExpectedWeeklyHours)
	}
	fmt.Fprintln(out, strings.Repeat("-", 60))
	fmt.Fprintf(out, "  %d weeks: %d completed, %d incomplete, %d missing\n",
		res.Summary.Total, res.Summary.Completed, res.Summary.Incomplete, res.Summary.Missing)
	return nil
}
