package bump

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ItsHariii/bump-cli/internal/pregnancy"
	"github.com/ItsHariii/bump-cli/internal/service"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show pregnancy week, trimester, and countdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.Progress(sqldb, time.Now())
			if errors.Is(err, service.ErrDueDateNotSet) {
				fmt.Fprintln(cmd.OutOrStdout(), "Due date not set. Run: bump profile --due-date YYYY-MM-DD")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Week %d of 40 (%s)\n", p.Week, pregnancy.TrimesterName(p.Trimester))
			fmt.Fprintf(cmd.OutOrStdout(), "Days along: %d | Days until due: %d\n", p.DaysPassed, p.DaysUntilDue)
			fmt.Fprintf(cmd.OutOrStdout(), "Tip: %s\n", p.WeekTip)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
