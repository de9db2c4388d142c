package bump

import (
	"fmt"

	"github.com/ItsHariii/bump-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	todayDate    string
	todayRefresh bool
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's nutrition intake against your targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(todayDate)
		if err != nil {
			return err
		}
		return withDeps(cmd.Context(), func(deps *service.Deps) error {
			data, err := service.Dashboard(cmd.Context(), deps, date, todayRefresh)
			if data == nil {
				return err
			}
			if data.Stale {
				fmt.Fprintf(cmd.OutOrStdout(), "Offline: showing last-known data (%v)\n", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", date)
			if data.Summary != nil {
				s := data.Summary
				fmt.Fprintf(cmd.OutOrStdout(), "Intake: %.0f kcal | P %.1fg | C %.1fg | F %.1fg\n",
					s.TotalCalories, s.ProteinG, s.CarbsG, s.FatG)
				fmt.Fprintf(cmd.OutOrStdout(), "Key micros: iron %.1fmg | calcium %.0fmg | folate %.0fmcg\n",
					s.IronMg, s.CalciumMg, s.FolateMcg)
			}
			if data.Targets != nil {
				t := data.Targets
				fmt.Fprintf(cmd.OutOrStdout(), "Targets: %.0f kcal | P %.1fg | C %.1fg | F %.1fg | water %.0fml\n",
					t.Calories, t.Macros.ProteinG, t.Macros.CarbsG, t.Macros.FatG, t.WaterML)
				if data.Summary != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Remaining: %.0f kcal\n", t.Calories-data.Summary.TotalCalories)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
	todayCmd.Flags().BoolVar(&todayRefresh, "refresh", false, "Bypass the cache and refetch")
}
