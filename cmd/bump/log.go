package bump

import (
	"fmt"

	"github.com/ItsHariii/bump-cli/internal/model"
	"github.com/ItsHariii/bump-cli/internal/service"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log, update, or delete food entries",
}

var (
	logFoodID   string
	logServing  float64
	logUnit     string
	logQuantity float64
	logMeal     string
	logDate     string
	logTime     string
	logNotes    string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food you ate",
	RunE: func(cmd *cobra.Command, args []string) error {
		consumed, err := parseDateTimeOrNow(logDate, logTime)
		if err != nil {
			return err
		}
		return withDeps(cmd.Context(), func(deps *service.Deps) error {
			queued, err := service.LogFood(cmd.Context(), deps, model.FoodLogInput{
				FoodID:      logFoodID,
				ServingSize: logServing,
				ServingUnit: logUnit,
				Quantity:    logQuantity,
				ConsumedAt:  consumed,
				MealType:    logMeal,
				Notes:       logNotes,
			})
			if err != nil {
				return err
			}
			if queued {
				fmt.Fprintln(cmd.OutOrStdout(), "Offline: food log saved and will sync when you reconnect")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Logged food entry")
			}
			return nil
		})
	},
}

var (
	logUpdateID    string
	logUpdateDate  string
	logUpdateMeal  string
	logUpdateNotes string
)

var logUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a logged food entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]any{}
		if cmd.Flags().Changed("serving") {
			fields["serving_size"] = logServing
		}
		if cmd.Flags().Changed("quantity") {
			fields["quantity"] = logQuantity
		}
		if cmd.Flags().Changed("meal") {
			fields["meal_type"] = logUpdateMeal
		}
		if cmd.Flags().Changed("notes") {
			fields["notes"] = logUpdateNotes
		}
		return withDeps(cmd.Context(), func(deps *service.Deps) error {
			queued, err := service.UpdateFoodLog(cmd.Context(), deps, logUpdateID, logUpdateDate, fields)
			if err != nil {
				return err
			}
			if queued {
				fmt.Fprintln(cmd.OutOrStdout(), "Offline: update saved and will sync when you reconnect")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Updated food entry")
			}
			return nil
		})
	},
}

var logDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a logged food entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDeps(cmd.Context(), func(deps *service.Deps) error {
			queued, err := service.DeleteFoodLog(cmd.Context(), deps, logUpdateID, logUpdateDate)
			if err != nil {
				return err
			}
			if queued {
				fmt.Fprintln(cmd.OutOrStdout(), "Offline: delete saved and will sync when you reconnect")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Deleted food entry")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logUpdateCmd)
	logCmd.AddCommand(logDeleteCmd)

	logAddCmd.Flags().StringVar(&logFoodID, "food-id", "", "ID of the food to log")
	logAddCmd.Flags().Float64Var(&logServing, "serving", 1, "Serving size consumed")
	logAddCmd.Flags().StringVar(&logUnit, "unit", "serving", "Serving unit (g, ml, cup, serving, ...)")
	logAddCmd.Flags().Float64Var(&logQuantity, "quantity", 1, "Number of servings")
	logAddCmd.Flags().StringVar(&logMeal, "meal", "", "Meal type: breakfast, lunch, dinner, snack")
	logAddCmd.Flags().StringVar(&logDate, "date", "", "Date consumed YYYY-MM-DD (default today)")
	logAddCmd.Flags().StringVar(&logTime, "time", "", "Time consumed HH:MM")
	logAddCmd.Flags().StringVar(&logNotes, "notes", "", "Notes")
	_ = logAddCmd.MarkFlagRequired("food-id")

	logUpdateCmd.Flags().StringVar(&logUpdateID, "id", "", "ID of the log entry")
	logUpdateCmd.Flags().StringVar(&logUpdateDate, "date", "", "Date of the entry YYYY-MM-DD")
	logUpdateCmd.Flags().Float64Var(&logServing, "serving", 0, "New serving size")
	logUpdateCmd.Flags().Float64Var(&logQuantity, "quantity", 0, "New quantity")
	logUpdateCmd.Flags().StringVar(&logUpdateMeal, "meal", "", "New meal type")
	logUpdateCmd.Flags().StringVar(&logUpdateNotes, "notes", "", "New notes")
	_ = logUpdateCmd.MarkFlagRequired("id")
	_ = logUpdateCmd.MarkFlagRequired("date")

	logDeleteCmd.Flags().StringVar(&logUpdateID, "id", "", "ID of the log entry")
	logDeleteCmd.Flags().StringVar(&logUpdateDate, "date", "", "Date of the entry YYYY-MM-DD")
	_ = logDeleteCmd.MarkFlagRequired("id")
	_ = logDeleteCmd.MarkFlagRequired("date")
}
