package bump

import (
	"encoding/json"
	"fmt"

	"github.com/ItsHariii/bump-cli/internal/model"
	"github.com/ItsHariii/bump-cli/internal/service"
	"github.com/spf13/cobra"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search foods and show the ids that log add expects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDeps(cmd.Context(), func(deps *service.Deps) error {
			results, err := service.SearchFoods(cmd.Context(), deps, args[0])
			if err != nil {
				return err
			}
			if searchJSON {
				b, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal search json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No foods found")
				return nil
			}
			for _, r := range results {
				name := r.Name
				if r.Brand != "" {
					name += " (" + r.Brand + ")"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", r.ID, name)
				fmt.Fprintf(cmd.OutOrStdout(), "  %.0f kcal per %.0f %s | P %.1fg | C %.1fg | F %.1fg\n",
					r.Calories, r.ServingSize, r.ServingUnit, r.Protein, r.Carbs, r.Fat)
				if r.SafetyStatus != "" && r.SafetyStatus != model.SafetySafe {
					note := r.SafetyStatus
					if r.SafetyNotes != "" {
						note += ": " + r.SafetyNotes
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  Safety: %s\n", note)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output raw JSON")
}
