package bump

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ItsHariii/bump-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	profileDueDate string
	profileSync    bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileDueDate != "" {
			return withDB(func(sqldb *sql.DB) error {
				if err := service.SaveDueDate(sqldb, profileDueDate); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Due date set to %s\n", profileDueDate)
				return nil
			})
		}
		if profileSync {
			return withDeps(cmd.Context(), func(deps *service.Deps) error {
				profile, err := service.SyncProfile(cmd.Context(), deps)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Synced profile for %s\n", profile.Email)
				if profile.DueDate != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Due date: %s\n", profile.DueDate)
				}
				return nil
			})
		}
		return withDB(func(sqldb *sql.DB) error {
			due, err := service.DueDate(sqldb)
			if errors.Is(err, service.ErrDueDateNotSet) {
				fmt.Fprintln(cmd.OutOrStdout(), "Due date not set. Use --due-date YYYY-MM-DD or --sync")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Due date: %s\n", due.Format("2006-01-02"))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().StringVar(&profileDueDate, "due-date", "", "Set your due date YYYY-MM-DD")
	profileCmd.Flags().BoolVar(&profileSync, "sync", false, "Fetch profile from the backend")
}
