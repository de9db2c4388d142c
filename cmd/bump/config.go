package bump

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/ItsHariii/bump-cli/internal/service"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage bump local configuration",
}

var (
	cfgAPIURL    string
	cfgAuthToken string
	cfgLogLevel  string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			updates := 0
			if cmd.Flags().Changed("api-url") {
				if err := service.SetConfig(sqldb, service.ConfigAPIURL, cfgAPIURL); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("auth-token") {
				if err := service.SetConfig(sqldb, service.ConfigAuthToken, cfgAuthToken); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("level") {
				if err := service.SetConfig(sqldb, service.ConfigLogLevel, cfgLogLevel); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("nothing to set: pass --api-url, --auth-token, or --level")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d setting(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			value, ok, err := service.GetConfig(sqldb, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("config key %q is not set", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		})
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			values, err := service.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(values))
			for k := range values {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				value := values[k]
				if k == service.ConfigAuthToken && value != "" {
					value = "(set)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, value)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)

	configSetCmd.Flags().StringVar(&cfgAPIURL, "api-url", "", "Backend API base URL")
	configSetCmd.Flags().StringVar(&cfgAuthToken, "auth-token", "", "Bearer token for the backend")
	configSetCmd.Flags().StringVar(&cfgLogLevel, "level", "", "Log level: debug, info, warn, error")
}
