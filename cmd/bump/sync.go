package bump

import (
	"fmt"
	"time"

	"github.com/ItsHariii/bump-cli/internal/service"
	"github.com/spf13/cobra"
)

var syncRequeueDead bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Show and replay offline changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDeps(cmd.Context(), func(deps *service.Deps) error {
			if syncRequeueDead {
				n, err := deps.Queue.RequeueDead()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Requeued %d failed change(s)\n", n)
			}

			// The reconnect edge inside withDeps already replayed once if
			// we just came online; this covers the explicit invocation.
			if err := deps.Queue.ReplayAll(cmd.Context()); err != nil {
				return err
			}

			pending, err := deps.Queue.Pending()
			if err != nil {
				return err
			}
			dead, err := deps.Queue.Dead()
			if err != nil {
				return err
			}

			if !deps.Online() {
				fmt.Fprintln(cmd.OutOrStdout(), "Status: offline")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Status: online")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pending changes: %d\n", len(pending))
			for _, a := range pending {
				created := time.UnixMilli(a.CreatedAt).Local().Format("2006-01-02 15:04")
				fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s %s (queued %s, attempts %d)\n",
					a.Type, a.Method, a.Endpoint, created, a.Attempts)
			}
			if len(dead) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Failed changes needing attention: %d (rerun with --requeue-dead to retry)\n", len(dead))
				for _, d := range dead {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s %s: %s\n", d.Type, d.Method, d.Endpoint, d.Reason)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().BoolVar(&syncRequeueDead, "requeue-dead", false, "Move failed changes back onto the queue")
}
