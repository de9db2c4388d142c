package bump

import (
	"fmt"
	"strings"

	"github.com/ItsHariii/bump-cli/internal/model"
	"github.com/ItsHariii/bump-cli/internal/service"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Keep a daily pregnancy journal",
}

var (
	journalDate     string
	journalSymptoms string
	journalMood     int
	journalCravings string
	journalSleep    int
	journalEnergy   int
	journalNotes    string
	journalEntryID  string
)

func journalInput(cmd *cobra.Command) model.JournalEntryInput {
	in := model.JournalEntryInput{
		EntryDate: journalDate,
		Cravings:  journalCravings,
		Notes:     journalNotes,
	}
	if journalSymptoms != "" {
		for _, s := range strings.Split(journalSymptoms, ",") {
			if s = strings.TrimSpace(s); s != "" {
				in.Symptoms = append(in.Symptoms, s)
			}
		}
	}
	if cmd.Flags().Changed("mood") {
		in.Mood = &journalMood
	}
	if cmd.Flags().Changed("sleep") {
		in.SleepQuality = &journalSleep
	}
	if cmd.Flags().Changed("energy") {
		in.EnergyLevel = &journalEnergy
	}
	return in
}

func reportQueued(cmd *cobra.Command, queued bool, did string) {
	if queued {
		fmt.Fprintf(cmd.OutOrStdout(), "Offline: %s saved and will sync when you reconnect\n", did)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", strings.ToUpper(did[:1])+did[1:])
	}
}

var journalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a journal entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrToday(journalDate)
		if err != nil {
			return err
		}
		journalDate = date
		return withDeps(cmd.Context(), func(deps *service.Deps) error {
			queued, err := service.AddJournalEntry(cmd.Context(), deps, journalInput(cmd))
			if err != nil {
				return err
			}
			reportQueued(cmd, queued, "journal entry")
			return nil
		})
	},
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDeps(cmd.Context(), func(deps *service.Deps) error {
			entries, err := service.ListJournal(cmd.Context(), deps)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No journal entries")
				return nil
			}
			for _, e := range entries {
				line := fmt.Sprintf("%s  %s", e.EntryDate, e.ID)
				if e.Mood != nil {
					line += fmt.Sprintf("  mood %d/5", *e.Mood)
				}
				if len(e.Symptoms) > 0 {
					line += "  " + strings.Join(e.Symptoms, ", ")
				}
				if e.Notes != "" {
					line += "  " + e.Notes
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		})
	},
}

var journalUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update a journal entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDeps(cmd.Context(), func(deps *service.Deps) error {
			queued, err := service.UpdateJournalEntry(cmd.Context(), deps, journalEntryID, journalInput(cmd))
			if err != nil {
				return err
			}
			reportQueued(cmd, queued, "journal update")
			return nil
		})
	},
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a journal entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDeps(cmd.Context(), func(deps *service.Deps) error {
			queued, err := service.DeleteJournalEntry(cmd.Context(), deps, journalEntryID)
			if err != nil {
				return err
			}
			reportQueued(cmd, queued, "journal delete")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalUpdateCmd)
	journalCmd.AddCommand(journalDeleteCmd)

	for _, c := range []*cobra.Command{journalAddCmd, journalUpdateCmd} {
		c.Flags().StringVar(&journalDate, "date", "", "Entry date YYYY-MM-DD (default today)")
		c.Flags().StringVar(&journalSymptoms, "symptoms", "", "Comma-separated symptoms")
		c.Flags().IntVar(&journalMood, "mood", 0, "Mood 1-5")
		c.Flags().StringVar(&journalCravings, "cravings", "", "Cravings")
		c.Flags().IntVar(&journalSleep, "sleep", 0, "Sleep quality 1-5")
		c.Flags().IntVar(&journalEnergy, "energy", 0, "Energy level 1-5")
		c.Flags().StringVar(&journalNotes, "notes", "", "Notes")
	}
	journalUpdateCmd.Flags().StringVar(&journalEntryID, "id", "", "ID of the journal entry")
	_ = journalUpdateCmd.MarkFlagRequired("id")
	journalDeleteCmd.Flags().StringVar(&journalEntryID, "id", "", "ID of the journal entry")
	_ = journalDeleteCmd.MarkFlagRequired("id")
}
