package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how many users, conversations and findings are stored",
		Long: "Report the database size, the number of users, active and soft-deleted conversations, " +
			"stored messages and privacy findings, and per-user turn and conversation counts.",
		Run: runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	if textOutput() {
		fmt.Printf("%s (%d bytes)\n", stats.DBPath, stats.DBSizeBytes)
		fmt.Printf("users: %d  conversations: %d active / %d total  messages: %d  findings: %d\n",
			stats.Users, stats.ActiveConversations, stats.TotalConversations, stats.Messages, stats.Findings)
		for _, u := range stats.Sessions {
			fmt.Printf("  %s: %d turns, %d conversations, updated %s\n",
				u.UserID, u.Turns, u.Conversations, u.UpdatedAt.Format(time.RFC3339))
		}
		return
	}
	printJSON(stats)
}
