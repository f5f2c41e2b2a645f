package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/companion/internal/model"
	"github.com/rcliao/companion/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent conversations",
		Run:   runHistory,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results")
	cmd.Flags().Bool("all-users", false, "List conversations of every user")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	allUsers, _ := cmd.Flags().GetBool("all-users")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p := store.ListParams{UserID: getUser(), Limit: limit}
	if allUsers {
		p.UserID = ""
	}
	convos, err := s.ListConversations(cmd.Context(), p)
	if err != nil {
		exitErr("history", err)
	}
	printConversations(convos)
}

func printConversations(convos []model.Conversation) {
	if textOutput() {
		for _, c := range convos {
			fmt.Printf("[%s] %s\n  you: %s\n  companion: %s\n",
				c.CreatedAt.Local().Format("2006-01-02 15:04"), c.UserID, c.Message, c.Response)
		}
		return
	}
	if len(convos) == 0 {
		fmt.Println("[]")
		return
	}
	printJSON(convos)
}
