package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/companion/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search conversations by keyword",
		Long:  "Search your messages and the companion's replies for matching text.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.SearchConversations(cmd.Context(), store.SearchParams{
		UserID: getUser(),
		Query:  query,
		Limit:  limit,
	})
	if err != nil {
		exitErr("search", err)
	}
	printConversations(results)
}
