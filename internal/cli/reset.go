package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the learned style and persona",
		Long: "Reset the current user's style profile, history and persona. Conversations are kept " +
			"but hidden; --hard deletes them along with privacy research.",
		Run: runReset,
	}

	cmd.Flags().Bool("hard", false, "Also delete conversations and research")

	RootCmd.AddCommand(cmd)
}

func runReset(cmd *cobra.Command, args []string) {
	hard, _ := cmd.Flags().GetBool("hard")

	sess, s := openSession(cmd)
	defer s.Close()

	if err := sess.Reset(cmd.Context(), hard); err != nil {
		exitErr("reset", err)
	}

	fmt.Printf(`{"ok":true,"user":%q,"hard":%t}`+"\n", sess.UserID(), hard)
}
