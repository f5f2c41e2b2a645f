package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/companion/internal/traits"
)

func init() {
	cmd := &cobra.Command{
		Use:   "persona",
		Short: "Show the companion's persona and relationship stage",
		Run:   runPersona,
	}

	RootCmd.AddCommand(cmd)
}

func runPersona(cmd *cobra.Command, args []string) {
	sess, s := openSession(cmd)
	defer s.Close()

	sum := sess.Persona()
	if !textOutput() {
		printJSON(sum)
		return
	}

	fmt.Println(sum.StageDescription)
	fmt.Printf("Trust: %.2f after %d conversations\n", sum.TrustLevel, sum.ConversationsCount)
	fmt.Println(traits.Summary(sum.Persona.Traits))
}
