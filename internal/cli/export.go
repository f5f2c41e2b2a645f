package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a user's data as JSON",
		Long:  "Export the session, active conversations and privacy research of the current user.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	exp, err := s.ExportSession(cmd.Context(), getUser())
	if err != nil {
		exitErr("export", err)
	}

	printJSON(exp)
}
