package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/companion/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a user's data from JSON",
		Long: "Import data from JSON on stdin. Expects the format produced by export. " +
			"The data is stored under the exported user unless --user is given.",
		Run: runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var exp model.Export
	if err := json.Unmarshal(data, &exp); err != nil {
		exitErr("parse json", err)
	}
	if userFlag != "" {
		exp.UserID = userFlag
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.ImportSession(cmd.Context(), exp)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Printf(`{"ok":true,"user":%q,"imported":%d}`+"\n", exp.UserID, imported)
}
