// Package cli implements the companion CLI commands.
package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rcliao/companion/internal/companion"
	"github.com/rcliao/companion/internal/config"
	"github.com/rcliao/companion/internal/logging"
	"github.com/rcliao/companion/internal/store"
)

var (
	dbPath     string
	userFlag   string
	formatFlag string

	cfg    config.Config
	logger = zerolog.Nop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "companion",
	Short: "A companion that learns how you talk",
	Long: "A local companion that scores personality traits, learns your communication style, " +
		"grows its own persona alongside yours and keeps an eye on your digital privacy. SQLite-backed, single binary.",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $COMPANION_DB or ~/.companion/companion.db)")
	RootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "User id (default: $COMPANION_USER or \"default\")")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
	RootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default: $COMPANION_LOG_LEVEL or info)")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfg, err = config.Load(); err != nil {
		return err
	}
	level := cfg.LogLevel
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		level = l
	}
	if logger, err = logging.New(os.Stderr, level, cfg.LogFormat); err != nil {
		return err
	}
	if formatFlag != "json" && formatFlag != "text" {
		return fmt.Errorf("unknown format %q: want json or text", formatFlag)
	}
	logger.Debug().Str("db", getDBPath()).Str("user", getUser()).Str("cmd", cmd.Name()).Msg("starting")
	return nil
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if cfg.DBPath != "" {
		return cfg.DBPath
	}
	return config.DefaultDBPath()
}

func getUser() string {
	if userFlag != "" {
		return userFlag
	}
	if cfg.UserID != "" {
		return cfg.UserID
	}
	return "default"
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

// openSession opens the store and resumes the current user's session.
func openSession(cmd *cobra.Command) (*companion.Session, *store.SQLiteStore) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	sess, err := companion.Open(cmd.Context(), s, getUser(), companion.WithLogger(logger))
	if err != nil {
		s.Close()
		exitErr("open session", err)
	}
	return sess, s
}

func textOutput() bool {
	return formatFlag == "text"
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// stdinPiped reports whether stdin is a pipe or file rather than a terminal.
func stdinPiped() bool {
	stat, err := os.Stdin.Stat()
	return err == nil && stat.Mode()&os.ModeCharDevice == 0
}

// readInput joins the positional args, or reads stdin when there are none
// and stdin is piped.
func readInput(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	if stdinPiped() {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
		return string(b)
	}
	return ""
}

// lines returns the non-blank lines of r.
func lines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" {
			out = append(out, l)
		}
	}
	return out, sc.Err()
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
