package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/companion/internal/companion"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the companion",
		Long: "Send one message as a positional arg, pipe messages one per line, " +
			"or run with neither for an interactive conversation (type 'quit' to leave).",
		Run: runChat,
	}

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	sess, s := openSession(cmd)
	defer s.Close()

	switch {
	case len(args) > 0:
		chatTurn(cmd, sess, strings.Join(args, " "))
	case stdinPiped():
		msgs, err := lines(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
		for _, m := range msgs {
			chatTurn(cmd, sess, m)
		}
	default:
		chatLoop(cmd, sess)
	}
}

func chatTurn(cmd *cobra.Command, sess *companion.Session, msg string) {
	turn, err := sess.Chat(cmd.Context(), msg)
	if err != nil {
		exitErr("chat", err)
	}
	if textOutput() {
		fmt.Printf("companion: %s\n", turn.Response)
		return
	}
	b, _ := json.Marshal(turn)
	fmt.Println(string(b))
}

func chatLoop(cmd *cobra.Command, sess *companion.Session) {
	p := sess.Persona()
	fmt.Printf("companion (%s). Type 'quit' to leave.\n", p.DevelopmentStage)

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !in.Scan() {
			fmt.Println()
			return
		}
		msg := strings.TrimSpace(in.Text())
		switch msg {
		case "":
			continue
		case "quit", "exit":
			return
		}
		turn, err := sess.Chat(cmd.Context(), msg)
		if err != nil {
			exitErr("chat", err)
		}
		fmt.Printf("companion: %s\n", turn.Response)
	}
}
