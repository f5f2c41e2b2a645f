package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/companion/internal/style"
	"github.com/rcliao/companion/internal/traits"
)

func init() {
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Score traits and style of a text without saving anything",
		Long:  "Analyze a text passed as a positional arg or piped via stdin. Nothing is stored.",
		Run:   runAnalyze,
	}

	RootCmd.AddCommand(cmd)
}

type analysisOutput struct {
	Traits  traits.Result  `json:"traits"`
	Summary string         `json:"summary"`
	Style   style.Analysis `json:"style"`
}

func runAnalyze(cmd *cobra.Command, args []string) {
	in := strings.TrimSpace(readInput(args))
	if in == "" {
		exitErr("analyze", fmt.Errorf("text is required (positional arg or stdin)"))
	}

	r := traits.Score(in)
	out := analysisOutput{
		Traits:  r,
		Summary: traits.Summary(r.Traits),
		Style:   style.Analyze(in),
	}

	if textOutput() {
		fmt.Println(out.Summary)
		if len(out.Style.Topics) > 0 {
			fmt.Printf("Topics: %s\n", strings.Join(out.Style.Topics, ", "))
		}
		fmt.Printf("Questions: %d, sarcasm: %.2f, sentiment: %.2f\n",
			out.Style.Questions.Total, out.Style.SarcasmLikelihood, r.Features.SentimentRatio)
		return
	}
	printJSON(out)
}
