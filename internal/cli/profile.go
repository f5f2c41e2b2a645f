package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the learned communication style",
		Run:   runProfile,
	}

	RootCmd.AddCommand(cmd)
}

func runProfile(cmd *cobra.Command, args []string) {
	sess, s := openSession(cmd)
	defer s.Close()

	sum := sess.Style()
	if !textOutput() {
		printJSON(sum)
		return
	}

	p := sum.Patterns
	fmt.Printf("Messages analyzed: %d (confidence %.2f)\n", sum.MessagesAnalyzed, sum.Confidence)
	fmt.Printf("Vocabulary:      %.2f\n", p.VocabularyLevel)
	fmt.Printf("Sentence length: %.2f\n", p.SentenceLengthPreference)
	fmt.Printf("Expressiveness:  %.2f\n", p.EmotionalExpressiveness)
	fmt.Printf("Formality:       %.2f\n", p.FormalityLevel)
	fmt.Printf("Questions:       %.2f\n", p.QuestionFrequency)
	if len(p.TopicInterests) > 0 {
		fmt.Printf("Interests:       %s\n", strings.Join(p.TopicInterests, ", "))
	}
	if t := sum.RecentTrends; t.Trend != "" {
		fmt.Printf("Trend:           %s\n", t.Trend)
	} else {
		fmt.Printf("Formality trend: %s\n", t.Formality)
	}
}
