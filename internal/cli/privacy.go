package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/companion/internal/privacy"
)

func init() {
	research := &cobra.Command{
		Use:   "research",
		Short: "Research your digital footprint",
		Long: "Build footprint search queries from your details, assess what is publicly visible and " +
			"recommend actions. Without --name, shows the last saved research.",
		Run: runResearch,
	}
	research.Flags().String("name", "", "Your full name")
	research.Flags().Int("age", 0, "Your age")
	research.Flags().String("location", "", "Your city or region")
	research.Flags().Bool("report", false, "Print a markdown report instead of JSON")
	research.Flags().Bool("queries", false, "Include the generated search queries")
	research.Flags().Bool("monitor", false, "Check for new mentions since the last research")

	tips := &cobra.Command{
		Use:   "tips [category]",
		Short: "Privacy tips (general, social_media, passwords, data_brokers)",
		Args:  cobra.MaximumNArgs(1),
		Run:   runTips,
	}

	plan := &cobra.Command{
		Use:   "plan",
		Short: "Build a privacy action plan",
		Run:   runPlan,
	}
	plan.Flags().String("time", "medium", "Time you can commit: low, medium, high")
	plan.Flags().String("tech", "medium", "Comfort with technology: low, medium, high")
	plan.Flags().String("priority", "medium", "How much privacy matters to you: low, medium, high")

	timeline := &cobra.Command{
		Use:   "timeline",
		Short: "Place your youth against the rise of social platforms",
		Run:   runTimeline,
	}
	timeline.Flags().Int("age", 0, "Your age (required)")
	timeline.MarkFlagRequired("age")

	RootCmd.AddCommand(research, tips, plan, timeline)
}

type monitorOutput struct {
	Subject     string            `json:"subject"`
	NewMentions []privacy.Finding `json:"new_mentions"`
}

type researchOutput struct {
	Status  *privacy.Status `json:"status,omitempty"`
	Queries []string        `json:"queries,omitempty"`
	privacy.Results
}

func runResearch(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	age, _ := cmd.Flags().GetInt("age")
	location, _ := cmd.Flags().GetString("location")
	report, _ := cmd.Flags().GetBool("report")
	withQueries, _ := cmd.Flags().GetBool("queries")
	monitor, _ := cmd.Flags().GetBool("monitor")

	sess, s := openSession(cmd)
	defer s.Close()

	g := sess.Guardian()
	var out researchOutput
	if name = strings.TrimSpace(name); name != "" {
		if age < 0 {
			exitErr("research", fmt.Errorf("age must not be negative"))
		}
		st, err := sess.Research(cmd.Context(), privacy.UserInfo{Name: name, Age: age, Location: location})
		if err != nil {
			exitErr("research", err)
		}
		out.Status = &st
		if withQueries {
			out.Queries = g.Queries()
		}
	} else if g.Info().Name == "" {
		exitErr("research", fmt.Errorf("no research yet: run with --name"))
	}

	if monitor {
		info := g.Info()
		mentions := g.MonitorNewMentions(info)
		if textOutput() {
			fmt.Printf("%d new mentions of %s.\n", len(mentions), info.Name)
			return
		}
		printJSON(monitorOutput{Subject: info.Name, NewMentions: mentions})
		return
	}

	if report || textOutput() {
		fmt.Print(g.Report())
		return
	}
	out.Results = g.Results()
	printJSON(out)
}

func runTips(cmd *cobra.Command, args []string) {
	category := privacy.TipsGeneral
	if len(args) > 0 {
		category = args[0]
	}
	tips := privacy.Tips(category)
	if textOutput() {
		for _, t := range tips {
			fmt.Printf("- %s\n", t)
		}
		return
	}
	printJSON(tips)
}

func runPlan(cmd *cobra.Command, args []string) {
	t, _ := cmd.Flags().GetString("time")
	tech, _ := cmd.Flags().GetString("tech")
	priority, _ := cmd.Flags().GetString("priority")

	plan := privacy.ActionPlan(privacy.Preferences{
		TimeCommitment:  t,
		TechComfort:     tech,
		PrivacyPriority: priority,
	})
	if textOutput() {
		fmt.Printf("Estimated time: %s\n", plan.EstimatedTime)
		for _, a := range plan.Immediate {
			fmt.Printf("- %s\n", a)
		}
		return
	}
	printJSON(plan)
}

func runTimeline(cmd *cobra.Command, args []string) {
	age, _ := cmd.Flags().GetInt("age")
	if age <= 0 {
		exitErr("timeline", fmt.Errorf("age must be positive"))
	}

	tl := privacy.BuildTimeline(age, time.Now())
	if textOutput() {
		fmt.Printf("Born %d (%s): %s\n", tl.BirthYear, tl.DigitalEra.Name, tl.DigitalEra.Context)
		fmt.Printf("High school %d-%d, college %d-%d\n",
			tl.HighSchoolYears.From, tl.HighSchoolYears.To, tl.CollegeYears.From, tl.CollegeYears.To)
		if len(tl.YouthPlatforms) > 0 {
			fmt.Printf("Platforms of your youth: %s\n", strings.Join(tl.YouthPlatforms, ", "))
		}
		return
	}
	printJSON(tl)
}
