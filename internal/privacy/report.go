package privacy

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCase builds a fresh Caser per call; Casers are stateful.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Report renders the current results as a markdown document.
func (g *Guardian) Report() string {
	r := g.Results()
	name := g.info.Name
	if name == "" {
		name = "User"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Digital Privacy Report for %s\n\n", name)
	fmt.Fprintf(&b, "## Summary\n%s\n\n", r.Summary)
	fmt.Fprintf(&b, "## Overall Privacy Risk: %s\n\n", strings.ToUpper(string(r.Assessment.OverallRisk)))
	fmt.Fprintf(&b, "## Findings (%d items found)\n\n", r.Assessment.TotalFindings)

	for i, f := range r.Findings {
		fmt.Fprintf(&b, "### %d. %s %s\n", i+1, f.Platform, f.Risk.Marker())
		fmt.Fprintf(&b, "- **Type:** %s\n", humanize(f.Type))
		fmt.Fprintf(&b, "- **Content:** %s\n", f.Content)
		fmt.Fprintf(&b, "- **Privacy Risk:** %s\n", titleCase(string(f.Risk)))
		fmt.Fprintf(&b, "- **Recommendation:** %s\n\n", f.Recommendation)
	}

	b.WriteString("## Recommended Actions\n\n")
	writeActions(&b, "High Priority (Do These First)", r.Recommendations, High)
	writeActions(&b, "Medium Priority (Do When You Have Time)", r.Recommendations, Medium)

	b.WriteString("## Next Steps\n\n")
	b.WriteString("1. Review the high-priority recommendations above\n")
	b.WriteString("2. Start with the easiest items first to build momentum\n")
	b.WriteString("3. Set aside time each month to review your digital privacy\n")
	b.WriteString("4. Let me know if you need help with any of these steps!\n\n")
	b.WriteString("---\n\n")
	b.WriteString("*This report was generated locally to help protect your digital privacy. All research was conducted using publicly available information.*\n")
	return b.String()
}

func writeActions(b *strings.Builder, heading string, recs []Recommendation, priority Risk) {
	n := 0
	for _, rec := range recs {
		if rec.Priority != priority {
			continue
		}
		if n == 0 {
			fmt.Fprintf(b, "### %s\n\n", heading)
		}
		n++
		fmt.Fprintf(b, "%d. **%s**\n   %s\n   *Difficulty: %s*\n\n", n, rec.Title, rec.Description, titleCase(rec.Difficulty))
	}
}
