package privacy

import (
	"fmt"
	"time"
)

// Recommendation is an action the user can take.
type Recommendation struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    Risk   `json:"priority"`
	Difficulty  string `json:"difficulty"`
}

var generalRecommendations = []Recommendation{
	{"general", "Review Social Media Privacy Settings", "Check privacy settings on all social media platforms to limit public visibility of personal information.", High, "easy"},
	{"general", "Google Yourself Regularly", "Search for your name regularly to monitor what information is publicly available about you.", Medium, "easy"},
	{"data_brokers", "Opt Out of Data Broker Sites", "Request removal of your information from data broker websites that collect and sell personal data.", High, "medium"},
	{"passwords", "Use Strong, Unique Passwords", "Use a password manager to create and store strong, unique passwords for all accounts.", High, "easy"},
	{"two_factor", "Enable Two-Factor Authentication", "Add an extra layer of security to important accounts with two-factor authentication.", High, "easy"},
}

// SimulatedFindings is the batch every research run reports.
func SimulatedFindings() []Finding {
	return []Finding{
		{"social_media", "Facebook", "Public profile with photos and basic information", Medium, "Review privacy settings to limit public visibility"},
		{"professional", "LinkedIn", "Professional profile with work history", Low, "Professional profiles are generally safe, but review connection settings"},
		{"data_broker", "WhitePages", "Address and phone number listed", High, "Consider opting out of data broker listings"},
		{"news_mention", "Local News Site", "Mentioned in community event article", Low, "Public mentions are generally harmless"},
		{"educational", "University Website", "Listed in graduation records", Low, "Educational records are typically public information"},
	}
}

// Status is returned when research starts.
type Status struct {
	Status           string `json:"status"`
	QueriesGenerated int    `json:"queries_generated"`
	EstimatedTime    string `json:"estimated_time"`
	Message          string `json:"message"`
}

// Results is the outcome of a research run.
type Results struct {
	Findings        []Finding        `json:"findings"`
	Assessment      Assessment       `json:"privacy_assessment"`
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary"`
}

// Guardian holds one user's research state.
type Guardian struct {
	info     UserInfo
	queries  []string
	findings []Finding
	now      func() time.Time
}

// NewGuardian returns a guardian with no research on record.
func NewGuardian() *Guardian {
	return &Guardian{now: time.Now}
}

// RestoreGuardian rebuilds a guardian from persisted findings.
func RestoreGuardian(info UserInfo, findings []Finding) (*Guardian, error) {
	for _, f := range findings {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}
	g := NewGuardian()
	g.info = info
	g.findings = append([]Finding(nil), findings...)
	return g, nil
}

// StartResearch records info, builds the queries and loads the findings.
func (g *Guardian) StartResearch(info UserInfo) Status {
	g.info = info
	g.queries = Queries(info, g.now())
	g.findings = SimulatedFindings()

	return Status{
		Status:           "initiated",
		QueriesGenerated: len(g.queries),
		EstimatedTime:    "5-10 minutes",
		Message:          "I'm starting to research your digital presence. This will help me understand what information about you is publicly available and identify potential privacy risks.",
	}
}

// Info returns the user info from the last research run.
func (g *Guardian) Info() UserInfo { return g.info }

// Queries returns the queries from the last research run.
func (g *Guardian) Queries() []string {
	return append([]string(nil), g.queries...)
}

// Findings returns a copy of the current findings.
func (g *Guardian) Findings() []Finding {
	return append([]Finding(nil), g.findings...)
}

// Results assesses the current findings and recommends actions.
func (g *Guardian) Results() Results {
	a := Assess(g.findings)
	return Results{
		Findings:        g.Findings(),
		Assessment:      a,
		Recommendations: Recommend(g.findings),
		Summary:         summarize(a),
	}
}

// Recommend returns the general recommendations followed by one specific
// recommendation per high-risk finding.
func Recommend(findings []Finding) []Recommendation {
	recs := append([]Recommendation(nil), generalRecommendations...)
	for _, f := range findings {
		if f.Risk != High {
			continue
		}
		recs = append(recs, Recommendation{
			Category:    "specific",
			Title:       fmt.Sprintf("Address %s Privacy Risk", f.Platform),
			Description: f.Recommendation,
			Priority:    High,
			Difficulty:  "medium",
		})
	}
	return recs
}

func summarize(a Assessment) string {
	var verdict string
	switch a.OverallRisk {
	case High:
		verdict = "There are some significant privacy concerns that should be addressed."
	case Medium:
		verdict = "There are a few privacy items worth reviewing."
	default:
		verdict = "Your digital privacy looks pretty good overall."
	}
	return fmt.Sprintf("I found %d pieces of information about you online. %s I've prepared specific recommendations to help protect your privacy.",
		a.TotalFindings, verdict)
}

// MonitorNewMentions checks for mentions of info that appeared since the last
// run. Monitoring is not connected to any source, so the result is always an
// empty, non-nil slice.
func (g *Guardian) MonitorNewMentions(info UserInfo) []Finding {
	return []Finding{}
}
