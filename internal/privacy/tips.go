package privacy

// Tip categories.
const (
	TipsGeneral     = "general"
	TipsSocialMedia = "social_media"
	TipsPasswords   = "passwords"
	TipsDataBrokers = "data_brokers"
)

var tips = map[string][]string{
	TipsGeneral: {
		"Use privacy-focused search engines like DuckDuckGo",
		"Regularly review and update your social media privacy settings",
		"Be cautious about what personal information you share online",
		"Use a VPN when connecting to public Wi-Fi",
		"Keep your software and apps updated",
	},
	TipsSocialMedia: {
		"Limit who can see your posts and personal information",
		"Turn off location tracking when possible",
		"Be selective about friend/connection requests",
		"Review tagged photos before they appear on your profile",
		"Consider what your posts reveal about your daily routine",
	},
	TipsPasswords: {
		"Use a unique password for each account",
		"Make passwords at least 12 characters long",
		"Include a mix of letters, numbers, and symbols",
		"Use a password manager to generate and store passwords",
		"Enable two-factor authentication where available",
	},
	TipsDataBrokers: {
		"Regularly search for your information on data broker sites",
		"Submit opt-out requests to remove your data",
		"Be persistent - you may need to request removal multiple times",
		"Consider using a service that automates opt-out requests",
		"Monitor for your information reappearing after opt-out",
	},
}

// Tips returns the tips for category, falling back to general tips.
func Tips(category string) []string {
	t, ok := tips[category]
	if !ok {
		t = tips[TipsGeneral]
	}
	return append([]string(nil), t...)
}

// Preferences shape an action plan. Empty fields mean "medium".
type Preferences struct {
	TimeCommitment  string `json:"time_commitment"`
	TechComfort     string `json:"tech_comfort"`
	PrivacyPriority string `json:"privacy_priority"`
}

// Plan is a personalized privacy action plan.
type Plan struct {
	Immediate     []string `json:"immediate_actions"`
	Weekly        []string `json:"weekly_actions"`
	Monthly       []string `json:"monthly_actions"`
	EstimatedTime string   `json:"estimated_time"`
}

// ActionPlan builds a plan from the user's time commitment. Only "low" and
// "high" commitments produce immediate actions.
func ActionPlan(p Preferences) Plan {
	plan := Plan{
		Immediate:     []string{},
		Weekly:        []string{},
		Monthly:       []string{},
		EstimatedTime: "0 minutes",
	}
	switch p.TimeCommitment {
	case "low":
		plan.Immediate = []string{
			"Review Facebook privacy settings (10 minutes)",
			"Enable two-factor authentication on email (5 minutes)",
		}
		plan.EstimatedTime = "15 minutes"
	case "high":
		plan.Immediate = []string{
			"Complete privacy audit of all social media accounts (30 minutes)",
			"Set up password manager and update passwords (45 minutes)",
			"Opt out of major data broker sites (60 minutes)",
		}
		plan.EstimatedTime = "2 hours 15 minutes"
	}
	return plan
}
