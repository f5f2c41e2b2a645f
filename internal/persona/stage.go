package persona

// Stage is a rung on the relationship ladder, derived from trust.
type Stage int

const (
	GettingToKnow Stage = iota
	BuildingRapport
	DevelopingFriendship
	DeepConnection
)

var stageInfo = [...]struct {
	label       string
	description string
}{
	GettingToKnow:        {"getting to know you", "Getting to know you - I'm still learning your style!"},
	BuildingRapport:      {"building rapport", "Building rapport - I'm starting to understand you better"},
	DevelopingFriendship: {"developing friendship", "Developing friendship - We're getting comfortable with each other"},
	DeepConnection:       {"deep connection", "Deep connection - I feel like I really know you now"},
}

// StageFor maps a trust level to its stage using the 0.2, 0.5 and 0.8
// thresholds.
func StageFor(trust float64) Stage {
	switch {
	case trust < 0.2:
		return GettingToKnow
	case trust < 0.5:
		return BuildingRapport
	case trust < 0.8:
		return DevelopingFriendship
	default:
		return DeepConnection
	}
}

func (s Stage) String() string {
	if s < GettingToKnow || s > DeepConnection {
		return "unknown"
	}
	return stageInfo[s].label
}

// Description is the companion's own phrasing of the stage.
func (s Stage) Description() string {
	if s < GettingToKnow || s > DeepConnection {
		return ""
	}
	return stageInfo[s].description
}

// MarshalText encodes the stage as its label.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Summary describes a persona's development.
type Summary struct {
	Persona            Snapshot `json:"persona"`
	TrustLevel         float64  `json:"trust_level"`
	ConversationsCount int      `json:"conversations_count"`
	DevelopmentStage   Stage    `json:"development_stage"`
	StageDescription   string   `json:"stage_description"`
}

// Summarize builds a Summary for s after the given number of conversations.
func Summarize(s Snapshot, conversations int) Summary {
	st := StageFor(s.TrustLevel)
	return Summary{
		Persona:            s.clone(),
		TrustLevel:         s.TrustLevel,
		ConversationsCount: conversations,
		DevelopmentStage:   st,
		StageDescription:   st.Description(),
	}
}
