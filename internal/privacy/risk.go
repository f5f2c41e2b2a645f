// Package privacy is the companion's digital-footprint guardian. Research is
// simulated: it builds the search queries a real crawler would run and
// reports a fixed batch of findings, then assesses and explains the risk.
package privacy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRisk is returned when a risk label cannot be parsed.
var ErrInvalidRisk = errors.New("invalid risk level")

// Risk is a privacy risk level.
type Risk string

const (
	Low    Risk = "low"
	Medium Risk = "medium"
	High   Risk = "high"
)

// ParseRisk accepts exactly "low", "medium" or "high".
func ParseRisk(s string) (Risk, error) {
	switch r := Risk(s); r {
	case Low, Medium, High:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRisk, s)
}

// Marker is the traffic-light symbol used in reports.
func (r Risk) Marker() string {
	switch r {
	case High:
		return "🔴"
	case Medium:
		return "🟡"
	default:
		return "🟢"
	}
}

// Finding is one piece of publicly available information about the user.
type Finding struct {
	Type           string `json:"type"`
	Platform       string `json:"platform"`
	Content        string `json:"content"`
	Risk           Risk   `json:"privacy_risk"`
	Recommendation string `json:"recommendation"`
}

// Validate checks the finding's risk label.
func (f Finding) Validate() error {
	if _, err := ParseRisk(string(f.Risk)); err != nil {
		return fmt.Errorf("finding %q: %w", f.Platform, err)
	}
	return nil
}

// Assessment aggregates the risk of a set of findings.
type Assessment struct {
	OverallRisk   Risk `json:"overall_risk"`
	HighRiskItems int  `json:"high_risk_items"`
	MediumRisk    int  `json:"medium_risk_items"`
	TotalFindings int  `json:"total_findings"`
}

// Assess computes the overall risk: high when any finding is high, medium
// when more than one finding is medium, low otherwise. A single medium
// finding alone stays low.
func Assess(findings []Finding) Assessment {
	a := Assessment{OverallRisk: Low, TotalFindings: len(findings)}
	for _, f := range findings {
		switch f.Risk {
		case High:
			a.HighRiskItems++
		case Medium:
			a.MediumRisk++
		}
	}
	switch {
	case a.HighRiskItems > 0:
		a.OverallRisk = High
	case a.MediumRisk > 1:
		a.OverallRisk = Medium
	}
	return a
}

// humanize turns a snake_case label into "Title Case Words".
func humanize(s string) string {
	return titleCase(strings.ReplaceAll(s, "_", " "))
}
