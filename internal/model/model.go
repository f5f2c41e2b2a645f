// Package model defines the records the companion persists.
package model

import (
	"time"

	"github.com/rcliao/companion/internal/persona"
	"github.com/rcliao/companion/internal/privacy"
	"github.com/rcliao/companion/internal/style"
	"github.com/rcliao/companion/internal/traits"
)

// Session is everything needed to resume a user's companion.
type Session struct {
	UserID    string           `json:"user_id"`
	Profile   style.Profile    `json:"profile"`
	Persona   persona.Snapshot `json:"persona"`
	History   []style.Entry    `json:"history"`
	Turns     int              `json:"turns"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Conversation is one exchanged message and reply.
type Conversation struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Message   string        `json:"message"`
	Response  string        `json:"response"`
	Sentiment float64       `json:"sentiment"`
	Traits    traits.Scores `json:"traits,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	DeletedAt *time.Time    `json:"deleted_at,omitempty"`
}

// Finding is a stored research finding.
type Finding struct {
	ID string `json:"id"`
	privacy.Finding
	DiscoveredAt time.Time `json:"discovered_at"`
}

// Research is the latest digital-footprint research for a user.
type Research struct {
	UserID       string           `json:"user_id"`
	Subject      privacy.UserInfo `json:"subject"`
	Findings     []Finding        `json:"findings"`
	ResearchedAt time.Time        `json:"researched_at"`
}

// PrivacyFindings strips storage metadata from the findings.
func (r Research) PrivacyFindings() []privacy.Finding {
	out := make([]privacy.Finding, len(r.Findings))
	for i, f := range r.Findings {
		out[i] = f.Finding
	}
	return out
}

// Export is a portable dump of one user's data.
type Export struct {
	UserID        string         `json:"user_id"`
	ExportedAt    time.Time      `json:"exported_at"`
	Session       *Session       `json:"session,omitempty"`
	Conversations []Conversation `json:"conversations"`
	Research      *Research      `json:"research,omitempty"`
}
