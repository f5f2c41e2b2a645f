package privacy

import (
	"fmt"
	"time"
)

var socialPlatforms = []string{
	"facebook.com",
	"instagram.com",
	"twitter.com",
	"linkedin.com",
	"tiktok.com",
	"snapchat.com",
	"youtube.com",
	"reddit.com",
	"pinterest.com",
}

var dataBrokers = []string{
	"whitepages.com",
	"spokeo.com",
	"peoplefinder.com",
	"intelius.com",
	"beenverified.com",
	"truthfinder.com",
}

// UserInfo is what the user tells the guardian about themselves. Age is 0
// when unknown.
type UserInfo struct {
	Name     string `json:"name"`
	Age      int    `json:"age,omitempty"`
	Location string `json:"location,omitempty"`
}

// Queries returns the search queries used to map the user's footprint.
// now fixes the current year for birth-year queries. An empty name yields
// no queries.
func Queries(info UserInfo, now time.Time) []string {
	name := info.Name
	if name == "" {
		return nil
	}

	q := []string{
		fmt.Sprintf("\"%s\"", name),
		name,
	}
	if info.Location != "" {
		q = append(q,
			fmt.Sprintf("\"%s\" %s", name, info.Location),
			fmt.Sprintf("%s %s", name, info.Location),
		)
	}
	if info.Age > 0 {
		born := now.Year() - info.Age
		q = append(q,
			fmt.Sprintf("\"%s\" %d", name, born),
			fmt.Sprintf("%s born %d", name, born),
		)
	}
	for _, p := range socialPlatforms {
		q = append(q,
			fmt.Sprintf("site:%s \"%s\"", p, name),
			fmt.Sprintf("site:%s %s", p, name),
		)
	}
	for _, suffix := range []string{"linkedin", "resume", "CV", "university", "college", "school"} {
		q = append(q, fmt.Sprintf("\"%s\" %s", name, suffix))
	}
	for _, b := range dataBrokers {
		q = append(q, fmt.Sprintf("site:%s \"%s\"", b, name))
	}
	return q
}
