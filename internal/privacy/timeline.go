package privacy

import (
	"fmt"
	"time"
)

// YearRange is an inclusive pair of years.
type YearRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Era describes the digital era a user grew up in.
type Era struct {
	Name    string `json:"era"`
	Context string `json:"context"`
}

// Timeline places a user's formative years against the rise of social
// platforms.
type Timeline struct {
	BirthYear       int       `json:"birth_year"`
	HighSchoolYears YearRange `json:"high_school_years"`
	CollegeYears    YearRange `json:"college_years"`
	DigitalEra      Era       `json:"digital_native_era"`
	YouthPlatforms  []string  `json:"major_social_platforms_during_youth"`
}

var platformLaunches = []struct {
	year int
	name string
}{
	{2003, "MySpace"},
	{2004, "Facebook"},
	{2005, "YouTube"},
	{2006, "Twitter"},
	{2010, "Instagram"},
	{2011, "Snapchat"},
	{2016, "TikTok"},
}

// BuildTimeline returns the timeline for a user of the given age at now.
func BuildTimeline(age int, now time.Time) Timeline {
	born := now.Year() - age
	return Timeline{
		BirthYear:       born,
		HighSchoolYears: YearRange{born + 14, born + 18},
		CollegeYears:    YearRange{born + 18, born + 22},
		DigitalEra:      EraFor(born),
		YouthPlatforms:  youthPlatforms(born),
	}
}

// EraFor classifies a birth year.
func EraFor(born int) Era {
	switch {
	case born >= 2000:
		return Era{"Gen Z", "True digital native, grew up with smartphones and social media"}
	case born >= 1985:
		return Era{"Millennial", "Witnessed the birth of social media, adapted to digital world"}
	case born >= 1970:
		return Era{"Gen X", "Experienced pre-digital childhood, adapted to internet as adult"}
	default:
		return Era{"Boomer+", "Digital immigrant, may need more privacy guidance"}
	}
}

// youthPlatforms lists platforms launched while the user was 13 to 25.
func youthPlatforms(born int) []string {
	out := []string{}
	for _, p := range platformLaunches {
		if p.year >= born+13 && p.year <= born+25 {
			out = append(out, fmt.Sprintf("%s (age %d)", p.name, p.year-born))
		}
	}
	return out
}
