package directory

import (
	"context"
	"strings"
)

type implDirectory struct {
	profiles map[string]Profile
}

// New creates a Directory over the given profiles, keyed by lowercase
// employee ID. A nil map falls back to the built-in sample dataset.
func New(profiles map[string]Profile) Directory {
	if profiles == nil {
		profiles = sampleProfiles()
	}
	return &implDirectory{profiles: profiles}
}

// Lookup matches by employee ID first, then by case-insensitive name prefix
func (d *implDirectory) Lookup(ctx context.Context, nameOrID string) (Profile, bool) {
	id := strings.ToLower(strings.TrimSpace(nameOrID))
	if id == "" {
		return Profile{}, false
	}

	if p, ok := d.profiles[id]; ok {
		return p, true
	}

	for _, p := range d.profiles {
		if strings.HasPrefix(strings.ToLower(p.Name), id) {
			return p, true
		}
	}

	return Profile{}, false
}

func sampleProfiles() map[string]Profile {
	return map[string]Profile{
		"jack": {
			EmployeeID: "jack",
			Name:       "Jack",
			Role:       "Moderator / Host",
			Email:      "jack@whymeadows.com",
			Responsibilities: []string{
				"Facilitating the panel discussion",
				"Moderating breakout session summaries",
				"Closing the event and acknowledging contributors",
			},
		},
		"steve": {
			EmployeeID: "steve",
			Name:       "Steve Fiore",
			Role:       "Senior Director, Customer Experiences",
			Email:      "steve.fiore@teradata.com",
			Responsibilities: []string{
				"Presenting on customer health metrics",
				"Driving organizational alignment on success goals",
				"Leading AI Innovation Days for customers",
			},
		},
		"maddie": {
			EmployeeID: "maddie",
			Name:       "Maddie",
			Role:       "Customer Experience Leader (B2C/D2C)",
			Email:      "maddie@b2ccompany.com",
			Responsibilities: []string{
				"Sharing perspectives on transactional customer metrics",
				"Critiquing traditional metrics like NPS",
				"Exploring retention in high-volume customer environments",
			},
		},
		"michael": {
			EmployeeID: "michael",
			Name:       "Michael",
			Role:       "Client Success & Support Lead",
			Email:      "michael@startuptech.com",
			Responsibilities: []string{
				"Tracking last logins and usage trends",
				"Monitoring data feed continuity",
				"Providing customer insight to cross-functional teams",
			},
		},
		"rahil": {
			EmployeeID: "rahil",
			Name:       "Rahil",
			Role:       "CX Metrics and AI Strategist",
			Email:      "rahil@datatech.com",
			Responsibilities: []string{
				"Developing customer health scorecards",
				"Integrating AI into customer support metrics",
				"Bringing cross-industry metric experience",
			},
		},
		"alan": {
			EmployeeID: "alan",
			Name:       "Alan Rich",
			Role:       "Founder & CEO",
			Email:      "alan.rich@whymeadows.com",
			Responsibilities: []string{
				"Organizing the Brain Trust event",
				"Leading WhyMeadows' strategic direction",
				"Supporting executive community initiatives",
			},
		},
	}
}
