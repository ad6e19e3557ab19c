package teams

import (
	"sort"
	"strings"

	"github.com/hackxperience/hackxperience/internal/models"
)

// UnnamedTeam is the display name for a group in which no member declared one.
const UnnamedTeam = "Unnamed Team"

// Team is a presentation aggregate over registrations. Lead is nil when the
// group contains no registration marked as team lead; the rows stay grouped
// and render with an unknown lead rather than failing.
type Team struct {
	Key     string
	Name    string
	Lead    *models.Registration
	Members []models.Registration
}

// Group partitions registrations into team aggregates and a residual solo
// list. Teams are keyed by the lead's email: leads contribute their own email,
// members the team_lead_email they reference. Rows that declare a team but
// carry neither email linkage fall back to a name-derived key, which can
// collide with nothing email-keyed; that limitation is accepted, not
// corrected. Grouping never mutates its input and is idempotent.
func Group(registrations []models.Registration) ([]Team, []models.Registration) {
	groups := make(map[string][]models.Registration)
	var order []string
	var solos []models.Registration

	for _, reg := range registrations {
		key, ok := groupKey(reg)
		if !ok {
			solos = append(solos, reg)
			continue
		}

		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], reg)
	}

	teams := make([]Team, 0, len(order))

	for _, key := range order {
		members := groups[key]

		team := Team{
			Key:     key,
			Members: members,
		}

		for i := range members {
			if isTeamLead(members[i]) {
				team.Lead = &members[i]
				break
			}
		}

		team.Name = displayName(team.Lead, members)
		teams = append(teams, team)
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return strings.ToLower(teams[i].Name) < strings.ToLower(teams[j].Name)
	})

	return teams, solos
}

func groupKey(reg models.Registration) (string, bool) {
	if !reg.HasTeam {
		return "", false
	}

	if isTeamLead(reg) && reg.Email != "" {
		return reg.Email, true
	}

	if reg.TeamLeadEmail != nil && *reg.TeamLeadEmail != "" {
		return *reg.TeamLeadEmail, true
	}

	if reg.TeamName != nil && *reg.TeamName != "" {
		return "name_" + *reg.TeamName, true
	}

	return "", false
}

func displayName(lead *models.Registration, members []models.Registration) string {
	if lead != nil && lead.TeamName != nil && *lead.TeamName != "" {
		return *lead.TeamName
	}

	if len(members) > 0 && members[0].TeamName != nil && *members[0].TeamName != "" {
		return *members[0].TeamName
	}

	return UnnamedTeam
}

func isTeamLead(reg models.Registration) bool {
	return reg.IsTeamLead != nil && *reg.IsTeamLead
}
