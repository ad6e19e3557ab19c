package teams

import (
	"strings"

	"github.com/hackxperience/hackxperience/internal/models"
)

type TeamRole string

const (
	RoleAll        TeamRole = "all"
	RoleTeamLead   TeamRole = "team_lead"
	RoleTeamMember TeamRole = "team_member"
	RoleNoTeam     TeamRole = "no_team"
)

type Diet string

const (
	DietAll           Diet = "all"
	DietVegetarian    Diet = "vegetarian"
	DietNonVegetarian Diet = "non_vegetarian"
)

// ParseTeamRole maps a query value to a role facet; anything unrecognized,
// including the empty string, means unfiltered.
func ParseTeamRole(value string) TeamRole {
	switch TeamRole(value) {
	case RoleTeamLead, RoleTeamMember, RoleNoTeam:
		return TeamRole(value)
	default:
		return RoleAll
	}
}

func ParseDiet(value string) Diet {
	switch Diet(value) {
	case DietVegetarian, DietNonVegetarian:
		return Diet(value)
	default:
		return DietAll
	}
}

// Filters are the three independent admin-view predicates. A registration
// passes iff all three match; zero-value facets match everything.
type Filters struct {
	Search string
	Role   TeamRole
	Diet   Diet
}

func (f Filters) Matches(reg models.Registration) bool {
	return f.matchesSearch(reg, false) && f.matchesRole(reg) && f.matchesDiet(reg)
}

// MatchesTeamView is Matches with the free-text predicate extended to the
// team name, for the team-oriented admin view.
func (f Filters) MatchesTeamView(reg models.Registration) bool {
	return f.matchesSearch(reg, true) && f.matchesRole(reg) && f.matchesDiet(reg)
}

func (f Filters) matchesSearch(reg models.Registration, includeTeamName bool) bool {
	query := strings.ToLower(strings.TrimSpace(f.Search))

	if query == "" {
		return true
	}

	if strings.Contains(strings.ToLower(reg.FullName), query) ||
		strings.Contains(strings.ToLower(reg.Email), query) ||
		strings.Contains(strings.ToLower(reg.SimID), query) {
		return true
	}

	if includeTeamName && reg.TeamName != nil &&
		strings.Contains(strings.ToLower(*reg.TeamName), query) {
		return true
	}

	return false
}

func (f Filters) matchesRole(reg models.Registration) bool {
	switch f.Role {
	case RoleTeamLead:
		return reg.HasTeam && isTeamLead(reg)
	case RoleTeamMember:
		return reg.HasTeam && !isTeamLead(reg)
	case RoleNoTeam:
		return !reg.HasTeam
	default:
		return true
	}
}

func (f Filters) matchesDiet(reg models.Registration) bool {
	switch f.Diet {
	case DietVegetarian:
		return reg.IsVegetarian
	case DietNonVegetarian:
		return !reg.IsVegetarian
	default:
		return true
	}
}

// Filter applies the combined predicate to a list view.
func Filter(registrations []models.Registration, f Filters) []models.Registration {
	var matched []models.Registration
	for _, reg := range registrations {
		if f.Matches(reg) {
			matched = append(matched, reg)
		}
	}
	return matched
}

// FilterTeamView applies the combined predicate with team-aware search.
func FilterTeamView(registrations []models.Registration, f Filters) []models.Registration {
	var matched []models.Registration
	for _, reg := range registrations {
		if f.MatchesTeamView(reg) {
			matched = append(matched, reg)
		}
	}
	return matched
}
