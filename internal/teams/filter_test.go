package teams

import (
	"testing"

	"github.com/hackxperience/hackxperience/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleRegistrations() []models.Registration {
	leadReg := lead("Lena Ortiz", "lena@x.com", "Alpha")
	leadReg.SimID = "11112222"
	leadReg.IsVegetarian = true

	memberReg := member("Max Chen", "max@x.com", "lena@x.com")
	memberReg.SimID = "33334444"

	soloReg := solo("Ana Costa", "ana@y.org")
	soloReg.SimID = "55556666"
	soloReg.IsVegetarian = true

	return []models.Registration{leadReg, memberReg, soloReg}
}

func TestFiltersDefaultMatchesEverything(t *testing.T) {
	regs := sampleRegistrations()

	matched := Filter(regs, Filters{})

	assert.Len(t, matched, len(regs))
}

func TestFiltersSearch(t *testing.T) {
	regs := sampleRegistrations()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"by name fragment", "ortiz", []string{"lena@x.com"}},
		{"case insensitive", "MAX", []string{"max@x.com"}},
		{"by email domain", "y.org", []string{"ana@y.org"}},
		{"by sim id", "3333", []string{"max@x.com"}},
		{"no match", "nothing-here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := Filter(regs, Filters{Search: tt.search})

			var emails []string
			for _, reg := range matched {
				emails = append(emails, reg.Email)
			}
			assert.Equal(t, tt.want, emails)
		})
	}
}

func TestFiltersTeamViewSearchIncludesTeamName(t *testing.T) {
	regs := sampleRegistrations()

	// The list view does not search team names; the team view does.
	assert.Empty(t, Filter(regs, Filters{Search: "alpha"}))

	matched := FilterTeamView(regs, Filters{Search: "alpha"})
	if assert.Len(t, matched, 1) {
		assert.Equal(t, "lena@x.com", matched[0].Email)
	}
}

func TestFiltersRoleFacet(t *testing.T) {
	regs := sampleRegistrations()

	tests := []struct {
		role TeamRole
		want []string
	}{
		{RoleTeamLead, []string{"lena@x.com"}},
		{RoleTeamMember, []string{"max@x.com"}},
		{RoleNoTeam, []string{"ana@y.org"}},
		{RoleAll, []string{"lena@x.com", "max@x.com", "ana@y.org"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			matched := Filter(regs, Filters{Role: tt.role})

			var emails []string
			for _, reg := range matched {
				emails = append(emails, reg.Email)
			}
			assert.Equal(t, tt.want, emails)
		})
	}
}

func TestFiltersDietFacet(t *testing.T) {
	regs := sampleRegistrations()

	vegetarians := Filter(regs, Filters{Diet: DietVegetarian})
	assert.Len(t, vegetarians, 2)

	nonVegetarians := Filter(regs, Filters{Diet: DietNonVegetarian})
	if assert.Len(t, nonVegetarians, 1) {
		assert.Equal(t, "max@x.com", nonVegetarians[0].Email)
	}
}

// Filtering is the conjunction of the three independent predicates: a record
// passes the combined filter iff it passes each facet on its own.
func TestFiltersAreConjunctive(t *testing.T) {
	regs := sampleRegistrations()

	searches := []string{"", "lena", "3333", "zzz"}
	roles := []TeamRole{RoleAll, RoleTeamLead, RoleTeamMember, RoleNoTeam}
	diets := []Diet{DietAll, DietVegetarian, DietNonVegetarian}

	for _, search := range searches {
		for _, role := range roles {
			for _, diet := range diets {
				combined := Filters{Search: search, Role: role, Diet: diet}

				for _, reg := range regs {
					want := Filters{Search: search}.Matches(reg) &&
						Filters{Role: role}.Matches(reg) &&
						Filters{Diet: diet}.Matches(reg)

					if got := combined.Matches(reg); got != want {
						t.Errorf("filters %+v on %s: got %v, want %v",
							combined, reg.Email, got, want)
					}
				}
			}
		}
	}
}

func TestParseFacets(t *testing.T) {
	assert.Equal(t, RoleTeamLead, ParseTeamRole("team_lead"))
	assert.Equal(t, RoleAll, ParseTeamRole(""))
	assert.Equal(t, RoleAll, ParseTeamRole("bogus"))

	assert.Equal(t, DietNonVegetarian, ParseDiet("non_vegetarian"))
	assert.Equal(t, DietAll, ParseDiet(""))
	assert.Equal(t, DietAll, ParseDiet("bogus"))
}
