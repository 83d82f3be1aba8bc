package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	rosterservice "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/application"
	rosterdomain "github.com/Black-And-White-Club/cirqit-scoreboard/app/modules/roster/domain"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
	seen  map[string]bool
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
		seen:  map[string]bool{},
	}
}

// Seed returns the seed, for reproducing a failing run.
func (g *TestDataGenerator) Seed() int64 { return g.seed }

// unique retries gen until it yields a name not handed out before.
func (g *TestDataGenerator) unique(gen func() string) string {
	for i := 0; ; i++ {
		name := gen()
		if i > 20 {
			name = fmt.Sprintf("%s %d", name, i)
		}
		if !g.seen[name] {
			g.seen[name] = true
			return name
		}
	}
}

// TeamName returns a fresh team name.
func (g *TestDataGenerator) TeamName() string {
	return g.unique(func() string { return g.faker.Company() })
}

// PersonName returns a fresh full name.
func (g *TestDataGenerator) PersonName() string {
	return g.unique(func() string { return g.faker.FirstName() + " " + g.faker.LastName() })
}

// TeamInput describes a team with a declared size and a fresh coach.
func (g *TestDataGenerator) TeamInput(totalMembers int) rosterservice.CreateTeamInput {
	return rosterservice.CreateTeamInput{
		Name:         g.TeamName(),
		TotalMembers: totalMembers,
		CoachName:    "Coach " + g.PersonName(),
		Department:   g.faker.JobDescriptor(),
	}
}

// MemberInputs returns n members for team, the first marked as leader.
func (g *TestDataGenerator) MemberInputs(team rosterdomain.Team, n int) []rosterservice.AddMemberInput {
	out := make([]rosterservice.AddMemberInput, 0, n)
	for i := range n {
		out = append(out, rosterservice.AddMemberInput{
			TeamName:   team.Name,
			Name:       g.PersonName(),
			Department: team.Department,
			IsLeader:   i == 0,
		})
	}
	return out
}

// Bool returns a fair coin flip.
func (g *TestDataGenerator) Bool() bool { return g.faker.Bool() }
