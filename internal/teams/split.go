package teams

import (
	"errors"
	"fmt"

	"github.com/goserg/teambalancer/internal/domain"
)

// Rand is the random source used for coin flips and shuffles.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Size is the number of players per team.
var Size = len(domain.Roles)

var (
	ErrIncompleteAssignment = errors.New("incomplete role assignment")
	ErrTeamSize             = errors.New("wrong number of players")
)

// Split puts one player of every role pair on each team. The weaker player of a
// pair goes to team A unless the coin for that role lands heads, so both teams
// field the same pairs and only the sides vary between runs.
func Split(assignment domain.RoleAssignment, rnd Rand) (domain.Team, domain.Team, error) {
	a := make(domain.Team, 0, Size)
	b := make(domain.Team, 0, Size)
	for _, role := range domain.Roles {
		pair, ok := assignment[role]
		if !ok {
			return nil, nil, fmt.Errorf("%w: no players for %s", ErrIncompleteAssignment, role)
		}
		low, high := pair[0], pair[1]
		if high.Score < low.Score {
			low, high = high, low
		}
		if flip(rnd) {
			low, high = high, low
		}
		a = append(a, domain.TeamEntry{Player: low, Role: role})
		b = append(b, domain.TeamEntry{Player: high, Role: role})
	}
	return a, b, nil
}

func flip(rnd Rand) bool {
	return rnd.Intn(2) == 1
}
