package roles

import (
	"errors"
	"fmt"
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/goserg/teambalancer/internal/domain"
)

// PlayersPerRole is the number of players sharing a role across both teams.
const PlayersPerRole = 2

// MatchSize is the number of players a balancing run takes.
var MatchSize = PlayersPerRole * len(domain.Roles)

var (
	ErrInsufficientPlayers = errors.New("insufficient players")
	ErrDuplicatePlayer     = errors.New("duplicate player")
)

// Assign distributes players over the roles in domain.Roles order, two per role.
// Each role takes the two weakest players who prefer it or play fill. A role
// short of such players is topped up from the rest of the pool: closest to the
// mean of the already chosen player, or strongest first when nobody was chosen.
// Earlier roles win contested players.
func Assign(players []domain.Player) (domain.RoleAssignment, error) {
	if len(players) != MatchSize {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientPlayers, MatchSize, len(players))
	}
	unassigned := mapset.NewThreadUnsafeSet[uuid.UUID]()
	for _, p := range players {
		if !unassigned.Add(p.ID) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.Name)
		}
	}

	assignment := make(domain.RoleAssignment, len(domain.Roles))
	for _, role := range domain.Roles {
		pool := lo.Filter(players, func(p domain.Player, _ int) bool {
			return unassigned.Contains(p.ID)
		})
		chosen := pickPreferred(pool, role)
		if len(chosen) < PlayersPerRole {
			chosen = fillFromPool(pool, chosen)
		}
		for _, p := range chosen {
			unassigned.Remove(p.ID)
		}
		assignment[role] = domain.Pair{chosen[0], chosen[1]}
	}

	if unassigned.Cardinality() != 0 {
		return nil, fmt.Errorf("%d players left without a role", unassigned.Cardinality())
	}
	return assignment, nil
}

func pickPreferred(pool []domain.Player, role domain.Role) []domain.Player {
	preferred := lo.Filter(pool, func(p domain.Player, _ int) bool {
		return p.Prefers(role)
	})
	flexible := lo.Filter(pool, func(p domain.Player, _ int) bool {
		return p.Flexible() && !p.Prefers(role)
	})
	candidates := append(preferred, flexible...)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})
	if len(candidates) > PlayersPerRole {
		candidates = candidates[:PlayersPerRole]
	}
	return candidates
}

func fillFromPool(pool, chosen []domain.Player) []domain.Player {
	taken := mapset.NewThreadUnsafeSet[uuid.UUID]()
	for _, p := range chosen {
		taken.Add(p.ID)
	}
	remaining := lo.Filter(pool, func(p domain.Player, _ int) bool {
		return !taken.Contains(p.ID)
	})

	if len(chosen) > 0 {
		avg := float64(lo.SumBy(chosen, func(p domain.Player) int { return p.Score })) / float64(len(chosen))
		sort.SliceStable(remaining, func(i, j int) bool {
			return math.Abs(float64(remaining[i].Score)-avg) < math.Abs(float64(remaining[j].Score)-avg)
		})
	} else {
		sort.SliceStable(remaining, func(i, j int) bool {
			return remaining[i].Score > remaining[j].Score
		})
	}

	need := PlayersPerRole - len(chosen)
	return append(chosen, remaining[:need]...)
}
