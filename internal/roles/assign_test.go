package roles

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/teambalancer/internal/domain"
)

func newPlayer(name string, score int, primary, secondary domain.Role) domain.Player {
	return domain.Player{
		ID:        uuid.New(),
		Name:      name,
		Score:     score,
		Primary:   primary,
		Secondary: secondary,
	}
}

func pairNames(p domain.Pair) [2]string {
	return [2]string{p[0].Name, p[1].Name}
}

func requirePartition(t *testing.T, players []domain.Player, got domain.RoleAssignment) {
	t.Helper()
	require.Len(t, got, len(domain.Roles))
	seen := mapset.NewSet[uuid.UUID]()
	for _, role := range domain.Roles {
		pair, ok := got[role]
		require.True(t, ok, "missing role %s", role)
		for _, p := range pair {
			require.True(t, seen.Add(p.ID), "player %s assigned twice", p.Name)
		}
	}
	want := mapset.NewSet[uuid.UUID]()
	for _, p := range players {
		want.Add(p.ID)
	}
	assert.True(t, want.Equal(seen))
}

func TestAssign_MainRoles(t *testing.T) {
	players := []domain.Player{
		newPlayer("top1", 10, domain.RoleTop, domain.RoleMid),
		newPlayer("top2", 12, domain.RoleTop, domain.RoleJungle),
		newPlayer("jg1", 20, domain.RoleJungle, domain.RoleTop),
		newPlayer("jg2", 22, domain.RoleJungle, domain.RoleSupport),
		newPlayer("mid1", 30, domain.RoleMid, domain.RoleBot),
		newPlayer("mid2", 31, domain.RoleMid, domain.RoleTop),
		newPlayer("bot1", 5, domain.RoleBot, domain.RoleSupport),
		newPlayer("bot2", 8, domain.RoleBot, domain.RoleSupport),
		newPlayer("sup1", 40, domain.RoleSupport, domain.RoleJungle),
		newPlayer("sup2", 41, domain.RoleSupport, domain.RoleBot),
	}

	got, err := Assign(players)
	require.NoError(t, err)
	requirePartition(t, players, got)

	assert.Equal(t, [2]string{"top1", "top2"}, pairNames(got[domain.RoleTop]))
	assert.Equal(t, [2]string{"jg1", "jg2"}, pairNames(got[domain.RoleJungle]))
	assert.Equal(t, [2]string{"mid1", "mid2"}, pairNames(got[domain.RoleMid]))
	assert.Equal(t, [2]string{"bot1", "bot2"}, pairNames(got[domain.RoleBot]))
	assert.Equal(t, [2]string{"sup1", "sup2"}, pairNames(got[domain.RoleSupport]))
}

func TestAssign_StarvedRoleUsesClosestSkill(t *testing.T) {
	// Only "i" wants support and nobody plays fill.
	players := []domain.Player{
		newPlayer("a", 10, domain.RoleTop, domain.RoleJungle),
		newPlayer("b", 20, domain.RoleTop, domain.RoleMid),
		newPlayer("c", 15, domain.RoleJungle, domain.RoleTop),
		newPlayer("d", 25, domain.RoleJungle, domain.RoleMid),
		newPlayer("e", 30, domain.RoleMid, domain.RoleTop),
		newPlayer("f", 12, domain.RoleMid, domain.RoleJungle),
		newPlayer("g", 18, domain.RoleBot, domain.RoleMid),
		newPlayer("h", 22, domain.RoleBot, domain.RoleTop),
		newPlayer("i", 40, domain.RoleSupport, domain.RoleTop),
		newPlayer("j", 5, domain.RoleBot, domain.RoleJungle),
	}

	got, err := Assign(players)
	require.NoError(t, err)
	requirePartition(t, players, got)

	assert.Equal(t, [2]string{"a", "c"}, pairNames(got[domain.RoleTop]))
	assert.Equal(t, [2]string{"j", "f"}, pairNames(got[domain.RoleJungle]))
	assert.Equal(t, [2]string{"g", "b"}, pairNames(got[domain.RoleMid]))
	// h is alone on bot; d (25) is closer to 22 than e (30) or i (40).
	assert.Equal(t, [2]string{"h", "d"}, pairNames(got[domain.RoleBot]))
	assert.Equal(t, [2]string{"i", "e"}, pairNames(got[domain.RoleSupport]))
}

func TestAssign_EmptyRoleTakesStrongest(t *testing.T) {
	players := []domain.Player{
		newPlayer("a", 10, domain.RoleTop, domain.RoleJungle),
		newPlayer("b", 20, domain.RoleTop, domain.RoleMid),
		newPlayer("c", 15, domain.RoleJungle, domain.RoleTop),
		newPlayer("d", 25, domain.RoleJungle, domain.RoleMid),
		newPlayer("e", 30, domain.RoleMid, domain.RoleTop),
		newPlayer("f", 12, domain.RoleMid, domain.RoleJungle),
		newPlayer("g", 18, domain.RoleBot, domain.RoleMid),
		newPlayer("h", 22, domain.RoleBot, domain.RoleTop),
		newPlayer("i", 40, domain.RoleSupport, domain.RoleBot),
		newPlayer("j", 5, domain.RoleBot, domain.RoleJungle),
	}

	got, err := Assign(players)
	require.NoError(t, err)
	requirePartition(t, players, got)

	// i is consumed by bot, leaving support with no candidates at all.
	assert.Equal(t, [2]string{"h", "i"}, pairNames(got[domain.RoleBot]))
	assert.Equal(t, [2]string{"e", "d"}, pairNames(got[domain.RoleSupport]))
}

func TestAssign_FillPlayers(t *testing.T) {
	players := []domain.Player{
		newPlayer("top1", 30, domain.RoleTop, domain.RoleMid),
		newPlayer("fillA", 30, domain.RoleMid, domain.RoleFill),
		newPlayer("fillB", 1, domain.RoleJungle, domain.RoleFill),
		newPlayer("jg1", 20, domain.RoleJungle, domain.RoleMid),
		newPlayer("mid1", 15, domain.RoleMid, domain.RoleBot),
		newPlayer("mid2", 16, domain.RoleMid, domain.RoleTop),
		newPlayer("bot1", 5, domain.RoleBot, domain.RoleSupport),
		newPlayer("bot2", 8, domain.RoleBot, domain.RoleMid),
		newPlayer("sup1", 40, domain.RoleSupport, domain.RoleJungle),
		newPlayer("sup2", 41, domain.RoleSupport, domain.RoleBot),
	}

	got, err := Assign(players)
	require.NoError(t, err)
	requirePartition(t, players, got)

	// Candidates are ordered by score, so a weak fill player displaces a top main.
	assert.Equal(t, [2]string{"fillB", "mid2"}, pairNames(got[domain.RoleTop]))
	assert.Equal(t, [2]string{"jg1", "fillA"}, pairNames(got[domain.RoleJungle]))
	assert.Equal(t, [2]string{"bot2", "mid1"}, pairNames(got[domain.RoleMid]))
	assert.Equal(t, [2]string{"bot1", "sup2"}, pairNames(got[domain.RoleBot]))
	assert.Equal(t, [2]string{"sup1", "top1"}, pairNames(got[domain.RoleSupport]))
}

func TestAssign_PreferredWinsTies(t *testing.T) {
	players := []domain.Player{
		newPlayer("fill", 10, domain.RoleMid, domain.RoleFill),
		newPlayer("top1", 10, domain.RoleTop, domain.RoleMid),
		newPlayer("top2", 10, domain.RoleTop, domain.RoleMid),
		newPlayer("jg1", 10, domain.RoleJungle, domain.RoleMid),
		newPlayer("jg2", 10, domain.RoleJungle, domain.RoleMid),
		newPlayer("mid1", 10, domain.RoleMid, domain.RoleBot),
		newPlayer("bot1", 10, domain.RoleBot, domain.RoleSupport),
		newPlayer("bot2", 10, domain.RoleBot, domain.RoleSupport),
		newPlayer("sup1", 10, domain.RoleSupport, domain.RoleBot),
		newPlayer("sup2", 10, domain.RoleSupport, domain.RoleBot),
	}

	got, err := Assign(players)
	require.NoError(t, err)
	requirePartition(t, players, got)
	assert.Equal(t, [2]string{"top1", "top2"}, pairNames(got[domain.RoleTop]))
	assert.Equal(t, [2]string{"fill", "mid1"}, pairNames(got[domain.RoleMid]))
}

func TestAssign_PlayerCount(t *testing.T) {
	pool := make([]domain.Player, 0, 11)
	for i := 0; i < 11; i++ {
		pool = append(pool, newPlayer("p", i, domain.RoleMid, domain.RoleFill))
	}
	tests := []struct {
		name    string
		players []domain.Player
	}{
		{name: "none", players: nil},
		{name: "nine", players: pool[:9]},
		{name: "eleven", players: pool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assign(tt.players)
			assert.ErrorIs(t, err, ErrInsufficientPlayers)
		})
	}
}

func TestAssign_DuplicatePlayer(t *testing.T) {
	players := make([]domain.Player, 0, MatchSize)
	for i := 0; i < MatchSize-1; i++ {
		players = append(players, newPlayer("p", i, domain.RoleMid, domain.RoleFill))
	}
	players = append(players, players[0])

	_, err := Assign(players)
	assert.ErrorIs(t, err, ErrDuplicatePlayer)
}

func TestAssign_DoesNotReorderInput(t *testing.T) {
	players := make([]domain.Player, 0, MatchSize)
	for i := 0; i < MatchSize; i++ {
		players = append(players, newPlayer("p", MatchSize-i, domain.RoleBot, domain.RoleFill))
	}
	before := append([]domain.Player(nil), players...)

	got, err := Assign(players)
	require.NoError(t, err)
	requirePartition(t, players, got)
	assert.Equal(t, before, players)
}
