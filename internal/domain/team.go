package domain

// Pair holds the two players sharing a role, one per team.
type Pair [2]Player

type RoleAssignment map[Role]Pair

type TeamEntry struct {
	Player Player
	Role   Role
}

// Team is ordered by Roles.
type Team []TeamEntry

// Line is a rendered roster row. Role is empty for random teams.
type Line struct {
	Name string
	Rank string
	Role Role
}
