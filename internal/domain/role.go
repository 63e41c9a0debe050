package domain

// Role is a lane position. Fill is only valid as a secondary preference.
type Role string

const (
	RoleTop     Role = "top"
	RoleJungle  Role = "jungle"
	RoleMid     Role = "mid"
	RoleBot     Role = "bot"
	RoleSupport Role = "support"
	RoleFill    Role = "fill"
)

// Roles is the fixed processing order for assignment and team output.
var Roles = []Role{RoleTop, RoleJungle, RoleMid, RoleBot, RoleSupport}

func (r Role) String() string {
	return string(r)
}
