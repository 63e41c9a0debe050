package domain

import (
	"github.com/google/uuid"
)

type Player struct {
	ID        uuid.UUID
	Name      string
	RawRank   string
	Score     int
	Primary   Role
	Secondary Role
}

// Prefers reports whether the player listed role as primary or secondary.
func (p Player) Prefers(role Role) bool {
	return p.Primary == role || p.Secondary == role
}

func (p Player) Flexible() bool {
	return p.Secondary == RoleFill
}

// PlayerInput is one roster row as collected from the user.
type PlayerInput struct {
	Name      string `toml:"name" validate:"required"`
	Rank      string `toml:"rank" validate:"required"`
	Primary   string `toml:"primary" validate:"required,oneof=top jungle mid bot support"`
	Secondary string `toml:"secondary" validate:"required,oneof=top jungle mid bot support fill,nefield=Primary"`
}
