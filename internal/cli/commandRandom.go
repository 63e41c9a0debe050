package cli

import (
	"strings"

	"github.com/goserg/teambalancer/internal/render"
	"github.com/goserg/teambalancer/internal/roster"
	"github.com/goserg/teambalancer/internal/service"
)

type RandomCommand struct {
	balancer *service.Balancer
}

func (c *RandomCommand) Run(args []string) (string, error) {
	if len(args) != 1 {
		return "", usage(c)
	}
	players, err := roster.Load(args[0])
	if err != nil {
		return "", err
	}
	result, err := c.balancer.Random(players)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := render.Teams(&b, "Random Team 1", result.TeamA, "Random Team 2", result.TeamB); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c *RandomCommand) Help() string {
	return "Shuffles ten players into two teams, ignoring roles and ranks. Usage: random <roster.toml>"
}
