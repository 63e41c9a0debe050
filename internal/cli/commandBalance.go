package cli

import (
	"strings"

	"github.com/goserg/teambalancer/internal/render"
	"github.com/goserg/teambalancer/internal/roster"
	"github.com/goserg/teambalancer/internal/service"
)

type BalanceCommand struct {
	balancer *service.Balancer
}

func (c *BalanceCommand) Run(args []string) (string, error) {
	if len(args) != 1 {
		return "", usage(c)
	}
	players, err := roster.Load(args[0])
	if err != nil {
		return "", err
	}
	result, err := c.balancer.Balance(players)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := render.Teams(&b, "Team 1", result.TeamA, "Team 2", result.TeamB); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (c *BalanceCommand) Help() string {
	return "Balances ten players into two teams by role and rank. Usage: balance <roster.toml>"
}
