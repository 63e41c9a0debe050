package cli

import (
	"strconv"
	"strings"

	"github.com/goserg/teambalancer/internal/rank"
)

type RankCommand struct{}

func (c *RankCommand) Run(args []string) (string, error) {
	if len(args) == 0 {
		return "", usage(c)
	}
	raw := strings.Join(args, " ")
	score, err := rank.Parse(raw)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(rank.Display(raw))
	b.WriteString(": ")
	b.WriteString(strconv.Itoa(score))
	b.WriteString("\n")
	return b.String(), nil
}

func (c *RankCommand) Help() string {
	return `Prints the skill score of a rank. Usage: rank <tier> [division], e.g. rank gold ii`
}
