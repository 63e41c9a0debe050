package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goserg/teambalancer/internal/service"
)

type Command interface {
	Run(args []string) (string, error)
	Help() string
}

type Commands struct {
	list map[string]Command
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong arguments")
)

func NewCommands(b *service.Balancer) *Commands {
	hc := &HelpCommand{}
	c := Commands{
		list: map[string]Command{
			"help": hc,
			"balance": &BalanceCommand{
				balancer: b,
			},
			"random": &RandomCommand{
				balancer: b,
			},
			"rank": &RankCommand{},
		},
	}
	hc.commands = c.list
	return &c
}

func (c *Commands) RunCommand(cmd string, args []string) (string, error) {
	command, ok := c.list[cmd]
	if !ok {
		return "", fmt.Errorf("%w %q, see help", ErrUnknownCommand, cmd)
	}
	return command.Run(args)
}

func usage(c Command) error {
	return fmt.Errorf("%w: %s", ErrUsage, c.Help())
}

func sortedNames(commands map[string]Command) []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
