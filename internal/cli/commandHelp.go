package cli

import "strings"

type HelpCommand struct {
	commands map[string]Command
}

func (c *HelpCommand) Run(args []string) (string, error) {
	if len(args) > 0 {
		if command, ok := c.commands[args[0]]; ok {
			return command.Help() + "\n", nil
		}
	}
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range sortedNames(c.commands) {
		b.WriteString("  ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("Run help <command> for details.\n")
	return b.String(), nil
}

func (c *HelpCommand) Help() string {
	return "Lists commands. Usage: help [command]"
}
