package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/goserg/teambalancer/internal/cli"
	"github.com/goserg/teambalancer/internal/config"
	"github.com/goserg/teambalancer/internal/logger"
	"github.com/goserg/teambalancer/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg, err := config.New(configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}

	seed := cfg.Balancer.RandSeed()
	log.WithField("seed", seed).Debug("random source seeded")
	balancer := service.New(rand.New(rand.NewSource(seed)), log)
	commands := cli.NewCommands(balancer)

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"help"}
	}
	out, err := commands.RunCommand(args[0], args[1:])
	if err != nil {
		if errors.Is(err, cli.ErrUnknownCommand) {
			help, _ := commands.RunCommand("help", nil)
			fmt.Print(help)
		}
		return err
	}
	fmt.Print(out)
	return nil
}
