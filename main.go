package main

import (
	"fmt"
	"os"

	"blogsite/app/commands"
	"blogsite/app/config"
)

var exit = os.Exit

func main() {
	RealMain()
}

// RealMain loads the configuration from the working directory and runs the
// command named on the command line.
func RealMain() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}
	defer log.Sync()

	code := commands.New(cfg, log).HandleCommand(os.Args[1:])
	if code != 0 {
		log.Sync()
		exit(code)
	}
}
