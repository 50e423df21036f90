package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hpungsan/tubesort/internal/config"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   _        _
  | |_ _  _| |__  ___ ___ ___ _ _| |_
  |  _| || | '_ \/ -_|_-</ _ \ '_|  _|
   \__|\_,_|_.__/\___/__/\___/_|  \__|

  Water-sort puzzle solver

  Usage: tubesort <command> [options]
         tubesort --help

  Example: tubesort solve YRRR,YRYY,....,....`)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	cfg := config.DefaultConfig()
	if homeDir, err := os.UserHomeDir(); err == nil {
		loaded, err := config.Load(filepath.Join(homeDir, ".tubesort"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	app := newCLIApp(cfg)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
