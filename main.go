// Command superheroes runs the superhero roster demonstration.
//
// It supports three commands:
//  1. "demo" (default) – recruits a roster and walks every hero through its actions
//  2. "rosters" – lists the roster files in the roster directory
//  3. "validate" – validates roster files and exits non-zero on the first bad one
//
// Settings come from the environment (optionally a .env file) and can be
// overridden with flags.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/superheroes/hero/config"
	"github.com/wricardo/superheroes/hero/roster"
	"github.com/wricardo/superheroes/hero/service"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Superhero Roster"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	appConfig, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := newApp(appConfig).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the command tree. Flag defaults come from the environment.
func newApp(appConfig *config.AppConfig) *cli.Command {
	return &cli.Command{
		Name:    "superheroes",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "roster-dir",
				Value: appConfig.RosterDir,
				Usage: "directory containing roster files (.json, .yaml, .yml)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Value: appConfig.Debug,
				Usage: "enable debug logging",
			},
		},
		DefaultCommand: "demo",
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "recruit a roster and exercise every hero",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "roster",
						Value: appConfig.Roster,
						Usage: "roster to recruit (default roster when empty)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print action results as JSON",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd.Bool("debug"))

					heroes, err := initializeServices(cmd.String("roster-dir"))
					if err != nil {
						return fmt.Errorf("failed to initialize services: %w", err)
					}

					d := newDemo(heroes, os.Stdout, cmd.Bool("json"))
					return d.Run(ctx, cmd.String("roster"))
				},
			},
			{
				Name:  "rosters",
				Usage: "list available rosters",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd.Bool("debug"))

					heroes, err := initializeServices(cmd.String("roster-dir"))
					if err != nil {
						return fmt.Errorf("failed to initialize services: %w", err)
					}
					return listRosters(ctx, heroes, os.Stdout)
				},
			},
			{
				Name:      "validate",
				Usage:     "validate roster files",
				ArgsUsage: "FILE...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					setupLogging(cmd.Bool("debug"))

					files := cmd.Args().Slice()
					if len(files) == 0 {
						return cli.Exit("validate: at least one roster file is required", 2)
					}
					if failed := validateFiles(files, os.Stdout); failed > 0 {
						return cli.Exit(fmt.Sprintf("validate: %d of %d roster files are invalid", failed, len(files)), 1)
					}
					return nil
				},
			},
		},
	}
}

// setupLogging adds file and line information in debug mode
func setupLogging(debug bool) {
	if debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.Printf("Starting %s v%s (debug)", AppName, Version)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

// initializeServices wires the roster registry, roster configuration and the
// hero service
func initializeServices(rosterDir string) (service.HeroService, error) {
	configManager, err := config.NewManager(rosterDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	registry := roster.NewManager()
	return service.NewHeroService(registry, configManager), nil
}
