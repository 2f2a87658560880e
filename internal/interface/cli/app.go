// Package cli implements the console demonstration driver for the tracker.
//
// The driver is not part of the core: it wires the validated record types,
// the Course collection, the ordering engine, and the event bus together,
// and exercises every failure path the core can signal.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/Kunalv272/StudentTracker/config"
	"github.com/Kunalv272/StudentTracker/internal/domain/course"
	"github.com/Kunalv272/StudentTracker/internal/domain/shared"
	"github.com/Kunalv272/StudentTracker/internal/infrastructure/messaging"
	"github.com/Kunalv272/StudentTracker/pkg/logger"
)

const appConfigKey = "app-config"

var (
	version = "v0.1.0-default"
	commit  = ""

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format for structured dumps [text, json, yaml]",
	}

	rosterFlag = &cli.StringFlag{
		Name:  "roster",
		Usage: "Path to a YAML roster seed (optional, defaults to the built-in sample)",
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		logger.Default().Error("fatal error", logger.Err(err))
		os.Exit(1)
	}
}

type appConfig struct {
	Config *config.Config
	Log    *logger.Logger
	Course *course.Course
	Bus    *messaging.Bus
	Format string
}

func getConfig(c *cli.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *cli.App {
	return &cli.App{
		Name:            "tracker",
		Version:         fmt.Sprintf("%s (%s)", version, commit),
		Compiled:        time.Now(),
		HideHelpCommand: true,
		Usage:           "In-memory student record tracker with roll, marks, and trie-based name ordering",
		Metadata:        map[string]interface{}{},
		Flags: []cli.Flag{
			debugFlag,
			formatFlag,
			rosterFlag,
		},
		Commands: []*cli.Command{
			demoCmd,
			rosterCmd,
			sortCmd,
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			level := logger.ParseLevel(cfg.Log.Level)
			if c.Bool(debugFlag.Name) {
				level = logger.LevelDebug
			}
			log := logger.New(logger.Options{
				Output: os.Stderr,
				Level:  level,
				Format: logger.ParseFormat(cfg.Log.Format),
			})

			format := cfg.Demo.Format
			if f := c.String(formatFlag.Name); f != "" {
				format = f
			}

			rosterPath := cfg.Demo.RosterPath
			if p := c.String(rosterFlag.Name); p != "" {
				rosterPath = p
			}

			entries := sampleRoster()
			if rosterPath != "" {
				entries, err = loadRosterFile(rosterPath)
				if err != nil {
					return fmt.Errorf("loading roster seed: %w", err)
				}
			}

			bus := messaging.New(messaging.Config{Logger: log, EnableMetrics: true})
			if err := bus.SubscribeAll(eventLogger(log)); err != nil {
				return err
			}

			crs := buildCourse(entries, bus, log)

			c.App.Metadata[appConfigKey] = &appConfig{
				Config: cfg,
				Log:    log,
				Course: crs,
				Bus:    bus,
				Format: format,
			}
			return nil
		},
	}
}

// eventLogger returns a handler that logs every published domain event.
func eventLogger(log *logger.Logger) shared.EventHandler {
	return func(e shared.Event) error {
		log.Debug("domain event",
			logger.String("event_type", string(e.EventType())),
			logger.String("aggregate_id", e.AggregateID()),
			logger.Any("payload", e.Payload()),
		)
		return nil
	}
}
