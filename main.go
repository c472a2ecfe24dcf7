// Command realestate runs the Real Estate Game from scripted scenarios.
//
// Subcommands:
//  1. "play" – run a scenario file against a fresh board and print the outcome
//  2. "configs" – list the board configurations in the config directory
//  3. "validate" – check board configuration files and exit non-zero on errors
//
// Flags control the config directory and debug logging. A .env file in the
// working directory is loaded first, so CONFIG_DIR may be set there.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Real Estate Game"
)

// app carries what every subcommand needs once the global flags are parsed
type app struct {
	out       io.Writer
	errOut    io.Writer
	logger    zerolog.Logger
	configDir string
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	loadEnv(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadEnv loads .env files, warning on anything but a missing file
func loadEnv(errOut io.Writer, filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(errOut, "Warning: error loading .env file: %v\n", err)
	}
}

// newCommand builds the CLI; output goes to out and logs to errOut
func newCommand(out, errOut io.Writer) *cli.Command {
	a := &app{out: out, errOut: errOut, logger: zerolog.Nop()}

	return &cli.Command{
		Name:    "realestate",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   "configs",
				Usage:   "directory containing board configurations",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "run a scenario file and print the result",
				ArgsUsage: "<scenario-file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print the report as JSON",
					},
				},
				Action: a.play,
			},
			{
				Name:   "configs",
				Usage:  "list available board configurations",
				Action: a.listConfigs,
			},
			{
				Name:      "validate",
				Usage:     "validate board configuration files",
				ArgsUsage: "[files...]",
				Action:    a.validate,
			},
		},
	}
}

// setup configures logging and records the global flags
func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := zerolog.InfoLevel
	if cmd.Bool("debug") {
		level = zerolog.DebugLevel
	}

	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.errOut, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
	a.configDir = cmd.String("config-dir")

	a.logger.Debug().Str("config_dir", a.configDir).Str("version", Version).Msg("starting")
	return ctx, nil
}
