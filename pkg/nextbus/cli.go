package nextbus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kr/pretty"
	"github.com/travigo/nextbus/pkg/config"
	"github.com/travigo/nextbus/pkg/nextrip"
	"github.com/travigo/nextbus/pkg/resolver"
	"github.com/urfave/cli/v2"
)

const usageExitCode = 2

func init() {
	// -h belongs to --host
	cli.HelpFlag = &cli.BoolFlag{
		Name:  "help",
		Usage: "show help",
	}
}

// NewApp builds the command line application. Results go to stdout and
// diagnostics to stderr; env stands in for the process environment.
func NewApp(stdout io.Writer, stderr io.Writer, env map[string]string) *cli.App {
	return &cli.App{
		Name:            "nextbus",
		Usage:           "Show when the next departure leaves a stop",
		UsageText:       "nextbus [options] ROUTE STOP DIRECTION",
		ArgsUsage:       "ROUTE STOP DIRECTION",
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,

		// Exit codes are worked out by Run, never by os.Exit inside the app
		ExitErrHandler: func(c *cli.Context, err error) {},

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "date-time",
				Aliases: []string{"d"},
				Usage:   "reference time for scheduled departures, epoch milliseconds or 20060102150405-07:00",
			},
			&cli.StringFlag{
				Name:    "host",
				Aliases: []string{"h"},
				Usage:   "NexTrip API host",
				Value:   nextrip.DefaultHost,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "timeout for each API request",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print the resolved route, direction, stop and departure to stderr",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log every lookup to stderr",
			},
		},

		Action: func(c *cli.Context) error {
			if c.NArg() != 3 {
				_ = cli.ShowAppHelp(c)
				return cli.Exit(fmt.Sprintf("expected ROUTE STOP DIRECTION, got %d arguments", c.NArg()), usageExitCode)
			}

			cfg, err := config.Load(c.String("config"), env)
			if err != nil {
				return err
			}
			if c.IsSet("host") {
				cfg.Host = strings.TrimSpace(c.String("host"))
			}
			if c.IsSet("timeout") {
				cfg.Timeout = c.Duration("timeout")
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger := NewLogger(stderr, env, c.Bool("debug"))
			logger.Debug().Str("host", cfg.Host).Dur("timeout", cfg.Timeout).Msg("Loaded configuration")

			transport := nextrip.NewHTTPTransport(cfg.Timeout, cfg.UserAgent)
			departureResolver := resolver.New(nextrip.NewClient(cfg.Host, cfg.Endpoints, transport), logger)

			resolution, err := departureResolver.Resolve(c.Context, resolver.Query{
				Route:         c.Args().Get(0),
				Stop:          c.Args().Get(1),
				Direction:     c.Args().Get(2),
				ReferenceTime: c.String("date-time"),
			})
			if err != nil {
				return err
			}

			if c.Bool("verbose") {
				_, _ = pretty.Fprintf(stderr, "%# v\n", resolution)
			}

			_, err = fmt.Fprintln(stdout, resolution.Label)
			return err
		},
	}
}

// Run executes the application and returns the process exit code. Any
// failure is reported as a single "ERROR: <message>" line on stderr.
func Run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer, env map[string]string) int {
	err := NewApp(stdout, stderr, env).RunContext(ctx, args)
	if err == nil {
		return 0
	}

	code := 1
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code = exitCoder.ExitCode()
	}

	fmt.Fprintf(stderr, "ERROR: %s\n", err)

	return code
}
