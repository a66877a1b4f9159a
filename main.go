package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/factprobe/internal/commands"
	"github.com/hay-kot/factprobe/internal/core/config"
	"github.com/hay-kot/factprobe/internal/core/logging"
	"github.com/hay-kot/factprobe/internal/factprobe"
	"github.com/hay-kot/factprobe/pkg/executil"
	"github.com/hay-kot/factprobe/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls back
	// to runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		probeApp  = &factprobe.App{}
		flags     = &commands.Flags{}
	)

	app := commands.NewRoot(flags, probeApp)
	app.Version = build()

	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger.Hook(logging.ContextHook{})
		logCloser = closer

		if c.Args().Len() > 0 {
			ctx = logging.WithCommand(ctx, c.Args().First())
		}

		cfg, err := config.Load(flags.ConfigPath)
		if err != nil {
			return ctx, fmt.Errorf("load config: %w", err)
		}

		built, err := factprobe.New(cfg, flags.ConfigPath, &executil.RealExecutor{}, log.Logger)
		if err != nil {
			return ctx, err
		}

		// Commands already hold a pointer to probeApp.
		*probeApp = *built

		cliLog := logging.Component("cli")
		cliLog.Debug().Ctx(ctx).
			Str("config", flags.ConfigPath).
			Strs("facts", probeApp.Registry.Names()).
			Msg("registry ready")

		return ctx, nil
	}

	app.After = func(ctx context.Context, c *cli.Command) error {
		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
