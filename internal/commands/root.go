package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/factprobe/internal/factprobe"
)

// NewRoot builds the root command with global flags and every subcommand
// registered. Lifecycle hooks are left to the caller.
func NewRoot(flags *Flags, app *factprobe.App) *cli.Command {
	root := &cli.Command{
		Name:      "factprobe",
		Usage:     "Resolve host facts for configuration management",
		UsageText: "factprobe [global options] command [command options]",
		Description: `factprobe gathers named facts about the current host by probing local
tools, such as the directory the php interpreter loads extensions from.

A fact that cannot be determined is reported as absent, never as an error.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("FACTPROBE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("FACTPROBE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("FACTPROBE_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
	}

	root = NewResolveCmd(flags, app).Register(root)
	root = NewLsCmd(flags, app).Register(root)
	root = NewDoctorCmd(flags, app).Register(root)
	root = NewConfigValidateCmd(flags, app).Register(root)

	return root
}
