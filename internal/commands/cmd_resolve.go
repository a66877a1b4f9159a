package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/factprobe/internal/core/fact"
	"github.com/hay-kot/factprobe/internal/factprobe"
	"github.com/hay-kot/factprobe/pkg/format"
)

type ResolveCmd struct {
	flags  *Flags
	app    *factprobe.App
	format string
}

// NewResolveCmd creates a new resolve command.
func NewResolveCmd(flags *Flags, app *factprobe.App) *ResolveCmd {
	return &ResolveCmd{flags: flags, app: app}
}

// Register adds the resolve command to the application.
func (cmd *ResolveCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve facts and print their values",
		UsageText: "factprobe resolve [options] [pattern...]",
		Description: `Resolves every registered fact, or only those whose names match one of the
given glob patterns (e.g. 'php_*').

Text output prints 'name => value' and skips absent facts. JSON and YAML
output include absent facts as null.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format (text, json, yaml)",
				Value:       string(format.Text),
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ResolveCmd) run(ctx context.Context, c *cli.Command) error {
	f, err := format.Parse(cmd.format, format.Text, format.JSON, format.YAML)
	if err != nil {
		return err
	}

	names, err := cmd.app.Registry.Match(c.Args().Slice()...)
	if err != nil {
		return err
	}
	if c.Args().Len() > 0 && len(names) == 0 {
		return fmt.Errorf("no facts match %v", c.Args().Slice())
	}

	results, err := cmd.app.Collector.Collect(ctx, names)
	if err != nil {
		return fmt.Errorf("collect facts: %w", err)
	}

	w := c.Root().Writer
	if f == format.Text {
		for _, r := range results {
			if v, ok := r.Value.Get(); ok {
				_, _ = fmt.Fprintf(w, "%s => %s\n", r.Name, v)
			}
		}
		return nil
	}

	return format.Write(w, f, resultsMap(results))
}

func resultsMap(results []fact.Result) map[string]fact.Value {
	out := make(map[string]fact.Value, len(results))
	for _, r := range results {
		out[r.Name] = r.Value
	}
	return out
}
