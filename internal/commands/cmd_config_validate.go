package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/factprobe/internal/core/config"
	"github.com/hay-kot/factprobe/internal/core/styles"
	"github.com/hay-kot/factprobe/internal/factprobe"
	"github.com/hay-kot/factprobe/pkg/format"
)

type ConfigValidateCmd struct {
	flags  *Flags
	app    *factprobe.App
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags, app *factprobe.App) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags, app: app}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "factprobe config validate [options]",
				Description: "Validates the configuration file and reports non-fatal warnings.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       string(format.Text),
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	f, err := format.Parse(cmd.format, format.Text, format.JSON)
	if err != nil {
		return err
	}

	validateErr := cmd.app.Config.ValidateDeep(cmd.app.ConfigPath)
	warnings := cmd.app.Config.Warnings()
	w := c.Root().Writer

	if f == format.JSON {
		out := struct {
			Valid    bool                       `json:"valid"`
			Error    string                     `json:"error,omitempty"`
			Warnings []config.ValidationWarning `json:"warnings,omitempty"`
		}{
			Valid:    validateErr == nil,
			Warnings: warnings,
		}
		if validateErr != nil {
			out.Error = validateErr.Error()
		}
		if err := format.Write(w, format.JSON, out); err != nil {
			return err
		}
	} else {
		cmd.outputText(w, validateErr, warnings)
	}

	if validateErr != nil {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigValidateCmd) outputText(w io.Writer, validateErr error, warnings []config.ValidationWarning) {
	if validateErr != nil {
		_, _ = fmt.Fprintf(w, "%s %s\n", styles.TextErrorStyle.Render("✘"), validateErr)
	} else {
		_, _ = fmt.Fprintf(w, "%s %s\n", styles.TextSuccessStyle.Render("✔"), configLabel(cmd.app.ConfigPath))
	}

	for _, warn := range warnings {
		label := warn.Category
		if warn.Item != "" {
			label += " " + warn.Item
		}
		_, _ = fmt.Fprintf(w, "%s %s %s\n",
			styles.TextWarningStyle.Render("●"),
			label,
			styles.TextMutedStyle.Render(warn.Message),
		)
	}
}

func configLabel(path string) string {
	if path == "" {
		return "defaults"
	}
	return path
}
