package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/factprobe/internal/factprobe"
)

type LsCmd struct {
	flags *Flags
	app   *factprobe.App
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags, app *factprobe.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List registered facts",
		UsageText: "factprobe ls",
		Action:    cmd.run,
	})
	return app
}

func (cmd *LsCmd) run(_ context.Context, c *cli.Command) error {
	w := c.Root().Writer
	for _, name := range cmd.app.Registry.Names() {
		_, _ = fmt.Fprintln(w, name)
	}
	return nil
}
