// Package factprobe assembles the registry, collector and health checks that
// the CLI commands operate on.
package factprobe

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hay-kot/factprobe/internal/core/config"
	"github.com/hay-kot/factprobe/internal/core/doctor"
	"github.com/hay-kot/factprobe/internal/core/fact"
	"github.com/hay-kot/factprobe/internal/facts"
	"github.com/hay-kot/factprobe/pkg/executil"
)

// App is the top-level container for the loaded configuration and the
// fact registry built from it.
type App struct {
	Config     *config.Config
	ConfigPath string
	Registry   *fact.Registry
	Collector  *fact.Collector
}

// New registers the built-in facts and returns a ready App.
func New(cfg *config.Config, configPath string, exec executil.Executor, logger zerolog.Logger) (*App, error) {
	reg := fact.NewRegistry()
	if err := facts.Register(reg, cfg, exec, logger); err != nil {
		return nil, fmt.Errorf("register facts: %w", err)
	}

	return &App{
		Config:     cfg,
		ConfigPath: configPath,
		Registry:   reg,
		Collector:  fact.NewCollector(reg, cfg.Collector.Workers, logger.With().Str("cmp", "collector").Logger()),
	}, nil
}

// DoctorChecks returns the checks run by the doctor command, in display order.
func (a *App) DoctorChecks() []doctor.Check {
	return []doctor.Check{
		doctor.NewConfigCheck(a.Config, a.ConfigPath),
		doctor.NewToolsCheck(a.Config.PHP.Binary),
		doctor.NewFactsCheck(a.Collector),
	}
}
