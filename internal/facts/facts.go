// Package facts wires the built-in fact resolvers into a registry.
package facts

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hay-kot/factprobe/internal/core/config"
	"github.com/hay-kot/factprobe/internal/core/fact"
	"github.com/hay-kot/factprobe/internal/facts/php"
	"github.com/hay-kot/factprobe/pkg/executil"
)

// Register adds every built-in fact not disabled by cfg to reg. It is called
// once at start-up.
func Register(reg *fact.Registry, cfg *config.Config, exec executil.Executor, logger zerolog.Logger) error {
	builtin := map[string]fact.Resolver{
		php.ExtensionDirFact: php.NewExtensionDirProbe(exec, php.Options{
			Binary:   cfg.PHP.Binary,
			Timezone: cfg.PHP.Timezone,
			Timeout:  cfg.PHP.Timeout,
		}, logger.With().Str("cmp", "php").Logger()),
	}

	for name, res := range builtin {
		if fact.MatchAny(cfg.Facts.Disabled, name) {
			logger.Debug().Str("fact", name).Msg("fact disabled by config")
			continue
		}
		if err := reg.Add(name, res); err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
	}

	return nil
}
