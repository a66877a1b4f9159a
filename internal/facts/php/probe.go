package php

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/factprobe/internal/core/fact"
	"github.com/hay-kot/factprobe/pkg/executil"
)

// ExtensionDirFact is the registered name of the extension directory fact.
const ExtensionDirFact = "php_fact_extension_dir"

// Reasons logged when the probe yields no value.
const (
	reasonNotFound    = "not_found"
	reasonExecFailed  = "exec_failed"
	reasonEmptyOutput = "empty_output"
	reasonNoMatch     = "no_match"
)

// Options configures an ExtensionDirProbe.
type Options struct {
	Binary   string
	Timezone string
	Timeout  time.Duration
}

// ExtensionDirProbe resolves the directory php loads binary extensions from.
// Every failure mode collapses to an absent value; the reason is logged at
// debug level.
type ExtensionDirProbe struct {
	exec   executil.Executor
	opts   Options
	logger zerolog.Logger
}

// NewExtensionDirProbe creates a probe that runs through exec.
func NewExtensionDirProbe(exec executil.Executor, opts Options, logger zerolog.Logger) *ExtensionDirProbe {
	if opts.Binary == "" {
		opts.Binary = "php"
	}
	if opts.Timezone == "" {
		opts.Timezone = "UTC"
	}
	return &ExtensionDirProbe{exec: exec, opts: opts, logger: logger}
}

// Script returns the inline program passed to php -r.
func (p *ExtensionDirProbe) Script() string {
	return fmt.Sprintf("ini_set('date.timezone','%s'); phpinfo();", p.opts.Timezone)
}

// Resolve implements fact.Resolver.
func (p *ExtensionDirProbe) Resolve(ctx context.Context) fact.Value {
	path, err := p.exec.LookPath(p.opts.Binary)
	if err != nil {
		p.absent(ctx, reasonNotFound).Err(err).Msg("php not on search path")
		return fact.Absent()
	}

	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	out, err := p.exec.Output(ctx, path, "-r", p.Script())
	if err != nil {
		p.absent(ctx, reasonExecFailed).Err(err).Str("path", path).Msg("php exited with failure")
		return fact.Absent()
	}

	if strings.TrimSpace(string(out)) == "" {
		p.absent(ctx, reasonEmptyOutput).Str("path", path).Msg("php produced no output")
		return fact.Absent()
	}

	dir, ok := ParseExtensionDir(string(out))
	if !ok {
		p.absent(ctx, reasonNoMatch).Str("path", path).Msg("extension_dir not in phpinfo output")
		return fact.Absent()
	}

	return fact.Some(dir)
}

func (p *ExtensionDirProbe) absent(ctx context.Context, reason string) *zerolog.Event {
	return p.logger.Debug().Ctx(ctx).Str("reason", reason)
}
