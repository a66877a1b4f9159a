package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts fact and command names from context and adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if name := GetFact(ctx); name != "" {
		e.Str("fact", name)
	}

	if name := GetCommand(ctx); name != "" {
		e.Str("command", name)
	}
}
