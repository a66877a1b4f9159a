package logging

import "context"

type contextKey string

const (
	factKey    contextKey = "fact"
	commandKey contextKey = "command"
)

// WithFact adds the name of the fact being resolved to the context.
func WithFact(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, factKey, name)
}

// WithCommand adds the CLI command name to the context.
func WithCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey, name)
}

// GetFact retrieves the fact name from the context.
// Returns empty string if not present.
func GetFact(ctx context.Context) string {
	if name, ok := ctx.Value(factKey).(string); ok {
		return name
	}
	return ""
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if name, ok := ctx.Value(commandKey).(string); ok {
		return name
	}
	return ""
}
