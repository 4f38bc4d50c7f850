package logger

import "context"

type contextKey string

const (
	loggerKey  contextKey = "snaptree.logger"
	buildIDKey contextKey = "snaptree.build_id"
	treeIDKey  contextKey = "snaptree.tree_id"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the context's logger, or the default logger.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithBuildID tags the context with the sequence number of a build.
func WithBuildID(ctx context.Context, id uint64) context.Context {
	return context.WithValue(ctx, buildIDKey, id)
}

// BuildIDFromContext returns the build sequence number, if any.
func BuildIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(buildIDKey).(uint64)
	return id, ok
}

// WithTreeID tags the context with the ID of the tree being built.
func WithTreeID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, treeIDKey, id)
}

// TreeIDFromContext returns the tree ID, or "".
func TreeIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(treeIDKey).(string)
	return id
}

// L returns the context's logger with the build and tree IDs attached.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)
	if id, ok := BuildIDFromContext(ctx); ok {
		l = l.With("build_id", id)
	}
	if id := TreeIDFromContext(ctx); id != "" {
		l = l.With("tree_id", id)
	}
	return l
}
