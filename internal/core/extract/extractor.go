package extract

// Default limits.
const (
	DefaultMaxDepth = 8
	DefaultMaxHooks = 256
)

// Options bounds the work an Extractor does on a single payload.
type Options struct {
	// MaxDepth caps nesting when copying props, context and state payloads.
	MaxDepth int
	// MaxHooks caps the number of chained-state records walked per node.
	MaxHooks int
}

// Extractor bundles the state, props and context extraction operations.
// It holds no per-call state and is safe for concurrent use.
type Extractor struct {
	opts Options
}

// New creates an Extractor. Non-positive limits fall back to the defaults.
func New(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

func (e *Extractor) maxDepth() int {
	if e == nil || e.opts.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return e.opts.MaxDepth
}

func (e *Extractor) maxHooks() int {
	if e == nil || e.opts.MaxHooks <= 0 {
		return DefaultMaxHooks
	}
	return e.opts.MaxHooks
}

var std = New(Options{})

// FilterAndFormatData formats payload with the default limits.
func FilterAndFormatData(payload any) map[string]any {
	return std.FilterAndFormatData(payload)
}

// CopyValue copies v with the default limits.
func CopyValue(v any) any {
	return std.CopyValue(v)
}
