package shadergraph

import (
	"log/slog"
	"time"

	"github.com/bep/debounce"

	"github.com/gogpu/shadergraph/glsl"
	"github.com/gogpu/shadergraph/graph"
)

// DefaultDebounce is the edit-coalescing window used when
// RecompilerOptions leaves Interval zero.
const DefaultDebounce = 150 * time.Millisecond

// RecompilerOptions configures a Recompiler.
type RecompilerOptions struct {
	// Interval is the quiet period after the last Invalidate before a
	// compile runs. Zero selects DefaultDebounce.
	Interval time.Duration

	// Compile configures the underlying compilation.
	Compile CompileOptions

	// Logger receives per-compile debug records. Nil selects
	// slog.Default().
	Logger *slog.Logger
}

// Recompiler coalesces rapid graph edits into a bounded rate of compiles.
// The compiler itself imposes no rate limit; this helper is the caller
// side policy, packaged so interactive editors do not reimplement it.
//
// Invalidate may be called from any goroutine. Delivery runs on the
// debounce timer's goroutine.
type Recompiler struct {
	snapshot  func() *graph.Graph
	deliver   func(*glsl.ShaderSource, error)
	opts      RecompilerOptions
	logger    *slog.Logger
	debounced func(func())
}

// NewRecompiler creates a recompiler. snapshot is called at compile time
// to obtain the current graph; deliver receives every compile outcome,
// including nil sources for sink-less graphs and cycle errors.
func NewRecompiler(snapshot func() *graph.Graph, deliver func(*glsl.ShaderSource, error), opts RecompilerOptions) *Recompiler {
	if opts.Interval <= 0 {
		opts.Interval = DefaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Recompiler{
		snapshot:  snapshot,
		deliver:   deliver,
		opts:      opts,
		logger:    logger,
		debounced: debounce.New(opts.Interval),
	}
}

// Invalidate notes a graph edit and schedules a compile after the quiet
// period. Edits landing inside the window collapse into one compile.
func (r *Recompiler) Invalidate() {
	r.debounced(r.compile)
}

// Compile bypasses the debounce window and compiles immediately.
func (r *Recompiler) Compile() {
	r.compile()
}

func (r *Recompiler) compile() {
	start := time.Now()
	src, err := CompileWithOptions(r.snapshot(), r.opts.Compile)
	if err != nil {
		r.logger.Warn("graph compile failed", "error", err)
	} else {
		r.logger.Debug("graph compiled", "elapsed", time.Since(start), "empty", src == nil)
	}
	r.deliver(src, err)
}
