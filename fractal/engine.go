package fractal

import (
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/mandelview/constants"
)

// bandsPerWorker oversubscribes bands so uneven rows (bounded interior vs fast escapes) balance out
const bandsPerWorker = 4

// Engine computes escape fields over row bands in parallel
type Engine struct {
	workers int
	log     logrus.FieldLogger
}

// Option configures an Engine
type Option func(*Engine)

// WithWorkers limits the number of concurrently computed bands; n <= 0 selects GOMAXPROCS
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithLogger sets the logger used for compute timing
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEngine creates an engine with one worker per available CPU by default
func NewEngine(opts ...Option) *Engine {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	e := &Engine{
		workers: runtime.GOMAXPROCS(0),
		log:     discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Workers returns the band concurrency limit
func (e *Engine) Workers() int {
	return e.workers
}

// Compute returns the escape field of a height×width grid
// The result depends only on the arguments; concurrent calls are safe
func (e *Engine) Compute(height, width, maxIter int, zoom, offsetX, offsetY float64) Field {
	field := NewField(height, width, maxIter)
	if field.Empty() {
		return field
	}

	start := time.Now()
	grid := Grid{Width: width, Height: height, Zoom: zoom, OffsetX: offsetX, OffsetY: offsetY}

	// Real parts are shared by every row
	reals := make([]float64, width)
	for col := range reals {
		reals[col] = grid.Real(col)
	}

	bandRows := height / (e.workers * bandsPerWorker)
	if bandRows < 1 {
		bandRows = 1
	}

	var g errgroup.Group
	g.SetLimit(e.workers)
	for top := 0; top < height; top += bandRows {
		top := top
		bottom := min(top+bandRows, height)
		g.Go(func() error {
			for row := top; row < bottom; row++ {
				cy := grid.Imag(row)
				out := field.Row(row)
				for col, cx := range reals {
					out[col] = Escape(cx, cy, maxIter)
				}
			}
			return nil
		})
	}
	// Bands never fail
	_ = g.Wait()

	elapsed := time.Since(start)
	entry := e.log.WithFields(logrus.Fields{
		"width":   width,
		"height":  height,
		"zoom":    zoom,
		"elapsed": elapsed,
	})
	if elapsed > constants.TickInterval {
		entry.Debug("escape field exceeded tick budget")
	} else {
		entry.Trace("escape field computed")
	}

	return field
}

var defaultEngine = NewEngine()

// Compute runs the default engine
func Compute(height, width, maxIter int, zoom, offsetX, offsetY float64) Field {
	return defaultEngine.Compute(height, width, maxIter, zoom, offsetX, offsetY)
}
