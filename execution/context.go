// SPDX-License-Identifier: MIT

package execution

import (
	"context"
	"log/slog"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/graphblas/engine"
)

// Mode selects how the engine schedules work.
type Mode int

const (
	// Blocking completes every call before returning; errors are local.
	Blocking Mode = iota + 1
	// NonBlocking lets the engine defer execution errors to a later call that
	// touches the same output collection.
	NonBlocking
)

// String implements fmt.Stringer.
func (m Mode) String() string { return m.engine().String() }

func (m Mode) engine() engine.Mode {
	switch m {
	case Blocking:
		return engine.Blocking
	case NonBlocking:
		return engine.NonBlocking
	default:
		return 0
	}
}

// gateway is the state every holder of one initialisation shares.
type gateway struct {
	mode    Mode
	logger  *slog.Logger
	tracer  trace.Tracer
	holders atomic.Int64
}

// Context is one holder of an initialised engine. All engine calls made by
// collections and appliers go through Call.
//
// A Context is safe for concurrent use. Clone hands out further holders;
// the engine is finalised when the last holder is released.
type Context struct {
	gw       *gateway
	released atomic.Bool
}

// Init starts the engine in mode and returns the first holder.
//
// Errors:
//   - ErrInitialization when the engine refuses, e.g. it already runs in the
//     other mode.
func Init(mode Mode, opts ...Option) (*Context, error) {
	s := gatherSettings(opts)
	if info := engine.Init(mode.engine()); info != engine.Success {
		s.logger.Error("engine init refused", "mode", mode.String(), "status", info.String())
		return nil, &Error{Kind: ErrInitialization, Status: info, Operation: "GrB_init"}
	}
	gw := &gateway{
		mode:   mode,
		logger: s.logger,
		tracer: s.tracer.Tracer("github.com/katalvlaran/graphblas"),
	}
	gw.holders.Store(1)
	gw.logger.Debug("engine initialised", "mode", mode.String())

	return &Context{gw: gw}, nil
}

// InitFromEnv is Init with mode and log level taken from GRAPHBLAS_MODE and
// GRAPHBLAS_LOG_LEVEL. A logger given in opts overrides the env level.
func InitFromEnv(opts ...Option) (*Context, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	mode, err := cfg.ParseMode()
	if err != nil {
		return nil, err
	}
	level, err := cfg.ParseLogLevel()
	if err != nil {
		return nil, err
	}

	return Init(mode, append([]Option{WithLogger(textLogger(level))}, opts...)...)
}

// Clone returns a new holder of the same engine.
func (c *Context) Clone() (*Context, error) {
	if c.released.Load() {
		return nil, ErrContextReleased
	}
	c.gw.holders.Add(1)

	return &Context{gw: c.gw}, nil
}

// Release drops this holder. The last release finalises the engine.
// Releasing a holder twice is a no-op.
func (c *Context) Release() error {
	if !c.released.CompareAndSwap(false, true) {
		return nil
	}
	if c.gw.holders.Add(-1) > 0 {
		return nil
	}
	if info := engine.Finalize(); info != engine.Success {
		return &Error{Kind: kindOf(info), Status: info, Operation: "GrB_finalize"}
	}
	c.gw.logger.Debug("engine finalised", "mode", c.gw.mode.String())

	return nil
}

// Mode returns the mode the engine was started in.
func (c *Context) Mode() Mode { return c.gw.mode }

// Logger returns the logger calls report to.
func (c *Context) Logger() *slog.Logger { return c.gw.logger }

// Call runs one engine entry point and translates its status.
//
// Implementation:
//   - Stage 1: reject calls on a released holder.
//   - Stage 2: run op inside a span named "graphblas.<name>".
//   - Stage 3: Success and NoValue map to nil; every error status maps to
//     *Error carrying the engine's diagnostic for output.
//
// Under NonBlocking mode a returned error may originate from an earlier call
// that targeted output.
func (c *Context) Call(name string, op func() engine.Info, output engine.Object) error {
	if c.released.Load() {
		return &Error{Kind: ErrContextReleased, Operation: name}
	}
	_, span := c.gw.tracer.Start(context.Background(), "graphblas."+name,
		trace.WithAttributes(attribute.String("graphblas.mode", c.gw.mode.String())))
	defer span.End()

	info := op()
	if !info.IsError() {
		return nil
	}
	err := &Error{Kind: kindOf(info), Status: info, Operation: name}
	if output != nil {
		err.Detail = engine.ErrorString(output)
	}
	span.SetAttributes(attribute.String("graphblas.status", info.String()))
	span.SetStatus(codes.Error, err.Error())
	c.gw.logger.Debug("engine call failed",
		"operation", name, "status", info.String(), "mode", c.gw.mode.String(), "detail", err.Detail)

	return err
}

// Wait completes pending work on obj and reports any deferred error.
func (c *Context) Wait(obj engine.Object) error {
	return c.Call("GrB_wait", func() engine.Info { return engine.Wait(obj) }, obj)
}
