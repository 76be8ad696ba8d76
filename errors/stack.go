package errors

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

const (
	defaultStackDepth = 32
	maxStackDepth     = 256
)

// StackConfig controls stack capture at construction.
type StackConfig struct {
	// Disabled turns capture off; the zero value captures.
	Disabled bool `yaml:"disabled" mapstructure:"disabled"`
	// MaxDepth bounds the number of recorded frames.
	MaxDepth int `yaml:"max_depth" mapstructure:"max_depth"`
}

// ApplyDefaults applies default values to stack configuration.
func (c *StackConfig) ApplyDefaults() {
	if c.MaxDepth == 0 {
		c.MaxDepth = defaultStackDepth
	}
}

// Validate validates stack configuration.
func (c *StackConfig) Validate() error {
	if c.MaxDepth < 1 || c.MaxDepth > maxStackDepth {
		return fmt.Errorf("errors.max_depth must be between 1 and %d (got: %d)", maxStackDepth, c.MaxDepth)
	}
	return nil
}

var stackPolicy atomic.Pointer[StackConfig]

func init() {
	Configure(StackConfig{})
}

// Configure replaces the stack capture policy. It is safe to call while
// other goroutines construct errors. A depth below 1 falls back to the
// default; a depth above the maximum is clamped.
func Configure(cfg StackConfig) {
	cfg.ApplyDefaults()
	switch {
	case cfg.MaxDepth < 1:
		cfg.MaxDepth = defaultStackDepth
	case cfg.MaxDepth > maxStackDepth:
		cfg.MaxDepth = maxStackDepth
	}
	stackPolicy.Store(&cfg)
}

// CurrentStackConfig returns the active stack capture policy.
func CurrentStackConfig() StackConfig {
	return *stackPolicy.Load()
}

// Frame is a resolved call site.
type Frame struct {
	Function string
	File     string
	Line     int
}

// String formats the frame as "function file:line".
func (f Frame) String() string {
	return fmt.Sprintf("%s %s:%d", f.Function, f.File, f.Line)
}

// Stack holds the raw program counters of a captured call stack, most
// recent call first.
type Stack []uintptr

// Frames resolves the program counters into call sites.
func (s Stack) Frames() []Frame {
	if len(s) == 0 {
		return nil
	}
	frames := runtime.CallersFrames(s)
	out := make([]Frame, 0, len(s))
	for {
		fr, more := frames.Next()
		out = append(out, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return out
}

// callers records the stack of the caller skip frames above its own caller.
// It returns nil when capture is disabled or the runtime reports no frames.
func callers(skip int) Stack {
	p := stackPolicy.Load()
	if p == nil || p.Disabled || p.MaxDepth < 1 {
		return nil
	}
	pcs := make([]uintptr, p.MaxDepth)
	// +2 skips runtime.Callers and callers itself.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	return pcs[:n:n]
}
