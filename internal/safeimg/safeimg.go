// Package safeimg decides whether an image source is safe to render.
// Each source gets exactly one probe; a failed or absent source renders
// the caller's fallback view instead of a broken image.
package safeimg

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// State of a single image source.
type State int

const (
	// Pending means the probe has not completed yet.
	Pending State = iota
	// Loaded means the probe succeeded; render the real image.
	Loaded
	// Failed means the probe errored or the source is empty; render the
	// fallback view. Terminal for that source.
	Failed
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// Event drives state transitions.
type Event int

const (
	// ProbeOK: the off-screen probe load succeeded.
	ProbeOK Event = iota
	// ProbeError: the probe load errored.
	ProbeError
	// RenderError: the rendered element itself reported a load error.
	RenderError
)

// Next is the pure transition function. Loaded and Failed are terminal:
// events arriving after either are ignored.
func Next(s State, e Event) State {
	if s != Pending {
		return s
	}
	switch e {
	case ProbeOK:
		return Loaded
	case ProbeError, RenderError:
		return Failed
	}
	return s
}

// Initial returns the starting state for a source: Pending when a
// non-blank src is supplied, otherwise immediately Failed with no probe.
func Initial(src string) State {
	if strings.TrimSpace(src) == "" {
		return Failed
	}
	return Pending
}

// Prober checks whether an image source loads. Injected so tests can
// substitute outcomes without network access.
type Prober interface {
	Probe(ctx context.Context, src string) error
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context, src string) error

func (f ProberFunc) Probe(ctx context.Context, src string) error { return f(ctx, src) }

// HTTPProber probes a source with a HEAD request. Any transport error or
// non-2xx status counts as a load failure. Image bytes are never read.
type HTTPProber struct {
	Client *http.Client
}

func NewHTTPProber() *HTTPProber {
	return &HTTPProber{Client: &http.Client{Timeout: 5 * time.Second}}
}

func (p *HTTPProber) Probe(ctx context.Context, src string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, src, nil)
	if err != nil {
		return err
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("safeimg: probe %s: status %d", src, resp.StatusCode)
	}
	return nil
}

// Controller tracks per-source state. Each distinct source is probed at
// most once; the result is remembered for every later render of the same
// source. Safe for concurrent handlers.
type Controller struct {
	prober Prober

	mu     sync.Mutex
	states map[string]State
}

func NewController(p Prober) *Controller {
	return &Controller{prober: p, states: make(map[string]State)}
}

// Resolve returns the state for src, probing it first if this is the
// first time the source is seen. An empty src is Failed without a probe.
func (c *Controller) Resolve(ctx context.Context, src string) State {
	if Initial(src) == Failed {
		return Failed
	}

	c.mu.Lock()
	s, seen := c.states[src]
	if seen {
		c.mu.Unlock()
		return s
	}
	c.states[src] = Pending
	c.mu.Unlock()

	s = Pending
	if err := c.prober.Probe(ctx, src); err != nil {
		s = Next(s, ProbeError)
	} else {
		s = Next(s, ProbeOK)
	}

	c.mu.Lock()
	c.states[src] = s
	c.mu.Unlock()
	return s
}

// ReportRenderError records that the rendered element for src failed to
// load client-side. A source already Loaded stays Loaded for sources that
// completed; only Pending flips to Failed.
func (c *Controller) ReportRenderError(src string) {
	if strings.TrimSpace(src) == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	s, seen := c.states[src]
	if !seen {
		s = Pending
	}
	c.states[src] = Next(s, RenderError)
}

// StateOf reports the current state of src without probing. Unseen
// sources are Pending (or Failed when blank).
func (c *Controller) StateOf(src string) State {
	if Initial(src) == Failed {
		return Failed
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, seen := c.states[src]; seen {
		return s
	}
	return Pending
}
