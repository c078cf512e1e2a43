package wl

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/elliotmr/wlclient/wl/wlp"
)

// ScreenInfo is what a wl_output has reported so far.
type ScreenInfo struct {
	X              int32
	Y              int32
	PhysicalWidth  int32
	PhysicalHeight int32
	Subpixel       int32
	Make           string
	Model          string
	Transform      int32
	Flags          uint32
	Width          int32
	Height         int32
	Refresh        int32
	Factor         int32
	Name           string
	Description    string
}

// Screen tracks a bound wl_output. Properties are collected as they arrive
// and become consistent on each done event.
type Screen struct {
	output *wlp.Proxy

	mu      sync.RWMutex
	pending ScreenInfo
	current ScreenInfo
	dones   int
}

func newScreen(output *wlp.Proxy) *Screen {
	s := &Screen{output: output}
	s.pending.Factor = 1
	s.current.Factor = 1
	return s
}

// Output returns the wl_output object.
func (s *Screen) Output() *wlp.Proxy {
	return s.output
}

// Info returns the properties as of the last done event.
func (s *Screen) Info() ScreenInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Ready reports whether at least one done event has been seen.
func (s *Screen) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dones > 0
}

func (s *Screen) HandleEvent(ev wlp.Event) {
	if ev.Kind != wlp.KindOutput {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch ev.Opcode {
	case wlp.EvOutputGeometry:
		s.pending.X = ev.Int(0)
		s.pending.Y = ev.Int(1)
		s.pending.PhysicalWidth = ev.Int(2)
		s.pending.PhysicalHeight = ev.Int(3)
		s.pending.Subpixel = ev.Int(4)
		s.pending.Make = ev.String(5)
		s.pending.Model = ev.String(6)
		s.pending.Transform = ev.Int(7)
	case wlp.EvOutputMode:
		// only the current mode is kept
		if ev.Uint(0)&OutputModeCurrent == 0 {
			return
		}
		s.pending.Flags = ev.Uint(0)
		s.pending.Width = ev.Int(1)
		s.pending.Height = ev.Int(2)
		s.pending.Refresh = ev.Int(3)
	case wlp.EvOutputScale:
		s.pending.Factor = ev.Int(0)
	case wlp.EvOutputName:
		s.pending.Name = ev.String(0)
	case wlp.EvOutputDescription:
		s.pending.Description = ev.String(0)
	case wlp.EvOutputDone:
		s.current = s.pending
		s.dones++
	}
}

// wl_output.mode flags
const (
	OutputModeCurrent   = 0x1
	OutputModePreferred = 0x2
)

// Screens returns a Screen for every advertised wl_output, binding the
// outputs it has not seen before and waiting for their properties. Screens
// are cached on the Client and dropped when their global is removed.
// Outputs that only speak version 1 never send done; their properties are
// published after the roundtrip instead.
func (c *Client) Screens() ([]*Screen, error) {
	c.smu.Lock()
	defer c.smu.Unlock()

	c.mu.RLock()
	outputs := append([]Global(nil), c.glbByString["wl_output"]...)
	c.mu.RUnlock()

	screens := make([]*Screen, 0, len(outputs))
	var fresh []*Screen
	for _, glb := range outputs {
		c.mu.RLock()
		scr, ok := c.screens[glb.Name]
		c.mu.RUnlock()
		if !ok {
			output, err := c.bindGlobal(glb, 0)
			if err != nil {
				return nil, errors.Wrap(err, "unable to bind wl_output")
			}
			scr = newScreen(output)
			c.ctx.AddObjectListener(output, scr)
			c.mu.Lock()
			c.screens[glb.Name] = scr
			c.mu.Unlock()
			fresh = append(fresh, scr)
		}
		screens = append(screens, scr)
	}
	if len(fresh) == 0 {
		return screens, nil
	}
	if err := c.Roundtrip(); err != nil {
		return nil, err
	}
	for _, scr := range fresh {
		scr.mu.Lock()
		if scr.dones == 0 {
			scr.current = scr.pending
		}
		scr.mu.Unlock()
	}
	return screens, nil
}
