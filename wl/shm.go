package wl

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/elliotmr/wlclient/wl/wlp"
)

// wl_shm.format values that do not follow the fourcc scheme.
const (
	ShmFormatARGB8888 = 0
	ShmFormatXRGB8888 = 1
)

// Shm tracks the pixel formats a bound wl_shm supports.
type Shm struct {
	shm *wlp.Proxy

	mu      sync.Mutex
	formats []uint32
}

// Proxy returns the wl_shm object.
func (s *Shm) Proxy() *wlp.Proxy {
	return s.shm
}

func (s *Shm) HandleEvent(ev wlp.Event) {
	if !ev.Is(wlp.KindShm, wlp.EvShmFormat) {
		return
	}
	s.mu.Lock()
	s.formats = append(s.formats, ev.Uint(0))
	s.mu.Unlock()
}

// Formats returns the formats announced so far.
func (s *Shm) Formats() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint32(nil), s.formats...)
}

// Supports reports whether format was announced.
func (s *Shm) Supports(format uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.formats {
		if f == format {
			return true
		}
	}
	return false
}

// Shm binds wl_shm and waits for its format announcements.
func (c *Client) Shm() (*Shm, error) {
	obj, err := c.BindGlobal("wl_shm", 0)
	if err != nil {
		return nil, errors.Wrap(err, "unable to bind wl_shm")
	}
	s := &Shm{shm: obj}
	c.ctx.AddObjectListener(obj, s)
	if err := c.Roundtrip(); err != nil {
		return nil, err
	}
	return s, nil
}

// FormatName renders a wl_shm format code. The two legacy codes have fixed
// names; every other code is a DRM fourcc.
func FormatName(format uint32) string {
	switch format {
	case ShmFormatARGB8888:
		return "ARGB8888"
	case ShmFormatXRGB8888:
		return "XRGB8888"
	}
	b := []byte{byte(format), byte(format >> 8), byte(format >> 16), byte(format >> 24)}
	for i, c := range b {
		if c < 0x20 || c > 0x7e {
			b[i] = '?'
		}
	}
	return string(b)
}
