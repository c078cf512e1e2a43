package wl

import (
	"net"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/elliotmr/wlclient/internal/config"
	"github.com/elliotmr/wlclient/internal/logging"
	"github.com/elliotmr/wlclient/wl/wlp"
)

type bindRequest struct {
	Name      uint32
	Interface string
	Version   uint32
	ID        uint32
}

// fakeCompositor answers the requests a Client makes: it advertises a fixed
// set of globals, replies to syncs and describes bound outputs and shm.
type fakeCompositor struct {
	t    *testing.T
	tr   *wlp.UnixTransport
	done chan struct{}

	holdSync atomic.Bool

	mu       sync.Mutex
	kinds    map[uint32]wlp.Kind
	globals  []wlp.GlobalEvent
	registry uint32
	binds    []bindRequest
}

func newFake(t *testing.T, conn *net.UnixConn, globals []wlp.GlobalEvent) *fakeCompositor {
	t.Helper()
	tr, err := wlp.NewUnixTransport(conn, 0)
	require.NoError(t, err)
	f := &fakeCompositor{
		t:       t,
		tr:      tr,
		done:    make(chan struct{}),
		kinds:   map[uint32]wlp.Kind{1: wlp.KindDisplay},
		globals: globals,
	}
	go f.serve()
	return f
}

var testGlobals = []wlp.GlobalEvent{
	{Name: 1, Interface: "wl_compositor", Version: 4},
	{Name: 2, Interface: "wl_shm", Version: 1},
	{Name: 3, Interface: "wl_output", Version: 4},
	{Name: 4, Interface: "wl_output", Version: 2},
	{Name: 5, Interface: "wl_output", Version: 1},
	{Name: 6, Interface: "wl_seat", Version: 12},
	{Name: 7, Interface: "zwp_fake_manager_v1", Version: 1},
}

// newTestClient connects a Client to a fake compositor over a socket pair.
func newTestClient(t *testing.T, cfg config.Config) (*Client, *fakeCompositor) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	require.NoError(t, err)
	conn := func(fd int, name string) *net.UnixConn {
		f := os.NewFile(uintptr(fd), name)
		defer f.Close()
		c, err := net.FileConn(f)
		require.NoError(t, err)
		return c.(*net.UnixConn)
	}
	client, server := conn(fds[0], "client"), conn(fds[1], "server")

	fake := newFake(t, server, testGlobals)
	tr, err := wlp.NewUnixTransport(client, 0)
	require.NoError(t, err)
	ctx := wlp.NewContext(tr, wlp.WithLogger(logging.ForTest(t)))

	t.Cleanup(func() {
		ctx.Close()
		<-ctx.Done()
		fake.stop()
	})

	c, err := NewClient(ctx, cfg)
	require.NoError(t, err)
	return c, fake
}

func (f *fakeCompositor) stop() {
	<-f.done
	f.tr.Close()
}

func (f *fakeCompositor) serve() {
	defer close(f.done)
	var (
		framer wlp.Framer
		fds    []int
	)
	defer func() {
		for _, fd := range fds {
			unix.Close(fd)
		}
	}()
	for {
		data, in, err := f.tr.Read()
		if err != nil {
			return
		}
		fds = append(fds, in...)
		frames, err := framer.Push(data)
		if err != nil {
			f.t.Errorf("fake compositor: %v", err)
			return
		}
		for _, fr := range frames {
			f.handle(fr, &fds)
		}
	}
}

func (f *fakeCompositor) handle(fr wlp.Frame, fds *[]int) {
	f.mu.Lock()
	kind := f.kinds[fr.Header.Sender]
	f.mu.Unlock()

	msg := kind.Interface().Request(fr.Header.Opcode)
	if msg == nil {
		f.t.Errorf("fake compositor: unexpected request %s opcode %d", kind, fr.Header.Opcode)
		return
	}
	args, err := wlp.DecodeArgs(msg, fr.Body, fds)
	if err != nil {
		f.t.Errorf("fake compositor: %v", err)
		return
	}

	switch {
	case kind == wlp.KindDisplay && fr.Header.Opcode == wlp.OpDisplayGetRegistry:
		id := uint32(args[0].(wlp.ObjectID))
		f.mu.Lock()
		f.kinds[id] = wlp.KindRegistry
		f.registry = id
		globals := append([]wlp.GlobalEvent(nil), f.globals...)
		f.mu.Unlock()
		for _, g := range globals {
			f.send(id, wlp.KindRegistry, wlp.EvRegistryGlobal, g.Name, g.Interface, g.Version)
		}
	case kind == wlp.KindDisplay && fr.Header.Opcode == wlp.OpDisplaySync:
		if f.holdSync.Load() {
			return
		}
		id := uint32(args[0].(wlp.ObjectID))
		f.send(id, wlp.KindCallback, wlp.EvCallbackDone, uint32(0))
		f.send(1, wlp.KindDisplay, wlp.EvDisplayDeleteID, id)
	case kind == wlp.KindRegistry && fr.Header.Opcode == wlp.OpRegistryBind:
		b := bindRequest{
			Name:      args[0].(uint32),
			Interface: args[1].(string),
			Version:   args[2].(uint32),
			ID:        uint32(args[3].(wlp.ObjectID)),
		}
		k, _ := wlp.KindByName(b.Interface)
		f.mu.Lock()
		f.kinds[b.ID] = k
		f.binds = append(f.binds, b)
		f.mu.Unlock()
		f.describe(k, b)
	}
}

func (f *fakeCompositor) describe(kind wlp.Kind, b bindRequest) {
	switch kind {
	case wlp.KindOutput:
		f.send(b.ID, kind, wlp.EvOutputGeometry, int32(0), int32(0), int32(600), int32(340),
			int32(0), "Fake", "Panel "+string(rune('0'+b.Name)), int32(0))
		f.send(b.ID, kind, wlp.EvOutputMode, uint32(OutputModePreferred), int32(1280), int32(720), int32(30000))
		f.send(b.ID, kind, wlp.EvOutputMode, uint32(OutputModeCurrent|OutputModePreferred), int32(1920), int32(1080), int32(60000))
		if b.Version >= 2 {
			f.send(b.ID, kind, wlp.EvOutputScale, int32(2))
		}
		if b.Version >= 4 {
			f.send(b.ID, kind, wlp.EvOutputName, "DP-1")
			f.send(b.ID, kind, wlp.EvOutputDescription, "Fake panel on DP-1")
		}
		if b.Version >= 2 {
			f.send(b.ID, kind, wlp.EvOutputDone)
		}
	case wlp.KindShm:
		for _, format := range []uint32{ShmFormatARGB8888, ShmFormatXRGB8888, 0x34324241} {
			f.send(b.ID, kind, wlp.EvShmFormat, format)
		}
	}
}

func (f *fakeCompositor) send(sender uint32, kind wlp.Kind, opcode uint16, args ...interface{}) {
	data, fds, err := wlp.Encode(sender, opcode, kind.Interface().Event(opcode), args...)
	if err != nil {
		f.t.Errorf("fake compositor: %v", err)
		return
	}
	if err := f.tr.Send(data, fds); err != nil {
		f.t.Logf("fake compositor: %v", err)
	}
}

// removeGlobal withdraws a global and tells the client.
func (f *fakeCompositor) removeGlobal(name uint32) {
	f.mu.Lock()
	reg := f.registry
	kept := f.globals[:0:0]
	for _, g := range f.globals {
		if g.Name != name {
			kept = append(kept, g)
		}
	}
	f.globals = kept
	f.mu.Unlock()
	f.send(reg, wlp.KindRegistry, wlp.EvRegistryGlobalRemove, name)
}

func (f *fakeCompositor) addGlobal(g wlp.GlobalEvent) {
	f.mu.Lock()
	reg := f.registry
	f.globals = append(f.globals, g)
	f.mu.Unlock()
	f.send(reg, wlp.KindRegistry, wlp.EvRegistryGlobal, g.Name, g.Interface, g.Version)
}

func (f *fakeCompositor) bindRequests() []bindRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bindRequest(nil), f.binds...)
}
