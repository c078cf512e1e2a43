package wlp

import (
	"net"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// socketPair returns both ends of a connected unix stream socket.
func socketPair(t *testing.T) (*net.UnixConn, *net.UnixConn) {
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
	return conn(fds[0], "client"), conn(fds[1], "server")
}

// peer plays the compositor side of a connection inside a test.
type peer struct {
	t      *testing.T
	tr     *UnixTransport
	framer Framer
	frames []Frame
	fds    []int
}

func newPeer(t *testing.T) (*Context, *peer) {
	t.Helper()
	a, b := socketPair(t)
	ct, err := NewUnixTransport(a, 0)
	require.NoError(t, err)
	pt, err := NewUnixTransport(b, 0)
	require.NoError(t, err)

	c := NewContext(ct, WithLogger(zerolog.New(zerolog.NewTestWriter(t))))
	t.Cleanup(func() {
		c.Close()
		<-c.Done()
		pt.Close()
	})
	return c, &peer{t: t, tr: pt}
}

// next returns the next request written by the client.
func (p *peer) next() Frame {
	p.t.Helper()
	for len(p.frames) == 0 {
		data, fds, err := p.tr.Read()
		require.NoError(p.t, err)
		p.fds = append(p.fds, fds...)
		frames, err := p.framer.Push(data)
		require.NoError(p.t, err)
		p.frames = append(p.frames, frames...)
	}
	f := p.frames[0]
	p.frames = p.frames[1:]
	return f
}

// expect reads the next request, checks it, and returns its arguments.
func (p *peer) expect(sender uint32, kind Kind, opcode uint16) []interface{} {
	p.t.Helper()
	f := p.next()
	require.Equal(p.t, sender, f.Header.Sender)
	require.Equal(p.t, opcode, f.Header.Opcode, "unexpected %s request", kind)
	args, err := DecodeArgs(kind.Interface().Request(opcode), f.Body, &p.fds)
	require.NoError(p.t, err)
	return args
}

// send writes an event from sender.
func (p *peer) send(sender uint32, kind Kind, opcode uint16, args ...interface{}) {
	p.t.Helper()
	data, fds, err := Encode(sender, opcode, kind.Interface().Event(opcode), args...)
	require.NoError(p.t, err)
	require.NoError(p.t, p.tr.Send(data, fds))
}

func (p *peer) sendRaw(data []byte) {
	p.t.Helper()
	require.NoError(p.t, p.tr.Send(data, nil))
}

// answerSync completes the next wl_display.sync the client sends and
// returns the callback id.
func (p *peer) answerSync() uint32 {
	p.t.Helper()
	args := p.expect(1, KindDisplay, OpDisplaySync)
	cb := uint32(args[0].(ObjectID))
	p.send(cb, KindCallback, EvCallbackDone, uint32(0))
	p.send(1, KindDisplay, EvDisplayDeleteID, cb)
	return cb
}

// roundtrip runs a full Sync against the peer.
func (p *peer) roundtrip(c *Context) {
	p.t.Helper()
	done := goSync(c)
	p.answerSync()
	require.NoError(p.t, wait(p.t, done))
}

func goSync(c *Context) <-chan error {
	ch := make(chan error, 1)
	go func() {
		ch <- c.Sync()
	}()
	return ch
}

func wait(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for sync")
		return nil
	}
}
