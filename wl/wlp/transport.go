package wlp

import (
	"io"
	"net"
	"sync"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	// DefaultReadSize is the number of bytes requested per socket read.
	DefaultReadSize = 1024
	// MaxFDs is the number of descriptors accepted per socket read.
	MaxFDs = 28
)

// Transport is a duplex byte stream that carries file descriptors
// alongside the bytes.
type Transport interface {
	// Send writes data and passes fds with it in a single message.
	Send(data []byte, fds []int) error
	// Read blocks for the next chunk of bytes and any descriptors that
	// arrived with it. The returned slice is only valid until the next Read.
	Read() ([]byte, []int, error)
	// Close shuts the stream down in both directions.
	Close() error
}

// UnixTransport is a Transport over a stream-oriented unix socket.
type UnixTransport struct {
	conn *net.UnixConn
	raw  syscall.RawConn

	wmu sync.Mutex

	rmu sync.Mutex
	buf []byte
	oob []byte

	closeOnce sync.Once
	closeErr  error
}

// DialUnix connects to the compositor socket at path.
func DialUnix(path string, readSize int) (*UnixTransport, error) {
	addr, err := net.ResolveUnixAddr("unix", path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to resolve unix socket address (%s)", path)
	}
	conn, err := net.DialUnix("unix", nil, addr)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to connect to wayland server at (%s)", path)
	}
	t, err := NewUnixTransport(conn, readSize)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return t, nil
}

// NewUnixTransport wraps an established connection. Sockets created by
// the net package are already close-on-exec; received descriptors are
// marked close-on-exec as they arrive.
func NewUnixTransport(conn *net.UnixConn, readSize int) (*UnixTransport, error) {
	if readSize <= 0 {
		readSize = DefaultReadSize
	}
	raw, err := conn.SyscallConn()
	if err != nil {
		return nil, errors.Wrap(err, "unable to access raw socket")
	}
	return &UnixTransport{
		conn: conn,
		raw:  raw,
		buf:  make([]byte, readSize),
		oob:  make([]byte, unix.CmsgSpace(MaxFDs*4)),
	}, nil
}

func (t *UnixTransport) Send(data []byte, fds []int) error {
	t.wmu.Lock()
	defer t.wmu.Unlock()

	var oob []byte
	if len(fds) > 0 {
		oob = unix.UnixRights(fds...)
	}
	n, _, err := t.conn.WriteMsgUnix(data, oob, nil)
	if err != nil {
		return errors.Wrap(err, "sendmsg failed")
	}
	if n < len(data) {
		// descriptors went out with the first chunk
		if _, err := t.conn.Write(data[n:]); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return nil
}

func (t *UnixTransport) Read() ([]byte, []int, error) {
	t.rmu.Lock()
	defer t.rmu.Unlock()

	var (
		n, oobn int
		rerr    error
	)
	err := t.raw.Read(func(fd uintptr) bool {
		n, oobn, _, _, rerr = unix.Recvmsg(int(fd), t.buf, t.oob, unix.MSG_CMSG_CLOEXEC)
		return rerr != unix.EAGAIN
	})
	if err == nil {
		err = rerr
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "recvmsg failed")
	}
	fds, err := parseRights(t.oob[:oobn])
	if err != nil {
		return nil, nil, err
	}
	if n == 0 && len(fds) == 0 {
		return nil, nil, io.EOF
	}
	return t.buf[:n], fds, nil
}

func (t *UnixTransport) Close() error {
	t.closeOnce.Do(func() {
		_ = t.raw.Control(func(fd uintptr) {
			_ = unix.Shutdown(int(fd), unix.SHUT_RDWR)
		})
		t.closeErr = t.conn.Close()
	})
	return t.closeErr
}

func parseRights(oob []byte) ([]int, error) {
	if len(oob) == 0 {
		return nil, nil
	}
	scms, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return nil, errors.Wrap(err, "ParseSocketControlMessage failed")
	}
	var fds []int
	for i := range scms {
		if scms[i].Header.Level != unix.SOL_SOCKET || scms[i].Header.Type != unix.SCM_RIGHTS {
			continue
		}
		rights, err := unix.ParseUnixRights(&scms[i])
		if err != nil {
			return nil, errors.Wrap(err, "ParseUnixRights failed")
		}
		fds = append(fds, rights...)
	}
	return fds, nil
}
