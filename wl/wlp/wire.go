package wlp

import (
	"bytes"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	// HeaderSize is the length of the sender id and size/opcode words.
	HeaderSize = 8
	// MaxMessageSize is the largest frame either side accepts.
	MaxMessageSize = 4096
)

// Header is the fixed part of every message. Size is the length of the
// whole frame, header included.
type Header struct {
	Sender uint32
	Size   uint16
	Opcode uint16
}

func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, ErrShortBuffer
	}
	word := hostByteOrder.Uint32(buf[4:8])
	return Header{
		Sender: hostByteOrder.Uint32(buf[:4]),
		Size:   uint16(word >> 16),
		Opcode: uint16(word & 0xffff),
	}, nil
}

// Put writes h into the first HeaderSize bytes of buf.
func (h Header) Put(buf []byte) {
	hostByteOrder.PutUint32(buf[:4], h.Sender)
	hostByteOrder.PutUint32(buf[4:8], uint32(h.Size)<<16|uint32(h.Opcode))
}

// BodyLen is the padded length of the arguments following the header.
func (h Header) BodyLen() int {
	return pad4(int(h.Size)) - HeaderSize
}

// Frame is one undecoded message.
type Frame struct {
	Header Header
	Body   []byte
}

// DecodeFrames splits buf into as many complete frames as it holds. It
// returns the number of bytes consumed; an incomplete trailing frame is
// left for the caller. Frame bodies alias buf.
func DecodeFrames(buf []byte) ([]Frame, int, error) {
	var frames []Frame
	off := 0
	for len(buf)-off >= HeaderSize {
		h, _ := DecodeHeader(buf[off:])
		if h.Size < HeaderSize || int(h.Size) > MaxMessageSize {
			return frames, off, errors.Wrapf(ErrBadFrameSize, "object %d opcode %d size %d", h.Sender, h.Opcode, h.Size)
		}
		total := pad4(int(h.Size))
		if len(buf)-off < total {
			break
		}
		frames = append(frames, Frame{
			Header: h,
			Body:   buf[off+HeaderSize : off+total],
		})
		off += total
	}
	return frames, off, nil
}

// Framer reassembles frames from a byte stream whose reads may end in the
// middle of a message.
type Framer struct {
	pending []byte
}

// Push appends p to the buffered tail and returns every frame that is now
// complete. The returned frames stay valid after later calls.
func (f *Framer) Push(p []byte) ([]Frame, error) {
	f.pending = append(f.pending, p...)
	frames, n, err := DecodeFrames(f.pending)
	if n == len(f.pending) {
		f.pending = nil
	} else {
		f.pending = append([]byte(nil), f.pending[n:]...)
	}
	return frames, err
}

// Buffered returns the number of bytes held back waiting for more data.
func (f *Framer) Buffered() int {
	return len(f.pending)
}

type wireValue struct {
	typ  ArgType
	word uint32
	blob []byte
	null bool
	fd   int
}

func (v *wireValue) size() int {
	switch v.typ {
	case ArgFD:
		return 0
	case ArgString:
		if v.null {
			return 4
		}
		return 4 + pad4(len(v.blob)+1)
	case ArgArray:
		return 4 + pad4(len(v.blob))
	default:
		return 4
	}
}

func argTypeError(a Arg, v interface{}) error {
	return errors.Wrapf(ErrArgType, "%s: %T for %s", a.Name, v, a.Type)
}

func objectWord(a Arg, v interface{}) (uint32, error) {
	var id uint32
	switch x := v.(type) {
	case nil:
	case ObjectID:
		id = uint32(x)
	case uint32:
		id = x
	case Object:
		id = x.ID()
	default:
		return 0, argTypeError(a, v)
	}
	if id == 0 && (a.Type == ArgNewID || !a.AllowNull) {
		return 0, errors.Wrap(ErrNullArg, a.Name)
	}
	return id, nil
}

func toWire(a Arg, v interface{}) (wireValue, error) {
	w := wireValue{typ: a.Type}
	switch a.Type {
	case ArgInt:
		switch x := v.(type) {
		case int32:
			w.word = uint32(x)
		case int:
			if x < math.MinInt32 || x > math.MaxInt32 {
				return w, errors.Wrapf(ErrArgType, "%s: %d overflows int", a.Name, x)
			}
			w.word = uint32(int32(x))
		default:
			return w, argTypeError(a, v)
		}
	case ArgUint:
		switch x := v.(type) {
		case uint32:
			w.word = x
		case int:
			if x < 0 {
				return w, errors.Wrapf(ErrArgType, "%s: negative value %d for uint", a.Name, x)
			}
			if uint64(x) > math.MaxUint32 {
				return w, errors.Wrapf(ErrArgType, "%s: %d overflows uint", a.Name, x)
			}
			w.word = uint32(x)
		default:
			return w, argTypeError(a, v)
		}
	case ArgFixed:
		switch x := v.(type) {
		case Fixed:
			w.word = uint32(x)
		case float64:
			w.word = uint32(FixedFromFloat(x))
		default:
			return w, argTypeError(a, v)
		}
	case ArgString:
		var s string
		switch x := v.(type) {
		case string:
			s = x
		case *string:
			if x == nil {
				w.null = true
			} else {
				s = *x
			}
		case nil:
			w.null = true
		default:
			return w, argTypeError(a, v)
		}
		if w.null && !a.AllowNull {
			return w, errors.Wrap(ErrNullArg, a.Name)
		}
		if strings.IndexByte(s, 0) >= 0 {
			return w, errors.Wrapf(ErrBadString, "%s: embedded NUL", a.Name)
		}
		w.blob = []byte(s)
	case ArgObject, ArgNewID:
		id, err := objectWord(a, v)
		if err != nil {
			return w, err
		}
		w.word = id
	case ArgArray:
		switch x := v.(type) {
		case []byte:
			w.blob = x
		case []uint32:
			w.blob = make([]byte, 4*len(x))
			for i, u := range x {
				hostByteOrder.PutUint32(w.blob[4*i:], u)
			}
		default:
			return w, argTypeError(a, v)
		}
	case ArgFD:
		switch x := v.(type) {
		case int:
			w.fd = x
		case uintptr:
			w.fd = int(x)
		case *os.File:
			if x == nil {
				return w, errors.Wrap(ErrNullArg, a.Name)
			}
			w.fd = int(x.Fd())
		default:
			return w, argTypeError(a, v)
		}
	default:
		return w, errors.Wrapf(ErrArgType, "%s: unsupported wire type %s", a.Name, a.Type)
	}
	return w, nil
}

// Encode serializes one message sent by object sender. Arguments must
// match msg.Args in number and order. File descriptors are returned
// separately and take no space in the byte stream.
func Encode(sender uint32, opcode uint16, msg *Message, args ...interface{}) ([]byte, []int, error) {
	if msg == nil {
		return nil, nil, errors.Wrapf(ErrUnknownOpcode, "object %d opcode %d", sender, opcode)
	}
	if len(args) != len(msg.Args) {
		return nil, nil, errors.Wrapf(ErrArgCount, "%s: got %d, want %d", msg.Name, len(args), len(msg.Args))
	}

	vals := make([]wireValue, len(args))
	size := HeaderSize
	for i, a := range msg.Args {
		v, err := toWire(a, args[i])
		if err != nil {
			return nil, nil, errors.Wrap(err, msg.Name)
		}
		vals[i] = v
		size += v.size()
	}
	if size > MaxMessageSize {
		return nil, nil, errors.Wrapf(ErrMessageTooLarge, "%s: %d bytes", msg.Name, size)
	}

	buf := make([]byte, size)
	Header{Sender: sender, Size: uint16(size), Opcode: opcode}.Put(buf)
	var fds []int
	off := HeaderSize
	for i := range vals {
		v := &vals[i]
		switch v.typ {
		case ArgFD:
			fds = append(fds, v.fd)
			continue
		case ArgString:
			if !v.null {
				hostByteOrder.PutUint32(buf[off:], uint32(len(v.blob)+1))
				copy(buf[off+4:], v.blob)
			}
		case ArgArray:
			hostByteOrder.PutUint32(buf[off:], uint32(len(v.blob)))
			copy(buf[off+4:], v.blob)
		default:
			hostByteOrder.PutUint32(buf[off:], v.word)
		}
		off += v.size()
	}
	return buf, fds, nil
}

// Decoder reads arguments from a message body. Every read is bounds
// checked; a failed read leaves the cursor where it was.
type Decoder struct {
	buf []byte
	off int
}

func NewDecoder(body []byte) *Decoder {
	return &Decoder{buf: body}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.off
}

func (d *Decoder) Uint32() (uint32, error) {
	if d.Remaining() < 4 {
		return 0, errors.Wrapf(ErrShortBuffer, "need 4 bytes at offset %d, have %d", d.off, d.Remaining())
	}
	v := hostByteOrder.Uint32(d.buf[d.off:])
	d.off += 4
	return v, nil
}

func (d *Decoder) Int32() (int32, error) {
	v, err := d.Uint32()
	return int32(v), err
}

func (d *Decoder) Fixed() (Fixed, error) {
	v, err := d.Uint32()
	return Fixed(int32(v)), err
}

// blob reads a length word and the padded bytes it announces.
func (d *Decoder) blob() ([]byte, error) {
	start := d.off
	n, err := d.Uint32()
	if err != nil {
		return nil, err
	}
	padded := (uint64(n) + 3) &^ 3
	if padded > uint64(d.Remaining()) {
		d.off = start
		return nil, errors.Wrapf(ErrShortBuffer, "length %d at offset %d, have %d", n, start, d.Remaining())
	}
	b := d.buf[d.off : d.off+int(n)]
	d.off += int(padded)
	return b, nil
}

// Str reads a string argument. A null string decodes as "".
func (d *Decoder) Str() (string, error) {
	start := d.off
	b, err := d.blob()
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", nil
	}
	if b[len(b)-1] != 0 {
		d.off = start
		return "", errors.Wrapf(ErrBadString, "missing NUL terminator at offset %d", start)
	}
	b = b[:len(b)-1]
	if bytes.IndexByte(b, 0) >= 0 || !utf8.Valid(b) {
		d.off = start
		return "", errors.Wrapf(ErrBadString, "invalid contents at offset %d", start)
	}
	return string(b), nil
}

// Array reads an array argument. The result is a copy.
func (d *Decoder) Array() ([]byte, error) {
	b, err := d.blob()
	if err != nil {
		return nil, err
	}
	return append([]byte{}, b...), nil
}

// DecodeArgs decodes body according to msg. Values are int32, uint32,
// Fixed, string, ObjectID, []byte and int (fd), in declaration order. fd
// arguments are taken from the front of fds. When decoding fails, every
// descriptor belonging to msg is taken off fds and closed, so the next
// frame still finds its own descriptors at the front.
func DecodeArgs(msg *Message, body []byte, fds *[]int) ([]interface{}, error) {
	d := NewDecoder(body)
	args := make([]interface{}, len(msg.Args))
	taken := 0
	for i, a := range msg.Args {
		var (
			v   interface{}
			err error
		)
		switch a.Type {
		case ArgInt:
			v, err = d.Int32()
		case ArgUint:
			v, err = d.Uint32()
		case ArgFixed:
			v, err = d.Fixed()
		case ArgString:
			v, err = d.Str()
		case ArgObject, ArgNewID:
			var id uint32
			id, err = d.Uint32()
			v = ObjectID(id)
		case ArgArray:
			v, err = d.Array()
		case ArgFD:
			if fds == nil || len(*fds) == 0 {
				err = ErrMissingFD
				break
			}
			v = (*fds)[0]
			*fds = (*fds)[1:]
			taken++
		default:
			err = errors.Wrapf(ErrArgType, "unsupported wire type %s", a.Type)
		}
		if err != nil {
			discardFDs(msg, args, taken, fds)
			return nil, errors.Wrapf(err, "argument %s", a.Name)
		}
		args[i] = v
	}
	return args, nil
}

// discardFDs closes the descriptors a failed decode already took and drops
// the ones it had not reached yet.
func discardFDs(msg *Message, args []interface{}, taken int, fds *[]int) {
	want := 0
	for i, a := range msg.Args {
		if a.Type != ArgFD {
			continue
		}
		want++
		if fd, ok := args[i].(int); ok {
			unix.Close(fd)
		}
	}
	if fds == nil {
		return
	}
	for n := want - taken; n > 0 && len(*fds) > 0; n-- {
		unix.Close((*fds)[0])
		*fds = (*fds)[1:]
	}
}
