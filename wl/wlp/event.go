package wlp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Event is a decoded server-to-client message. Args holds the argument
// values in declaration order (see DecodeArgs). An event whose opcode is
// not in the catalog is Unhandled and carries no arguments.
type Event struct {
	Sender    uint32
	Opcode    uint16
	Kind      Kind
	Args      []interface{}
	Unhandled bool
}

// DecodeEvent decodes a frame sent by an object of the given kind. An
// unknown opcode is not an error: it yields an Unhandled event. A body that
// does not match the signature fails this frame only.
func DecodeEvent(kind Kind, f Frame, fds *[]int) (Event, error) {
	ev := Event{
		Sender: f.Header.Sender,
		Opcode: f.Header.Opcode,
		Kind:   kind,
	}
	msg := kind.Interface().Event(f.Header.Opcode)
	if msg == nil {
		ev.Unhandled = true
		return ev, nil
	}
	args, err := DecodeArgs(msg, f.Body, fds)
	if err != nil {
		return ev, errors.Wrapf(err, "%s.%s", kind, msg.Name)
	}
	ev.Args = args
	return ev, nil
}

// Message returns the signature of the event, or nil if it is unhandled.
func (e Event) Message() *Message {
	if e.Unhandled {
		return nil
	}
	return e.Kind.Interface().Event(e.Opcode)
}

// Name returns the event name, e.g. "global".
func (e Event) Name() string {
	if m := e.Message(); m != nil {
		return m.Name
	}
	return ""
}

// Is reports whether e is the given event of the given interface.
func (e Event) Is(kind Kind, opcode uint16) bool {
	return !e.Unhandled && e.Kind == kind && e.Opcode == opcode
}

func (e Event) arg(i int) interface{} {
	if i < 0 || i >= len(e.Args) {
		return nil
	}
	return e.Args[i]
}

func (e Event) Uint(i int) uint32 {
	v, _ := e.arg(i).(uint32)
	return v
}

func (e Event) Int(i int) int32 {
	v, _ := e.arg(i).(int32)
	return v
}

func (e Event) Fixed(i int) Fixed {
	v, _ := e.arg(i).(Fixed)
	return v
}

func (e Event) String(i int) string {
	v, _ := e.arg(i).(string)
	return v
}

// Object returns an object or new_id argument.
func (e Event) Object(i int) ObjectID {
	v, _ := e.arg(i).(ObjectID)
	return v
}

func (e Event) Array(i int) []byte {
	v, _ := e.arg(i).([]byte)
	return v
}

// Uint32s interprets an array argument as a sequence of words, as used by
// wl_keyboard.enter.
func (e Event) Uint32s(i int) []uint32 {
	b := e.Array(i)
	out := make([]uint32, len(b)/4)
	for j := range out {
		out[j] = hostByteOrder.Uint32(b[4*j:])
	}
	return out
}

// FD returns an fd argument, or -1.
func (e Event) FD(i int) int {
	v, ok := e.arg(i).(int)
	if !ok {
		return -1
	}
	return v
}

// Format renders the event like WAYLAND_DEBUG does: iface@id.name(args).
func (e Event) Format() string {
	if e.Unhandled {
		return fmt.Sprintf("%s@%d.<opcode %d>", e.Kind, e.Sender, e.Opcode)
	}
	parts := make([]string, len(e.Args))
	for i, a := range e.Args {
		switch v := a.(type) {
		case string:
			parts[i] = fmt.Sprintf("%q", v)
		case Fixed:
			parts[i] = fmt.Sprintf("%g", v.Float64())
		case ObjectID:
			parts[i] = fmt.Sprintf("#%d", uint32(v))
		case []byte:
			parts[i] = fmt.Sprintf("array[%d]", len(v))
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	return fmt.Sprintf("%s@%d.%s(%s)", e.Kind, e.Sender, e.Name(), strings.Join(parts, ", "))
}

// GlobalEvent is a wl_registry.global advertisement.
type GlobalEvent struct {
	Name      uint32
	Interface string
	Version   uint32
}

func (e Event) AsGlobal() (GlobalEvent, bool) {
	if !e.Is(KindRegistry, EvRegistryGlobal) {
		return GlobalEvent{}, false
	}
	return GlobalEvent{Name: e.Uint(0), Interface: e.String(1), Version: e.Uint(2)}, true
}

func (e Event) AsGlobalRemove() (uint32, bool) {
	if !e.Is(KindRegistry, EvRegistryGlobalRemove) {
		return 0, false
	}
	return e.Uint(0), true
}

func (e Event) AsError() (*ProtocolError, bool) {
	if !e.Is(KindDisplay, EvDisplayError) {
		return nil, false
	}
	return &ProtocolError{
		ObjectID: uint32(e.Object(0)),
		Code:     e.Uint(1),
		Message:  e.String(2),
	}, true
}

func (e Event) AsDeleteID() (uint32, bool) {
	if !e.Is(KindDisplay, EvDisplayDeleteID) {
		return 0, false
	}
	return e.Uint(0), true
}

// AsDone matches wl_callback.done and returns the callback data.
func (e Event) AsDone() (uint32, bool) {
	if !e.Is(KindCallback, EvCallbackDone) {
		return 0, false
	}
	return e.Uint(0), true
}
