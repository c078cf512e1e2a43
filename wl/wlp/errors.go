package wlp

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrArgCount        = errors.New("wrong number of arguments")
	ErrArgType         = errors.New("argument has the wrong type")
	ErrNullArg         = errors.New("null value for non-nullable argument")
	ErrMessageTooLarge = errors.New("message exceeds maximum size")
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrShortBuffer     = errors.New("buffer too short")
	ErrBadString       = errors.New("malformed string")
	ErrBadFrameSize    = errors.New("frame size out of range")
	ErrMissingFD       = errors.New("no file descriptor for fd argument")
	ErrClosed          = errors.New("connection closed")
)

// wl_display error codes
const (
	DisplayErrorInvalidObject  = 0 // server couldn't find object
	DisplayErrorInvalidMethod  = 1 // method doesn't exist on the specified interface
	DisplayErrorNoMemory       = 2 // server is out of memory
	DisplayErrorImplementation = 3 // implementation error in compositor
)

// ProtocolError is a fatal error reported by the compositor through
// wl_display.error.
type ProtocolError struct {
	ObjectID uint32
	Code     uint32
	Message  string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: obj: %d, code: %d -> %s", e.ObjectID, e.Code, e.Message)
}
