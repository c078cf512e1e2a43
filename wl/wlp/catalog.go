package wlp

import "fmt"

// ArgType is the wire type of a single request or event argument.
type ArgType uint8

const (
	ArgInt ArgType = iota + 1
	ArgUint
	ArgFixed
	ArgString
	ArgObject
	ArgNewID
	ArgArray
	ArgFD
)

var argTypeNames = map[ArgType]string{
	ArgInt:    "int",
	ArgUint:   "uint",
	ArgFixed:  "fixed",
	ArgString: "string",
	ArgObject: "object",
	ArgNewID:  "new_id",
	ArgArray:  "array",
	ArgFD:     "fd",
}

func (t ArgType) String() string {
	if n, ok := argTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("ArgType(%d)", uint8(t))
}

// Arg describes one argument of a message. Interface is set for typed
// object and new_id arguments.
type Arg struct {
	Name      string
	Type      ArgType
	Interface string
	AllowNull bool
}

// Message is the signature of a request or an event.
type Message struct {
	Name       string
	Since      uint32
	Destructor bool
	Args       []Arg
}

// NewIDArg returns the index of the typed new_id argument, or -1.
func (m *Message) NewIDArg() int {
	for i, a := range m.Args {
		if a.Type == ArgNewID && a.Interface != "" {
			return i
		}
	}
	return -1
}

// Interface is a catalog entry: the request and event vocabulary of one
// object kind, indexed by opcode.
type Interface struct {
	Name     string
	Version  uint32
	Requests []Message
	Events   []Message
}

// Request returns the request signature for opcode, or nil.
func (i *Interface) Request(opcode uint16) *Message {
	if i == nil || int(opcode) >= len(i.Requests) {
		return nil
	}
	return &i.Requests[opcode]
}

// Event returns the event signature for opcode, or nil.
func (i *Interface) Event(opcode uint16) *Message {
	if i == nil || int(opcode) >= len(i.Events) {
		return nil
	}
	return &i.Events[opcode]
}

// RequestByName returns the opcode of the named request.
func (i *Interface) RequestByName(name string) (uint16, bool) {
	if i == nil {
		return 0, false
	}
	for op := range i.Requests {
		if i.Requests[op].Name == name {
			return uint16(op), true
		}
	}
	return 0, false
}

// Kind identifies one of the interfaces known to the catalog.
type Kind uint16

var kindsByName map[string]Kind

func init() {
	kindsByName = make(map[string]Kind, len(interfaces))
	for k := range interfaces {
		if interfaces[k].Name != "" {
			kindsByName[interfaces[k].Name] = Kind(k)
		}
	}
}

// KindByName maps a protocol interface name such as "wl_surface" to its Kind.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Valid reports whether k names a catalogued interface.
func (k Kind) Valid() bool {
	return k > KindUnknown && int(k) < len(interfaces)
}

// Interface returns the catalog entry of k, or nil for an unknown kind.
func (k Kind) Interface() *Interface {
	if !k.Valid() {
		return nil
	}
	return &interfaces[k]
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
	return interfaces[k].Name
}
