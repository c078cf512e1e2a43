package wlp

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/unix"
)

// Handler receives decoded events.
type Handler interface {
	HandleEvent(ev Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ev Event)

func (f HandlerFunc) HandleEvent(ev Event) {
	f(ev)
}

// ListenerID identifies a registered handler for RemoveListener.
type ListenerID uint64

type listener struct {
	id ListenerID
	h  Handler
}

type options struct {
	log      zerolog.Logger
	readSize int
}

// Option configures a Context.
type Option func(*options)

// WithLogger sets the logger used for connection diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithReadSize sets the number of bytes requested per socket read. It only
// applies to Connect.
func WithReadSize(n int) Option {
	return func(o *options) {
		o.readSize = n
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		log:      log.Logger,
		readSize: DefaultReadSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.log = o.log.With().Str("component", "wlp").Logger()
	return o
}

// Context is a client connection: it owns the transport, the object table
// and the listeners, and runs the goroutine that reads and dispatches
// events for as long as the connection lives.
type Context struct {
	t       Transport
	objs    *ObjectMap
	display *Proxy
	log     zerolog.Logger

	lmu       sync.Mutex
	listeners []listener
	byObject  map[uint32][]listener
	lastLID   ListenerID

	pmu     sync.Mutex
	pending map[uint32]chan error
	err     error
	done    chan struct{}

	// owned by the read loop
	framer Framer
	fds    []int
}

// Connect dials the compositor socket at path and starts the connection.
func Connect(path string, opts ...Option) (*Context, error) {
	o := buildOptions(opts)
	t, err := DialUnix(path, o.readSize)
	if err != nil {
		return nil, err
	}
	o.log.Debug().Str("socket", path).Msg("connected")
	return newContext(t, o), nil
}

// NewContext starts a connection over an established transport. Object 1
// is bound to wl_display before the read loop starts.
func NewContext(t Transport, opts ...Option) *Context {
	return newContext(t, buildOptions(opts))
}

func newContext(t Transport, o *options) *Context {
	c := &Context{
		t:        t,
		log:      o.log,
		byObject: make(map[uint32][]listener),
		pending:  make(map[uint32]chan error),
		done:     make(chan struct{}),
	}
	c.objs = NewObjectMap(c)
	c.display = c.objs.Bind(1, KindDisplay)
	go c.readLoop()
	return c
}

// Display returns the wl_display object.
func (c *Context) Display() *Proxy {
	return c.display
}

// Objects returns the object table of the connection.
func (c *Context) Objects() *ObjectMap {
	return c.objs
}

// Get returns the live object with the given id, or nil.
func (c *Context) Get(id uint32) *Proxy {
	return c.objs.Get(id)
}

// NewObject allocates a fresh id for an object of the given kind.
func (c *Context) NewObject(kind Kind) *Proxy {
	return c.objs.New(kind)
}

// BindObject registers an object at an id chosen by the protocol.
func (c *Context) BindObject(id uint32, kind Kind) *Proxy {
	return c.objs.Bind(id, kind)
}

// GetRegistry sends wl_display.get_registry and returns the new registry.
func (c *Context) GetRegistry() (*Proxy, error) {
	return c.display.Request(OpDisplayGetRegistry)
}

// AddListener registers h for every event on the connection. Handlers run
// on the read goroutine in registration order and may call back into the
// Context.
func (c *Context) AddListener(h Handler) ListenerID {
	c.lmu.Lock()
	defer c.lmu.Unlock()
	c.lastLID++
	l := listener{id: c.lastLID, h: h}
	c.listeners = append(c.listeners[:len(c.listeners):len(c.listeners)], l)
	return l.id
}

// AddObjectListener registers h for the events of a single object. It is
// dropped when the compositor deletes the object.
func (c *Context) AddObjectListener(obj Object, h Handler) ListenerID {
	c.lmu.Lock()
	defer c.lmu.Unlock()
	c.lastLID++
	l := listener{id: c.lastLID, h: h}
	ls := c.byObject[obj.ID()]
	c.byObject[obj.ID()] = append(ls[:len(ls):len(ls)], l)
	return l.id
}

// RemoveListener unregisters a handler. Events already being dispatched
// may still reach it.
func (c *Context) RemoveListener(id ListenerID) bool {
	c.lmu.Lock()
	defer c.lmu.Unlock()
	if ls, ok := without(c.listeners, id); ok {
		c.listeners = ls
		return true
	}
	for obj, ls := range c.byObject {
		if ls, ok := without(ls, id); ok {
			if len(ls) == 0 {
				delete(c.byObject, obj)
			} else {
				c.byObject[obj] = ls
			}
			return true
		}
	}
	return false
}

func without(ls []listener, id ListenerID) ([]listener, bool) {
	for i := range ls {
		if ls[i].id == id {
			out := make([]listener, 0, len(ls)-1)
			out = append(out, ls[:i]...)
			return append(out, ls[i+1:]...), true
		}
	}
	return ls, false
}

// Sync blocks until the compositor has processed every request sent so far
// and every event it sent before answering has been dispatched.
func (c *Context) Sync() error {
	return c.SyncContext(context.Background())
}

// SyncContext is Sync with cancellation.
func (c *Context) SyncContext(ctx context.Context) error {
	cb := c.objs.New(KindCallback)
	ch := make(chan error, 1)

	c.pmu.Lock()
	if c.err != nil {
		err := c.err
		c.pmu.Unlock()
		c.objs.Delete(cb.id)
		return err
	}
	c.pending[cb.id] = ch
	c.pmu.Unlock()

	err := c.send(c.display.id, OpDisplaySync, KindDisplay.Interface().Request(OpDisplaySync), ObjectID(cb.id))
	if err != nil {
		c.forget(cb.id)
		c.objs.Delete(cb.id)
		return errors.Wrap(err, "unable to create display sync")
	}

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		c.forget(cb.id)
		return ctx.Err()
	}
}

func (c *Context) forget(callback uint32) {
	c.pmu.Lock()
	delete(c.pending, callback)
	c.pmu.Unlock()
}

// Err returns the error that ended the connection, if any.
func (c *Context) Err() error {
	c.pmu.Lock()
	defer c.pmu.Unlock()
	return c.err
}

// Done is closed when the read loop has exited.
func (c *Context) Done() <-chan struct{} {
	return c.done
}

// Close shuts the connection down. Pending syncs return ErrClosed.
func (c *Context) Close() error {
	c.fail(ErrClosed)
	return errors.Wrap(c.t.Close(), "unable to close transport")
}

// fail records the first terminal error and releases every pending sync.
func (c *Context) fail(err error) {
	c.pmu.Lock()
	if c.err == nil {
		c.err = err
	}
	err = c.err
	pending := c.pending
	c.pending = make(map[uint32]chan error)
	c.pmu.Unlock()

	for _, ch := range pending {
		ch <- err
	}
}

func (c *Context) send(sender uint32, opcode uint16, msg *Message, args ...interface{}) error {
	if err := c.Err(); err != nil {
		return errors.Wrap(err, "global wayland error")
	}
	data, fds, err := Encode(sender, opcode, msg, args...)
	if err != nil {
		return err
	}
	if e := c.log.Debug(); e.Enabled() {
		e.Uint32("object", sender).
			Str("request", msg.Name).
			Int("size", len(data)).
			Int("fds", len(fds)).
			Msg("send")
	}
	if err := c.t.Send(data, fds); err != nil {
		err = errors.Wrapf(err, "unable to send %s", msg.Name)
		c.fail(err)
		return err
	}
	return nil
}

func (c *Context) readLoop() {
	defer close(c.done)
	defer c.closeQueuedFDs()
	for {
		data, fds, err := c.t.Read()
		c.fds = append(c.fds, fds...)
		if len(data) > 0 {
			frames, ferr := c.framer.Push(data)
			for _, f := range frames {
				c.dispatch(f)
			}
			if ferr != nil {
				c.log.Error().Err(ferr).Msg("lost message framing")
				c.fail(ferr)
				c.t.Close()
				return
			}
		}
		if err != nil {
			if c.Err() == nil {
				c.log.Error().Err(err).Msg("readloop error")
			}
			c.fail(errors.Wrap(err, "connection lost"))
			return
		}
	}
}

func (c *Context) closeQueuedFDs() {
	for _, fd := range c.fds {
		unix.Close(fd)
	}
	c.fds = nil
}

func (c *Context) dispatch(f Frame) {
	// Without a signature the number of descriptors a frame carries is
	// unknown, so those of an unknown sender or opcode stay queued.
	obj := c.objs.Get(f.Header.Sender)
	if obj == nil {
		c.log.Warn().
			Uint32("object", f.Header.Sender).
			Uint16("opcode", f.Header.Opcode).
			Msg("event for unknown object dropped")
		return
	}
	ev, err := DecodeEvent(obj.kind, f, &c.fds)
	if err != nil {
		c.log.Warn().Err(err).Uint32("object", f.Header.Sender).Msg("malformed event dropped")
		return
	}
	if ev.Unhandled {
		c.log.Warn().
			Str("interface", obj.kind.String()).
			Uint32("object", f.Header.Sender).
			Uint16("opcode", f.Header.Opcode).
			Msg("unknown opcode, event dropped")
		return
	}
	if e := c.log.Debug(); e.Enabled() {
		e.Str("event", ev.Format()).Msg("recv")
	}

	c.bindServerObjects(ev)
	if perr, ok := ev.AsError(); ok {
		c.log.Error().Err(perr).Msg("compositor reported a fatal error")
		c.fail(perr)
	}

	c.deliver(ev)

	if id, ok := ev.AsDeleteID(); ok {
		c.objs.Delete(id)
		c.dropObjectListeners(id)
	}
	if _, ok := ev.AsDone(); ok {
		c.complete(ev.Sender)
	}
}

// bindServerObjects registers objects the compositor creates through a
// new_id event argument, so their own events resolve.
func (c *Context) bindServerObjects(ev Event) {
	msg := ev.Message()
	for i, a := range msg.Args {
		if a.Type != ArgNewID || a.Interface == "" {
			continue
		}
		kind, ok := KindByName(a.Interface)
		if !ok {
			continue
		}
		c.objs.Bind(uint32(ev.Object(i)), kind)
	}
}

func (c *Context) deliver(ev Event) {
	c.lmu.Lock()
	global := c.listeners
	local := c.byObject[ev.Sender]
	c.lmu.Unlock()

	for _, l := range global {
		l.h.HandleEvent(ev)
	}
	for _, l := range local {
		l.h.HandleEvent(ev)
	}
}

func (c *Context) dropObjectListeners(id uint32) {
	c.lmu.Lock()
	delete(c.byObject, id)
	c.lmu.Unlock()
}

func (c *Context) complete(callback uint32) {
	c.pmu.Lock()
	ch, ok := c.pending[callback]
	delete(c.pending, callback)
	c.pmu.Unlock()
	if ok {
		ch <- nil
	}
}
