package wlp

import "sync"

// ServerIDStart is the first id of the range the compositor allocates from
// when it creates objects itself.
const ServerIDStart = 0xff000000

// Object is anything that can be passed as an object or new_id argument.
type Object interface {
	ID() uint32
}

// ObjectMap is the id to object table of a connection. It owns every
// Proxy it hands out and the high-water mark new ids are allocated from.
type ObjectMap struct {
	mu   sync.Mutex
	ctx  *Context
	objs map[uint32]*Proxy
	last uint32
}

// NewObjectMap creates an empty table. Proxies it creates send their
// requests through ctx, which may be nil for a detached table.
func NewObjectMap(ctx *Context) *ObjectMap {
	return &ObjectMap{
		ctx:  ctx,
		objs: make(map[uint32]*Proxy),
	}
}

// Bind inserts an object at an id dictated by the protocol, replacing any
// previous entry. Client-range ids raise the high-water mark so that New
// never hands the same id out again.
func (m *ObjectMap) Bind(id uint32, kind Kind) *Proxy {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &Proxy{id: id, kind: kind, ctx: m.ctx}
	m.objs[id] = p
	if id < ServerIDStart && id > m.last {
		m.last = id
	}
	return p
}

// New allocates the next id and inserts a fresh object there.
func (m *ObjectMap) New(kind Kind) *Proxy {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last++
	p := &Proxy{id: m.last, kind: kind, ctx: m.ctx}
	m.objs[p.id] = p
	return p
}

// Get returns the object bound at id, or nil.
func (m *ObjectMap) Get(id uint32) *Proxy {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objs[id]
}

// Delete removes id from the table. The id is not handed out again.
func (m *ObjectMap) Delete(id uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objs, id)
}

// Len returns the number of live objects.
func (m *ObjectMap) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objs)
}

// Last returns the high-water mark.
func (m *ObjectMap) Last() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
