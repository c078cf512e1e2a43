package wlp

import (
	"github.com/pkg/errors"
)

// Proxy is the client-side handle of a protocol object. The ObjectMap it
// came from owns it; a Proxy whose id has been deleted is no longer
// reachable through Context.Get.
type Proxy struct {
	id   uint32
	kind Kind
	ctx  *Context
}

// ID returns the wayland object identifier
func (p *Proxy) ID() uint32 {
	if p == nil {
		return 0
	}
	return p.id
}

// Kind returns the interface of the object.
func (p *Proxy) Kind() Kind {
	return p.kind
}

// Interface returns the catalog entry for the object's interface.
func (p *Proxy) Interface() *Interface {
	return p.kind.Interface()
}

// Context returns the connection the object belongs to.
func (p *Proxy) Context() *Context {
	return p.ctx
}

// Alive reports whether the object is still registered on its connection.
func (p *Proxy) Alive() bool {
	return p != nil && p.ctx != nil && p.ctx.objs.Get(p.id) == p
}

// Request sends the request with the given opcode. A typed new_id argument
// is allocated here and must be left out of args; the object it creates is
// returned. Requests that create nothing return a nil Proxy.
func (p *Proxy) Request(opcode uint16, args ...interface{}) (*Proxy, error) {
	if p == nil {
		return nil, errors.New("object is nil")
	}
	if p.ctx == nil {
		return nil, errors.Errorf("object %d is not attached to a connection", p.id)
	}
	msg := p.kind.Interface().Request(opcode)
	if msg == nil {
		return nil, errors.Wrapf(ErrUnknownOpcode, "%s opcode %d", p.kind, opcode)
	}

	var ret *Proxy
	if i := msg.NewIDArg(); i >= 0 {
		if i > len(args) {
			return nil, errors.Wrapf(ErrArgCount, "%s.%s", p.kind, msg.Name)
		}
		kind, ok := KindByName(msg.Args[i].Interface)
		if !ok {
			return nil, errors.Errorf("%s.%s creates unknown interface %s", p.kind, msg.Name, msg.Args[i].Interface)
		}
		ret = p.ctx.objs.New(kind)
		full := make([]interface{}, 0, len(args)+1)
		full = append(full, args[:i]...)
		full = append(full, ObjectID(ret.id))
		args = append(full, args[i:]...)
	}

	if err := p.ctx.send(p.id, opcode, msg, args...); err != nil {
		if ret != nil {
			p.ctx.objs.Delete(ret.id)
		}
		return nil, errors.Wrapf(err, "%s@%d", p.kind, p.id)
	}
	return ret, nil
}

// Call is Request with the request looked up by name.
func (p *Proxy) Call(name string, args ...interface{}) (*Proxy, error) {
	if p == nil {
		return nil, errors.New("object is nil")
	}
	op, ok := p.kind.Interface().RequestByName(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOpcode, "%s has no request %q", p.kind, name)
	}
	return p.Request(op, args...)
}

// Bind sends wl_registry.bind for the global name and returns the new object.
// It is only valid on a registry.
func (p *Proxy) Bind(name uint32, iface string, version uint32) (*Proxy, error) {
	if p == nil || p.kind != KindRegistry {
		return nil, errors.New("bind requires a wl_registry")
	}
	if p.ctx == nil {
		return nil, errors.Errorf("object %d is not attached to a connection", p.id)
	}
	kind, ok := KindByName(iface)
	if !ok {
		return nil, errors.Errorf("unable to bind unknown interface %s", iface)
	}
	ret := p.ctx.objs.New(kind)
	msg := p.kind.Interface().Request(OpRegistryBind)
	if err := p.ctx.send(p.id, OpRegistryBind, msg, name, iface, version, ObjectID(ret.id)); err != nil {
		p.ctx.objs.Delete(ret.id)
		return nil, errors.Wrapf(err, "unable to bind object: %s", iface)
	}
	return ret, nil
}
