package wl

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/elliotmr/wlclient/internal/config"
	"github.com/elliotmr/wlclient/wl/wlp"
)

// Global is an object the compositor advertises through the registry.
type Global struct {
	Name      uint32
	Interface string
	Version   uint32
}

// Client is a connection with a registry attached. It keeps the advertised
// globals up to date and binds them on request.
type Client struct {
	ctx      *wlp.Context
	registry *wlp.Proxy
	timeout  config.Duration
	log      zerolog.Logger

	mu          sync.RWMutex
	glb         map[uint32]Global
	glbByString map[string][]Global
	bound       map[uint32][]*wlp.Proxy
	screens     map[uint32]*Screen

	// serializes Screens
	smu sync.Mutex
}

// Connect resolves the compositor socket from cfg, connects, and waits
// until the initial globals have arrived.
func Connect(cfg config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	path, err := cfg.SocketPath()
	if err != nil {
		return nil, err
	}
	ctx, err := wlp.Connect(path,
		wlp.WithLogger(log.Logger),
		wlp.WithReadSize(cfg.ReadBufferSize),
	)
	if err != nil {
		return nil, err
	}
	c, err := NewClient(ctx, cfg)
	if err != nil {
		ctx.Close()
		return nil, err
	}
	return c, nil
}

// NewClient attaches to an open connection: it requests the registry and
// performs one roundtrip so Globals is populated on return.
func NewClient(ctx *wlp.Context, cfg config.Config) (*Client, error) {
	c := &Client{
		ctx:         ctx,
		timeout:     cfg.SyncTimeout,
		log:         log.Logger.With().Str("component", "wl").Logger(),
		glb:         make(map[uint32]Global),
		glbByString: make(map[string][]Global),
		bound:       make(map[uint32][]*wlp.Proxy),
		screens:     make(map[uint32]*Screen),
	}
	reg, err := ctx.GetRegistry()
	if err != nil {
		return nil, errors.Wrap(err, "unable to get registry")
	}
	c.registry = reg
	ctx.AddObjectListener(reg, wlp.HandlerFunc(c.handleRegistry))

	if err := c.Roundtrip(); err != nil {
		return nil, errors.Wrap(err, "starting context failed")
	}
	return c, nil
}

// Context returns the underlying connection.
func (c *Client) Context() *wlp.Context {
	return c.ctx
}

// Registry returns the wl_registry object.
func (c *Client) Registry() *wlp.Proxy {
	return c.registry
}

// Roundtrip is a convenience wrapper around Sync. It will sleep the calling
// go-routine until all pending wayland commands are processed, or until the
// configured sync timeout expires.
func (c *Client) Roundtrip() error {
	ctx := context.Background()
	if c.timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout.Duration)
		defer cancel()
	}
	return c.ctx.SyncContext(ctx)
}

func (c *Client) handleRegistry(ev wlp.Event) {
	if g, ok := ev.AsGlobal(); ok {
		c.addGlobal(Global(g))
		return
	}
	if name, ok := ev.AsGlobalRemove(); ok {
		c.removeGlobal(name)
	}
}

func (c *Client) addGlobal(glb Global) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, exists := c.glb[glb.Name]; exists {
		c.glbByString[old.Interface] = withoutGlobal(c.glbByString[old.Interface], old.Name)
	}
	c.glb[glb.Name] = glb
	c.glbByString[glb.Interface] = append(c.glbByString[glb.Interface], glb)
	c.log.Debug().
		Uint32("name", glb.Name).
		Str("interface", glb.Interface).
		Uint32("version", glb.Version).
		Msg("added global")
}

func (c *Client) removeGlobal(name uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	glb, exists := c.glb[name]
	if !exists {
		return
	}
	delete(c.glb, name)
	delete(c.bound, name)
	delete(c.screens, name)
	ls := withoutGlobal(c.glbByString[glb.Interface], name)
	if len(ls) == 0 {
		delete(c.glbByString, glb.Interface)
	} else {
		c.glbByString[glb.Interface] = ls
	}
	c.log.Debug().Uint32("name", name).Str("interface", glb.Interface).Msg("removed global")
}

func withoutGlobal(ls []Global, name uint32) []Global {
	out := make([]Global, 0, len(ls))
	for _, g := range ls {
		if g.Name != name {
			out = append(out, g)
		}
	}
	return out
}

// Globals returns the advertised globals ordered by name.
func (c *Client) Globals() []Global {
	c.mu.RLock()
	out := make([]Global, 0, len(c.glb))
	for _, g := range c.glb {
		out = append(out, g)
	}
	c.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// NumGlobals returns how many globals implement ifname.
func (c *Client) NumGlobals(ifname string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.glbByString[ifname])
}

// BindGlobalIndex binds the i-th global implementing ifname. The version is
// clamped to what both sides support; a zero version asks for the highest.
func (c *Client) BindGlobalIndex(ifname string, i int, version uint32) (*wlp.Proxy, error) {
	c.mu.RLock()
	if i < 0 || i >= len(c.glbByString[ifname]) {
		c.mu.RUnlock()
		return nil, errors.Errorf("index: %d out of range for interface: %s", i, ifname)
	}
	glb := c.glbByString[ifname][i]
	c.mu.RUnlock()
	return c.bindGlobal(glb, version)
}

func (c *Client) bindGlobal(glb Global, version uint32) (*wlp.Proxy, error) {
	kind, ok := wlp.KindByName(glb.Interface)
	if !ok {
		return nil, errors.Errorf("interface %s is not in the protocol catalog", glb.Interface)
	}
	v := glb.Version
	if limit := kind.Interface().Version; v > limit {
		v = limit
	}
	if version > 0 && version < v {
		v = version
	}

	obj, err := c.registry.Bind(glb.Name, glb.Interface, v)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.bound[glb.Name] = append(c.bound[glb.Name], obj)
	c.mu.Unlock()
	c.log.Debug().Str("interface", glb.Interface).Uint32("version", v).Uint32("id", obj.ID()).Msg("bound global")
	return obj, nil
}

// BindGlobal binds a global the compositor advertises exactly once.
func (c *Client) BindGlobal(ifname string, version uint32) (*wlp.Proxy, error) {
	if n := c.NumGlobals(ifname); n != 1 {
		return nil, errors.Errorf("BindGlobal requires exactly one instance of %s, found %d", ifname, n)
	}
	return c.BindGlobalIndex(ifname, 0, version)
}

// Bound returns the objects bound to the global name that is still
// advertised.
func (c *Client) Bound(name uint32) []*wlp.Proxy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*wlp.Proxy(nil), c.bound[name]...)
}

// Err returns the error that ended the connection, if any.
func (c *Client) Err() error {
	return c.ctx.Err()
}

// Close shuts the connection down.
func (c *Client) Close() error {
	return c.ctx.Close()
}
