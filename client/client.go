// Package client implements the bootstrap handshake and single-threaded
// event loop described in spec.md §4.5: connect, bind recognized globals,
// dispatch events to per-object handlers, and expose typed helpers over the
// object table.
package client

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"reflect"

	"github.com/op/go-logging"

	"github.com/bnema/gowl/internal/gwlog"
	"github.com/bnema/gowl/objects"
	"github.com/bnema/gowl/protocol"
	"github.com/bnema/gowl/shm"
	"github.com/bnema/gowl/wire"
)

// Client is a connection to one compositor. S is an application-supplied
// state type threaded through every handler, the Go generics translation of
// the original single-threaded client's custom-state mechanism.
type Client[S any] struct {
	conn    *net.UnixConn
	reader  *wire.Reader
	writer  *wire.Writer
	objects *objects.Manager
	globals map[string]uint32 // Go handle name -> bound object id
	state   S
	log     *logging.Logger
}

// Connect opens $XDG_RUNTIME_DIR/$WAYLAND_DISPLAY, allocates the display,
// binds every recognized global advertised by the registry, and blocks
// until the initial sync callback fires.
func Connect[S any](initial S) (*Client[S], error) {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	displayName := os.Getenv("WAYLAND_DISPLAY")
	if runtimeDir == "" || displayName == "" {
		return nil, fmt.Errorf("client: XDG_RUNTIME_DIR and WAYLAND_DISPLAY must both be set")
	}
	path := filepath.Join(runtimeDir, displayName)

	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("client: dialing %s: %w", path, err)
	}
	unixConn, ok := conn.(*net.UnixConn)
	if !ok {
		conn.Close()
		return nil, fmt.Errorf("client: %s did not yield a unix socket", path)
	}

	writer, err := wire.NewWriter(unixConn)
	if err != nil {
		unixConn.Close()
		return nil, err
	}

	c := &Client[S]{
		conn:    unixConn,
		reader:  wire.NewReader(unixConn),
		writer:  writer,
		objects: objects.NewManager(),
		globals: make(map[string]uint32),
		state:   initial,
		log:     gwlog.Logger(),
	}

	displayParser, _ := protocol.ParserFor("wl_display")
	c.objects.AllocateDisplay("wl_display", displayParser)
	if err := c.objects.AddHandler(objects.DisplayID, "wl_display", c.handleDisplayEvent); err != nil {
		unixConn.Close()
		return nil, err
	}

	display := protocol.NewDisplay(objects.DisplayID, c)
	registry, err := display.GetRegistry()
	if err != nil {
		unixConn.Close()
		return nil, fmt.Errorf("client: get_registry: %w", err)
	}
	if err := c.objects.AddHandler(registry.ID(), "wl_registry", c.bindHandlerFor(registry)); err != nil {
		unixConn.Close()
		return nil, err
	}

	done := false
	cb, err := display.Sync()
	if err != nil {
		unixConn.Close()
		return nil, fmt.Errorf("client: sync: %w", err)
	}
	if err := c.objects.AddHandler(cb.ID(), "wl_callback", func(interface{}) { done = true }); err != nil {
		unixConn.Close()
		return nil, err
	}

	for !done {
		if err := c.dispatchOne(); err != nil {
			unixConn.Close()
			return nil, fmt.Errorf("client: bootstrap: %w", err)
		}
	}

	return c, nil
}

// handleDisplayEvent logs display errors and clears deletion-acknowledged
// objects from the table.
func (c *Client[S]) handleDisplayEvent(ev interface{}) {
	switch e := ev.(type) {
	case protocol.DisplayErrorEvent:
		c.log.Errorf("display error: object=%d code=%d message=%s", e.ObjectID, e.Code, e.Message)
	case protocol.DisplayDeleteIDEvent:
		if _, ok := c.objects.InterfaceOf(e.ID); !ok {
			c.log.Warningf("delete_id for unknown object %d", e.ID)
			return
		}
		c.objects.RemoveObject(e.ID)
	}
}

// bindHandlerFor returns the registry.global handler installed during
// bootstrap: for every recognized interface it binds a new object, records
// it as a global, and, for the window-system base, installs a ping
// responder.
func (c *Client[S]) bindHandlerFor(registry protocol.Registry) objects.Handler {
	return func(ev interface{}) {
		global, ok := ev.(protocol.RegistryGlobalEvent)
		if !ok {
			return
		}
		goName, recognized := protocol.GoNameFor(global.Interface)
		if !recognized {
			c.log.Debugf("ignoring unrecognized global %q (name=%d)", global.Interface, global.Name)
			return
		}
		parser, _ := protocol.ParserFor(global.Interface)
		id, err := registry.Bind(global.Name, global.Interface, global.Version, parser)
		if err != nil {
			c.log.Errorf("bind %s: %v", global.Interface, err)
			return
		}
		c.globals[goName] = id

		if global.Interface == "xdg_wm_base" {
			wmBase := protocol.NewWmBase(id, c)
			err := c.objects.AddHandler(id, "xdg_wm_base", func(ev interface{}) {
				ping, ok := ev.(protocol.WmBasePingEvent)
				if !ok {
					return
				}
				if err := wmBase.Pong(ping.Serial); err != nil {
					c.log.Errorf("pong: %v", err)
				}
			})
			if err != nil {
				c.log.Errorf("installing ping handler for xdg_wm_base: %v", err)
			}
		}
	}
}

// Dispatch reads and processes exactly one event, blocking until one
// arrives.
func (c *Client[S]) Dispatch() error { return c.dispatchOne() }

// Roundtrip issues a sync request and pumps events until the server
// acknowledges it, guaranteeing every request sent before the call has been
// processed.
func (c *Client[S]) Roundtrip() error {
	display := protocol.NewDisplay(objects.DisplayID, c)
	cb, err := display.Sync()
	if err != nil {
		return err
	}
	done := false
	if err := c.objects.AddHandler(cb.ID(), "wl_callback", func(interface{}) { done = true }); err != nil {
		return err
	}
	for !done {
		if err := c.dispatchOne(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client[S]) dispatchOne() error {
	hdr, payload, err := c.reader.ReadFrame()
	if err != nil {
		return err
	}

	interfaceName, parser, handler, ok := c.objects.Checkout(hdr.ObjectID)
	if !ok {
		c.log.Warningf("event for unknown object %d (opcode %d), dropping", hdr.ObjectID, hdr.Opcode)
		return nil
	}

	event, perr := parser(hdr.Opcode, payload)
	if perr != nil {
		c.log.Errorf("parse error: object=%d interface=%s opcode=%d: %v", hdr.ObjectID, interfaceName, hdr.Opcode, perr)
		c.objects.Reinstall(hdr.ObjectID, handler)
		return nil
	}

	if handler == nil {
		c.log.Debugf("no handler installed: object=%d interface=%s opcode=%d", hdr.ObjectID, interfaceName, hdr.Opcode)
		return nil
	}

	handler(event)
	c.objects.Reinstall(hdr.ObjectID, handler)
	return nil
}

// Close closes the underlying socket.
func (c *Client[S]) Close() error { return c.conn.Close() }

// State returns the application-supplied state value.
func (c *Client[S]) State() S { return c.state }

// SetState replaces the application-supplied state value.
func (c *Client[S]) SetState(s S) { c.state = s }

// Objects exposes the object table directly, for handlers that need to
// install or remove handlers on objects other than their own.
func (c *Client[S]) Objects() *objects.Manager { return c.objects }

// Globals returns a copy of the bound-global table, keyed by Go handle
// name. It holds only the advertised globals whose interface this client
// recognizes and bound, plus any recorded via UpgradeToGlobal.
func (c *Client[S]) Globals() map[string]uint32 {
	out := make(map[string]uint32, len(c.globals))
	for k, v := range c.globals {
		out[k] = v
	}
	return out
}

// Allocate implements protocol.Conn.
func (c *Client[S]) Allocate(interfaceName string, parser objects.Parser) (uint32, error) {
	return c.objects.Allocate(interfaceName, parser)
}

// Send implements protocol.Conn: it encodes build's output, addresses it to
// objectID/opcode, and writes it to the compositor.
func (c *Client[S]) Send(objectID uint32, opcode uint16, build func(*wire.Encoder)) error {
	e := wire.NewEncoder()
	build(e)
	frame, fds := e.Finish(objectID, opcode)
	c.log.Debugf("-> object=%d opcode=%d bytes=%d fds=%d", objectID, opcode, len(frame), len(fds))
	return c.writer.Send(frame, fds)
}

// CreatePool composes the shared-memory helper with a create_pool request
// on the bound wl_shm global. The returned *shm.Pool is owned by the caller.
func (c *Client[S]) CreatePool(size int) (protocol.ShmPool, *shm.Pool, error) {
	shmGlobal, err := GetGlobal[protocol.Shm](c)
	if err != nil {
		return protocol.ShmPool{}, nil, err
	}
	pool, err := shm.Alloc(size)
	if err != nil {
		return protocol.ShmPool{}, nil, err
	}
	handle, err := shmGlobal.CreatePool(int(pool.FD()), int32(size))
	if err != nil {
		pool.Close()
		return protocol.ShmPool{}, nil, err
	}
	return handle, pool, nil
}

// handleName returns the Go type name for T, used by the generic helpers
// below to look T up in the global/constructor registries by reflection.
func handleName[T any]() string {
	var zero T
	return reflect.TypeOf(zero).Name()
}

// GetGlobal returns the bound global of type T, recorded during bootstrap.
func GetGlobal[T any, S any](c *Client[S]) (T, error) {
	var zero T
	name := handleName[T]()
	id, ok := c.globals[name]
	if !ok {
		return zero, fmt.Errorf("client: no bound global of type %s", name)
	}
	v, ok := protocol.Construct(name, id, c)
	if !ok {
		return zero, fmt.Errorf("client: no constructor registered for %s", name)
	}
	return v.(T), nil
}

// GetReference returns a typed handle for an existing object id, checking
// that it is still present in the object table.
func GetReference[T any, S any](c *Client[S], id uint32) (T, error) {
	var zero T
	name := handleName[T]()
	if _, ok := c.objects.InterfaceOf(id); !ok {
		return zero, &objects.NoSuchObjectError{ID: id}
	}
	v, ok := protocol.Construct(name, id, c)
	if !ok {
		return zero, fmt.Errorf("client: no constructor registered for %s", name)
	}
	return v.(T), nil
}

// idHandle is implemented by every generated handle type.
type idHandle interface{ ID() uint32 }

// UpgradeToGlobal records an already-bound handle as the client's global of
// its type, for cases where a handle was obtained via GetReference or
// NewObject rather than bootstrap binding.
func UpgradeToGlobal[T any, S any](c *Client[S], handle T) error {
	h, ok := any(handle).(idHandle)
	if !ok {
		return fmt.Errorf("client: %T has no ID() method", handle)
	}
	c.globals[handleName[T]()] = h.ID()
	return nil
}

// NewObject allocates a fresh client-side object of type T without sending
// any request. Generated request methods allocate their own new_id objects,
// so most call sites should prefer the request method on an existing handle
// instead.
func NewObject[T any, S any](c *Client[S]) (T, error) {
	var zero T
	goName := handleName[T]()
	wireName, ok := protocol.WireNameFor(goName)
	if !ok {
		return zero, fmt.Errorf("client: unrecognized handle type %s", goName)
	}
	parser, _ := protocol.ParserFor(wireName)
	id, err := c.objects.Allocate(wireName, parser)
	if err != nil {
		return zero, err
	}
	v, _ := protocol.Construct(goName, id, c)
	return v.(T), nil
}
