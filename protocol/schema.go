// schema.go declares the wire schema for every interface this client
// understands: requests, events, and their argument types. cmd/wlgen reads
// Schemas and expands it into the generated handles in zz_generated.go.
package protocol

import "fmt"

// ArgType enumerates the wire value kinds a request or event argument can
// take. It mirrors the codec's own Wire value union (wire.Encoder/Decoder).
type ArgType int

const (
	ArgUint32 ArgType = iota
	ArgInt32
	ArgString
	ArgArray
	ArgFD        // requests only; never appears as an event argument
	ArgNewID     // a uint32 naming a freshly allocated object of some interface
	ArgObject    // a uint32 naming an existing object
	ArgShmFormat // a uint32 on the wire, ShmFormat in generated Go
)

func (t ArgType) String() string {
	switch t {
	case ArgUint32:
		return "uint32"
	case ArgInt32:
		return "int32"
	case ArgString:
		return "string"
	case ArgArray:
		return "array"
	case ArgFD:
		return "fd"
	case ArgNewID:
		return "new_id"
	case ArgObject:
		return "object"
	case ArgShmFormat:
		return "shm_format"
	default:
		return fmt.Sprintf("ArgType(%d)", int(t))
	}
}

// Arg is one named, typed argument of a request or event. NewIDInterface is
// only meaningful when Type is ArgNewID: it names the wire interface the
// freshly allocated object implements, which cmd/wlgen needs to pick the
// generated request method's return type. The one exception is
// wl_registry.bind, whose new_id interface is a runtime argument rather
// than fixed by the schema; cmd/wlgen special-cases that request by name.
type Arg struct {
	Name           string
	Type           ArgType
	NewIDInterface string
}

// Message is one request or one event. Opcode is explicit rather than
// implied by list position so that interfaces which must preserve
// real-protocol wire numbers across reserved, unimplemented slots (xdg_shell;
// see DESIGN.md) can do so; interfaces with no such gaps simply number
// messages 0..N in declaration order, satisfying spec.md §4.2 directly.
type Message struct {
	Name   string
	Opcode uint16
	Args   []Arg
}

// Interface is one schema entry: a stable tag, its requests, and its events.
type Interface struct {
	Name     string // wire interface name, e.g. "wl_surface"
	GoName   string // exported Go type name, e.g. "Surface"
	Requests []Message
	Events   []Message
}

// Schemas returns the full set of interfaces this client implements, in the
// fixed order cmd/wlgen emits them.
func Schemas() []Interface {
	return []Interface{
		displayInterface,
		registryInterface,
		callbackInterface,
		compositorInterface,
		surfaceInterface,
		shmInterface,
		shmPoolInterface,
		bufferInterface,
		wmBaseInterface,
		xdgSurfaceInterface,
		toplevelInterface,
	}
}

// Validate rejects schemas with unknown argument types or duplicate opcodes
// within the same message category (requests, or events) of an interface.
// Unimplemented-but-reserved opcodes (see Message) are permitted to be
// skipped; they simply never appear in Requests/Events.
func Validate() error {
	for _, iface := range Schemas() {
		if err := validateMessages(iface.Name, "request", iface.Requests); err != nil {
			return err
		}
		if err := validateMessages(iface.Name, "event", iface.Events); err != nil {
			return err
		}
	}
	return nil
}

func validateMessages(ifaceName, kind string, msgs []Message) error {
	seen := make(map[uint16]string, len(msgs))
	for _, m := range msgs {
		if prev, ok := seen[m.Opcode]; ok {
			return fmt.Errorf("protocol: %s.%s and %s.%s share %s opcode %d", ifaceName, prev, ifaceName, m.Name, kind, m.Opcode)
		}
		seen[m.Opcode] = m.Name
		for _, a := range m.Args {
			switch a.Type {
			case ArgUint32, ArgInt32, ArgString, ArgArray, ArgFD, ArgNewID, ArgObject, ArgShmFormat:
				// recognized
			default:
				return fmt.Errorf("protocol: %s.%s argument %q has unknown type %d", ifaceName, m.Name, a.Name, int(a.Type))
			}
			if kind == "event" && a.Type == ArgFD {
				return fmt.Errorf("protocol: %s.%s is an event but declares a file-descriptor argument %q", ifaceName, m.Name, a.Name)
			}
			if a.Type == ArgNewID && a.NewIDInterface == "" && !(ifaceName == "wl_registry" && m.Name == "bind") {
				return fmt.Errorf("protocol: %s.%s new_id argument %q has no NewIDInterface", ifaceName, m.Name, a.Name)
			}
		}
	}
	return nil
}

// ShmFormat is the pixel format advertised by wl_shm.format and consumed by
// wl_shm_pool.create_buffer.
type ShmFormat uint32

const (
	ShmFormatArgb8888 ShmFormat = 0
	ShmFormatXrgb8888 ShmFormat = 1
)

func (f ShmFormat) String() string {
	switch f {
	case ShmFormatArgb8888:
		return "ARGB8888"
	case ShmFormatXrgb8888:
		return "XRGB8888"
	default:
		return fmt.Sprintf("ShmFormat(0x%08x)", uint32(f))
	}
}

var displayInterface = Interface{
	Name:   "wl_display",
	GoName: "Display",
	Requests: []Message{
		{Name: "sync", Opcode: 0, Args: []Arg{{Name: "callback", Type: ArgNewID, NewIDInterface: "wl_callback"}}},
		{Name: "get_registry", Opcode: 1, Args: []Arg{{Name: "registry", Type: ArgNewID, NewIDInterface: "wl_registry"}}},
	},
	Events: []Message{
		{Name: "error", Opcode: 0, Args: []Arg{
			{Name: "object_id", Type: ArgUint32}, {Name: "code", Type: ArgUint32}, {Name: "message", Type: ArgString},
		}},
		{Name: "delete_id", Opcode: 1, Args: []Arg{{Name: "id", Type: ArgUint32}}},
	},
}

var registryInterface = Interface{
	Name:   "wl_registry",
	GoName: "Registry",
	Requests: []Message{
		// bind's new_id target interface is a runtime string argument, not
		// fixed by the schema; cmd/wlgen special-cases this request by name
		// rather than reading NewIDInterface.
		{Name: "bind", Opcode: 0, Args: []Arg{
			{Name: "name", Type: ArgUint32}, {Name: "interface", Type: ArgString}, {Name: "version", Type: ArgUint32}, {Name: "id", Type: ArgNewID},
		}},
	},
	Events: []Message{
		{Name: "global", Opcode: 0, Args: []Arg{
			{Name: "name", Type: ArgUint32}, {Name: "interface", Type: ArgString}, {Name: "version", Type: ArgUint32},
		}},
	},
}

var callbackInterface = Interface{
	Name:   "wl_callback",
	GoName: "Callback",
	Events: []Message{
		{Name: "done", Opcode: 0, Args: []Arg{{Name: "callback_data", Type: ArgUint32}}},
	},
}

var compositorInterface = Interface{
	Name:   "wl_compositor",
	GoName: "Compositor",
	Requests: []Message{
		{Name: "create_surface", Opcode: 0, Args: []Arg{{Name: "id", Type: ArgNewID, NewIDInterface: "wl_surface"}}},
	},
}

var surfaceInterface = Interface{
	Name:   "wl_surface",
	GoName: "Surface",
	Requests: []Message{
		{Name: "destroy", Opcode: 0},
		{Name: "attach", Opcode: 1, Args: []Arg{{Name: "buffer", Type: ArgObject}, {Name: "x", Type: ArgInt32}, {Name: "y", Type: ArgInt32}}},
		{Name: "damage", Opcode: 2, Args: []Arg{
			{Name: "x", Type: ArgInt32}, {Name: "y", Type: ArgInt32}, {Name: "width", Type: ArgInt32}, {Name: "height", Type: ArgInt32},
		}},
		{Name: "frame", Opcode: 3, Args: []Arg{{Name: "callback", Type: ArgNewID, NewIDInterface: "wl_callback"}}},
		{Name: "set_opaque_region", Opcode: 4, Args: []Arg{{Name: "region", Type: ArgObject}}},
		{Name: "set_input_region", Opcode: 5, Args: []Arg{{Name: "region", Type: ArgObject}}},
		{Name: "commit", Opcode: 6},
		{Name: "set_buffer_transform", Opcode: 7, Args: []Arg{{Name: "transform", Type: ArgInt32}}},
		{Name: "set_buffer_scale", Opcode: 8, Args: []Arg{{Name: "scale", Type: ArgInt32}}},
		{Name: "damage_buffer", Opcode: 9, Args: []Arg{
			{Name: "x", Type: ArgInt32}, {Name: "y", Type: ArgInt32}, {Name: "width", Type: ArgInt32}, {Name: "height", Type: ArgInt32},
		}},
	},
	Events: []Message{
		{Name: "enter", Opcode: 0, Args: []Arg{{Name: "output", Type: ArgObject}}},
		{Name: "leave", Opcode: 1, Args: []Arg{{Name: "output", Type: ArgObject}}},
		{Name: "preferred_buffer_scale", Opcode: 2, Args: []Arg{{Name: "factor", Type: ArgInt32}}},
		{Name: "preferred_buffer_transform", Opcode: 3, Args: []Arg{{Name: "transform", Type: ArgUint32}}},
	},
}

var shmInterface = Interface{
	Name:   "wl_shm",
	GoName: "Shm",
	Requests: []Message{
		{Name: "create_pool", Opcode: 0, Args: []Arg{
			{Name: "id", Type: ArgNewID, NewIDInterface: "wl_shm_pool"}, {Name: "fd", Type: ArgFD}, {Name: "size", Type: ArgInt32},
		}},
	},
	Events: []Message{
		{Name: "format", Opcode: 0, Args: []Arg{{Name: "format", Type: ArgShmFormat}}},
	},
}

var shmPoolInterface = Interface{
	Name:   "wl_shm_pool",
	GoName: "ShmPool",
	Requests: []Message{
		{Name: "create_buffer", Opcode: 0, Args: []Arg{
			{Name: "id", Type: ArgNewID, NewIDInterface: "wl_buffer"},
			{Name: "offset", Type: ArgInt32}, {Name: "width", Type: ArgInt32}, {Name: "height", Type: ArgInt32}, {Name: "stride", Type: ArgInt32},
			{Name: "format", Type: ArgShmFormat},
		}},
		{Name: "destroy", Opcode: 1},
		{Name: "resize", Opcode: 2, Args: []Arg{{Name: "size", Type: ArgInt32}}},
	},
}

var bufferInterface = Interface{
	Name: "wl_buffer",
	GoName: "Buffer",
	Requests: []Message{
		{Name: "destroy", Opcode: 0},
	},
	Events: []Message{
		{Name: "release", Opcode: 0},
	},
}

// wmBaseInterface models the window-system base object (xdg_wm_base).
// create_positioner (opcode 1) is deliberately absent: popups and custom
// positioning are out of scope (see spec.md Non-goals), but the opcode slot
// is reserved so pong keeps its real-protocol wire number.
var wmBaseInterface = Interface{
	Name:   "xdg_wm_base",
	GoName: "WmBase",
	Requests: []Message{
		{Name: "destroy", Opcode: 0},
		{Name: "pong", Opcode: 3, Args: []Arg{{Name: "serial", Type: ArgUint32}}},
		{Name: "get_xdg_surface", Opcode: 2, Args: []Arg{
			{Name: "id", Type: ArgNewID, NewIDInterface: "xdg_surface"}, {Name: "surface", Type: ArgObject},
		}},
	},
	Events: []Message{
		{Name: "ping", Opcode: 0, Args: []Arg{{Name: "serial", Type: ArgUint32}}},
	},
}

// xdgSurfaceInterface omits get_popup (opcode 2); see wmBaseInterface.
var xdgSurfaceInterface = Interface{
	Name:   "xdg_surface",
	GoName: "XdgSurface",
	Requests: []Message{
		{Name: "destroy", Opcode: 0},
		{Name: "get_toplevel", Opcode: 1, Args: []Arg{{Name: "id", Type: ArgNewID, NewIDInterface: "xdg_toplevel"}}},
		{Name: "set_window_geometry", Opcode: 3, Args: []Arg{
			{Name: "x", Type: ArgInt32}, {Name: "y", Type: ArgInt32}, {Name: "width", Type: ArgInt32}, {Name: "height", Type: ArgInt32},
		}},
		{Name: "ack_configure", Opcode: 4, Args: []Arg{{Name: "serial", Type: ArgUint32}}},
	},
	Events: []Message{
		{Name: "configure", Opcode: 0, Args: []Arg{{Name: "serial", Type: ArgUint32}}},
	},
}

// toplevelInterface omits set_parent, show_window_menu, move, resize,
// set_max_size, set_min_size, the maximize/fullscreen/minimize family, and
// the v4+ configure_bounds/wm_capabilities events: window management beyond
// title/app-id and the base configure/close lifecycle is out of scope.
var toplevelInterface = Interface{
	Name:   "xdg_toplevel",
	GoName: "Toplevel",
	Requests: []Message{
		{Name: "destroy", Opcode: 0},
		{Name: "set_title", Opcode: 2, Args: []Arg{{Name: "title", Type: ArgString}}},
		{Name: "set_app_id", Opcode: 3, Args: []Arg{{Name: "app_id", Type: ArgString}}},
	},
	Events: []Message{
		{Name: "configure", Opcode: 0, Args: []Arg{
			{Name: "width", Type: ArgInt32}, {Name: "height", Type: ArgInt32}, {Name: "states", Type: ArgArray},
		}},
		{Name: "close", Opcode: 1},
	},
}
