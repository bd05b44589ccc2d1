// Package gowl implements a from-scratch Wayland client core: wire codec,
// object table, event dispatcher, declarative protocol schema, and a
// shared-memory helper, built directly against the compositor socket
// without libwayland.
//
// # Supported Protocols
//
// • wayland (core): display, registry, callback, compositor, surface
// • wl_shm: anonymous shared-memory pools and buffers
// • xdg-shell: window-system base, toplevel surfaces (title/app-id,
//   configure/close), no popups or custom positioning
//
// # Compositor Compatibility
//
// This library speaks the core protocol and a deliberately small slice of
// xdg-shell. Any compositor that implements those (all of them do) works;
// nothing here depends on wlroots-specific protocol extensions.
//
// # Bootstrap
//
// Connect dials $XDG_RUNTIME_DIR/$WAYLAND_DISPLAY (both must be set; there
// is no fallback default socket name), binds every global the generated
// protocol package recognizes, and blocks until the initial sync completes:
//
//	wl, err := client.Connect(myState{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer wl.Close()
//
//	compositor, err := client.GetGlobal[protocol.Compositor](wl)
//	surface, err := compositor.CreateSurface()
//
// # Dispatch
//
// Call Dispatch in a loop (or Roundtrip to wait for one request to be fully
// processed) to drive the event loop; handlers are installed per-object via
// the object table returned by Objects().
//
// # Shared Memory
//
// CreatePool composes the shm package's anonymous-mapping helper with a
// create_pool request on the bound wl_shm global, returning both the wire
// handle and the local *shm.Pool for writing pixel data.
package gowl
