package client

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/gowl/protocol"
	"github.com/bnema/gowl/wire"
)

// fakeCompositor listens on a temp unix socket and plays just enough of the
// server side of bootstrap for Connect to complete: it answers get_registry
// with a handful of globals, then answers the client's sync with a
// wl_callback.done.
type fakeCompositor struct {
	listener *net.UnixListener
	dir      string
}

func startFakeCompositor(t *testing.T, globals []protocol.RegistryGlobalEvent) *fakeCompositor {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "wayland-test")

	l, err := net.ListenUnix("unix", &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		t.Fatalf("ListenUnix: %v", err)
	}

	os.Setenv("XDG_RUNTIME_DIR", dir)
	os.Setenv("WAYLAND_DISPLAY", "wayland-test")

	fc := &fakeCompositor{listener: l, dir: dir}

	go fc.serveOne(t, globals)
	return fc
}

func (fc *fakeCompositor) serveOne(t *testing.T, globals []protocol.RegistryGlobalEvent) {
	conn, err := fc.listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()
	uc := conn.(*net.UnixConn)

	reader := wire.NewReader(uc)
	writer, err := wire.NewWriter(uc)
	if err != nil {
		t.Errorf("fake compositor NewWriter: %v", err)
		return
	}

	// get_registry: display (object 1), opcode 1, registry new_id is the
	// sole argument and becomes the registry's object id.
	hdr, payload, err := reader.ReadFrame()
	if err != nil || hdr.ObjectID != 1 || hdr.Opcode != 1 {
		t.Errorf("expected get_registry, got header=%+v err=%v", hdr, err)
		return
	}
	d := wire.NewDecoder(payload)
	registryID, _ := d.Uint32("registry")

	for _, g := range globals {
		e := wire.NewEncoder()
		e.PutUint32(g.Name)
		e.PutString(g.Interface)
		e.PutUint32(g.Version)
		frame, _ := e.Finish(registryID, 0)
		if err := writer.Send(frame, nil); err != nil {
			t.Errorf("sending global: %v", err)
			return
		}
	}

	// sync: display (object 1), opcode 0, callback new_id is the argument.
	hdr, payload, err = reader.ReadFrame()
	if err != nil || hdr.ObjectID != 1 || hdr.Opcode != 0 {
		t.Errorf("expected sync, got header=%+v err=%v", hdr, err)
		return
	}
	d = wire.NewDecoder(payload)
	callbackID, _ := d.Uint32("callback")

	e := wire.NewEncoder()
	e.PutUint32(0)
	frame, _ := e.Finish(callbackID, 0)
	if err := writer.Send(frame, nil); err != nil {
		t.Errorf("sending callback done: %v", err)
	}
}

func (fc *fakeCompositor) Close() { fc.listener.Close() }

type appState struct{ connected bool }

func TestConnectBindsRecognizedGlobals(t *testing.T) {
	fc := startFakeCompositor(t, []protocol.RegistryGlobalEvent{
		{Name: 1, Interface: "wl_compositor", Version: 4},
		{Name: 2, Interface: "wl_shm", Version: 1},
		{Name: 3, Interface: "wl_unknown_extension", Version: 1},
	})
	defer fc.Close()

	c, err := Connect(appState{connected: true})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer c.Close()

	if !c.State().connected {
		t.Fatal("state was not threaded through Connect")
	}
	if _, ok := c.globals["Compositor"]; !ok {
		t.Fatal("wl_compositor was not bound")
	}
	if _, ok := c.globals["Shm"]; !ok {
		t.Fatal("wl_shm was not bound")
	}
	if _, ok := c.globals["wl_unknown_extension"]; ok {
		t.Fatal("unrecognized global should not have been bound")
	}
}

func TestConnectRequiresBothEnvVars(t *testing.T) {
	old := os.Getenv("WAYLAND_DISPLAY")
	defer os.Setenv("WAYLAND_DISPLAY", old)
	os.Setenv("XDG_RUNTIME_DIR", t.TempDir())
	os.Unsetenv("WAYLAND_DISPLAY")

	if _, err := Connect(appState{}); err == nil {
		t.Fatal("expected an error when WAYLAND_DISPLAY is unset")
	}
}

func TestGetGlobalAfterConnect(t *testing.T) {
	fc := startFakeCompositor(t, []protocol.RegistryGlobalEvent{
		{Name: 1, Interface: "wl_compositor", Version: 4},
	})
	defer fc.Close()

	c, err := Connect(appState{})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer c.Close()

	compositor, err := GetGlobal[protocol.Compositor](c)
	if err != nil {
		t.Fatalf("GetGlobal: %v", err)
	}
	if compositor.ID() == 0 {
		t.Fatal("bound compositor has a zero id")
	}

	if _, err := GetGlobal[protocol.Shm](c); err == nil {
		t.Fatal("expected an error for an unbound global")
	}
}
