package protocol

import (
	"reflect"
	"testing"

	"github.com/bnema/gowl/wire"
)

func encodeFrame(objectID uint32, opcode uint16, build func(*wire.Encoder)) []byte {
	e := wire.NewEncoder()
	build(e)
	frame, _ := e.Finish(objectID, opcode)
	return frame
}

func TestParseRegistryGlobalEvent(t *testing.T) {
	frame := encodeFrame(2, 0, func(e *wire.Encoder) {
		e.PutUint32(1)
		e.PutString("wl_compositor")
		e.PutUint32(4)
	})
	ev, err := parseRegistryEvent(0, frame[wire.HeaderSize:])
	if err != nil {
		t.Fatalf("parseRegistryEvent: %v", err)
	}
	want := RegistryGlobalEvent{Name: 1, Interface: "wl_compositor", Version: 4}
	if !reflect.DeepEqual(ev, want) {
		t.Fatalf("got %+v, want %+v", ev, want)
	}
}

func TestParseToplevelConfigureEvent(t *testing.T) {
	frame := encodeFrame(9, 0, func(e *wire.Encoder) {
		e.PutInt32(800)
		e.PutInt32(600)
		e.PutArray([]byte{1, 0, 0, 0})
	})
	ev, err := parseToplevelEvent(0, frame[wire.HeaderSize:])
	if err != nil {
		t.Fatalf("parseToplevelEvent: %v", err)
	}
	cfg, ok := ev.(ToplevelConfigureEvent)
	if !ok {
		t.Fatalf("got %T, want ToplevelConfigureEvent", ev)
	}
	if cfg.Width != 800 || cfg.Height != 600 || len(cfg.States) != 1 || cfg.States[0] != 1 {
		t.Fatalf("unexpected configure event: %+v", cfg)
	}
}

func TestParseToplevelCloseEvent(t *testing.T) {
	frame := encodeFrame(9, 1, func(*wire.Encoder) {})
	ev, err := parseToplevelEvent(1, frame[wire.HeaderSize:])
	if err != nil {
		t.Fatalf("parseToplevelEvent: %v", err)
	}
	if _, ok := ev.(ToplevelCloseEvent); !ok {
		t.Fatalf("got %T, want ToplevelCloseEvent", ev)
	}
}

func TestParseEventRejectsExtraBytes(t *testing.T) {
	e := wire.NewEncoder()
	e.PutUint32(1)
	e.PutUint32(999) // extra word the done event doesn't declare
	frame, _ := e.Finish(5, 0)

	if _, err := parseCallbackEvent(0, frame[wire.HeaderSize:]); err == nil {
		t.Fatal("expected an ExtraBytesError for a trailing word")
	}
}

func TestParseEventRejectsUnknownOpcode(t *testing.T) {
	if _, err := parseBufferEvent(7, nil); err == nil {
		t.Fatal("expected an UnknownOpcodeError")
	} else if _, ok := err.(*wire.UnknownOpcodeError); !ok {
		t.Fatalf("got %T, want *wire.UnknownOpcodeError", err)
	}
}

func TestConstructAndGoNameForRoundTrip(t *testing.T) {
	goName, ok := GoNameFor("wl_surface")
	if !ok || goName != "Surface" {
		t.Fatalf("GoNameFor(wl_surface) = (%q, %v)", goName, ok)
	}

	v, ok := Construct(goName, 42, nil)
	if !ok {
		t.Fatal("Construct did not find a registered constructor for Surface")
	}
	surf, ok := v.(Surface)
	if !ok {
		t.Fatalf("Construct returned %T, want Surface", v)
	}
	if surf.ID() != 42 {
		t.Fatalf("ID() = %d, want 42", surf.ID())
	}
}

func TestParserForEveryRecognizedInterface(t *testing.T) {
	for _, iface := range Schemas() {
		if _, ok := ParserFor(iface.Name); !ok {
			t.Errorf("ParserFor(%q) = not found", iface.Name)
		}
	}
	if _, ok := ParserFor("wl_output"); ok {
		t.Fatal("ParserFor should reject an unrecognized interface")
	}
}
