package wire

import (
	"errors"
	"strings"
	"testing"
)

func TestStringAlignment(t *testing.T) {
	for n := 0; n <= 10; n++ {
		s := strings.Repeat("x", n)
		e := NewEncoder()
		e.PutString(s)
		frame, _ := e.Finish(1, 0)

		want := HeaderSize + 4 + ((n + 1 + 3) &^ 3)
		if len(frame) != want {
			t.Fatalf("n=%d: encoded size = %d, want %d", n, len(frame), want)
		}

		d := NewDecoder(frame[HeaderSize:])
		got, err := d.String("s")
		if err != nil {
			t.Fatalf("n=%d: decode: %v", n, err)
		}
		if got != s {
			t.Fatalf("n=%d: got %q, want %q", n, got, s)
		}
		if d.Remaining() != 0 {
			t.Fatalf("n=%d: %d bytes left over after decode", n, d.Remaining())
		}
	}
}

func TestStringMissingBytes(t *testing.T) {
	e := NewEncoder()
	e.PutString("hello")
	frame, _ := e.Finish(1, 0)

	payload := frame[HeaderSize:]
	// Inflate the declared length beyond what's actually available.
	payload[0] = 0xff

	d := NewDecoder(payload)
	if _, err := d.String("s"); err == nil {
		t.Fatal("expected a missing-field error for an over-long declared length")
	}
}

func TestArrayRoundTrip(t *testing.T) {
	e := NewEncoder()
	e.PutArray([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	frame, _ := e.Finish(1, 0)

	d := NewDecoder(frame[HeaderSize:])
	got, err := d.Array("a")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d words, want 2", len(got))
	}
	if d.Remaining() != 0 {
		t.Fatalf("%d bytes left over after decode", d.Remaining())
	}
}

func TestArrayInvalidByteSize(t *testing.T) {
	e := NewEncoder()
	e.PutUint32(5) // declared size, not a multiple of 4
	frame, _ := e.Finish(1, 0)

	d := NewDecoder(frame[HeaderSize:])
	_, err := d.Array("a")
	var sizeErr *InvalidArrayByteSizeError
	if err == nil {
		t.Fatal("expected InvalidArrayByteSizeError")
	}
	if !errors.As(err, &sizeErr) {
		t.Fatalf("got %T, want *InvalidArrayByteSizeError", err)
	}
}

func TestUint32Int32RoundTrip(t *testing.T) {
	e := NewEncoder()
	e.PutUint32(42)
	e.PutInt32(-7)
	frame, _ := e.Finish(3, 1)

	if len(frame)%4 != 0 {
		t.Fatalf("frame length %d is not a multiple of 4", len(frame))
	}

	hdr := ParseHeader(frame[:HeaderSize])
	if hdr.ObjectID != 3 || hdr.Opcode != 1 || int(hdr.Length) != len(frame) {
		t.Fatalf("unexpected header: %+v", hdr)
	}

	d := NewDecoder(frame[HeaderSize:])
	u, err := d.Uint32("u")
	if err != nil || u != 42 {
		t.Fatalf("Uint32: got (%d, %v)", u, err)
	}
	i, err := d.Int32("i")
	if err != nil || i != -7 {
		t.Fatalf("Int32: got (%d, %v)", i, err)
	}
}
