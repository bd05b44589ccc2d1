package wire

import (
	"net"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestReaderConcatenatedFrames(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	e1 := NewEncoder()
	e1.PutUint32(7)
	f1, _ := e1.Finish(1, 0)

	e2 := NewEncoder()
	e2.PutString("hi")
	f2, _ := e2.Finish(2, 3)

	both := append(append([]byte{}, f1...), f2...)

	go func() {
		// Dribble bytes out in small, arbitrary chunks to exercise the
		// scratch-buffer compaction path regardless of how reads split.
		for i := 0; i < len(both); i += 3 {
			end := i + 3
			if end > len(both) {
				end = len(both)
			}
			server.Write(both[i:end])
		}
	}()

	r := NewReader(client)

	hdr1, body1, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("first frame: %v", err)
	}
	if hdr1.ObjectID != 1 || hdr1.Opcode != 0 {
		t.Fatalf("unexpected first header: %+v", hdr1)
	}
	d1 := NewDecoder(body1)
	if v, _ := d1.Uint32("v"); v != 7 {
		t.Fatalf("first frame payload = %d, want 7", v)
	}

	hdr2, body2, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("second frame: %v", err)
	}
	if hdr2.ObjectID != 2 || hdr2.Opcode != 3 {
		t.Fatalf("unexpected second header: %+v", hdr2)
	}
	d2 := NewDecoder(body2)
	if s, _ := d2.String("s"); s != "hi" {
		t.Fatalf("second frame payload = %q, want %q", s, "hi")
	}
}

func TestReaderZeroByteReadIsFatal(t *testing.T) {
	server, client := net.Pipe()
	server.Close() // closing the peer makes Read return io.EOF or 0,nil depending on impl
	defer client.Close()

	r := NewReader(client)
	if _, _, err := r.ReadFrame(); err == nil {
		t.Fatal("expected an error reading from a closed peer")
	}
}

func unixSocketPair(t *testing.T) (*net.UnixConn, *net.UnixConn) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		t.Fatalf("socketpair: %v", err)
	}
	f0 := os.NewFile(uintptr(fds[0]), "sp0")
	f1 := os.NewFile(uintptr(fds[1]), "sp1")
	c0, err := net.FileConn(f0)
	if err != nil {
		t.Fatalf("FileConn: %v", err)
	}
	c1, err := net.FileConn(f1)
	if err != nil {
		t.Fatalf("FileConn: %v", err)
	}
	f0.Close()
	f1.Close()
	return c0.(*net.UnixConn), c1.(*net.UnixConn)
}

func TestWriterSendsAncillaryFD(t *testing.T) {
	a, b := unixSocketPair(t)
	defer a.Close()
	defer b.Close()

	w, err := NewWriter(a)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	tmp, err := os.CreateTemp("", "gowl-fd-test")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	e := NewEncoder()
	e.PutUint32(4096)
	e.PutFD(int(tmp.Fd()))
	frame, fds := e.Finish(9, 0)

	if err := w.Send(frame, fds); err != nil {
		t.Fatalf("Send: %v", err)
	}

	raw, err := b.SyscallConn()
	if err != nil {
		t.Fatalf("SyscallConn: %v", err)
	}

	buf := make([]byte, 64)
	oob := make([]byte, 64)
	var n, oobn int
	var rerr error
	if err := raw.Read(func(fd uintptr) bool {
		n, oobn, _, _, rerr = unix.Recvmsg(int(fd), buf, oob, 0)
		return true
	}); err != nil {
		t.Fatalf("raw read: %v", err)
	}
	if rerr != nil {
		t.Fatalf("recvmsg: %v", rerr)
	}
	if n != len(frame) {
		t.Fatalf("received %d bytes, want %d", n, len(frame))
	}

	scms, err := unix.ParseSocketControlMessage(oob[:oobn])
	if err != nil || len(scms) == 0 {
		t.Fatalf("ParseSocketControlMessage: %v (n=%d)", err, len(scms))
	}
	gotFDs, err := unix.ParseUnixRights(&scms[0])
	if err != nil || len(gotFDs) != 1 {
		t.Fatalf("ParseUnixRights: %v, fds=%v", err, gotFDs)
	}
	for _, fd := range gotFDs {
		unix.Close(fd)
	}
}
