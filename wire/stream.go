package wire

import (
	"errors"
	"fmt"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// ErrClosed is returned when a read yields zero bytes on an otherwise
// healthy connection, which this codec treats as a fatal closed-stream
// condition (spec: "a zero-byte read is treated as a fatal closed-stream
// condition").
var ErrClosed = errors.New("wire: connection closed (zero-byte read)")

// Reader reads length-prefixed frames off a stream socket through a
// reusable scratch buffer. The buffer only compacts (copies unread bytes to
// the front) when the tail doesn't have room for the next request; it never
// compacts on every read.
type Reader struct {
	conn       net.Conn
	buf        []byte
	head, tail int
}

func NewReader(conn net.Conn) *Reader {
	return &Reader{conn: conn, buf: make([]byte, 4096)}
}

func (r *Reader) cached() int { return r.tail - r.head }

func (r *Reader) readExact(n int) ([]byte, error) {
	if n > len(r.buf) {
		grown := make([]byte, n)
		copy(grown, r.buf[r.head:r.tail])
		r.tail = r.cached()
		r.head = 0
		r.buf = grown
	}
	if r.cached() < n {
		if r.cached()+(len(r.buf)-r.tail) < n {
			copy(r.buf, r.buf[r.head:r.tail])
			r.tail = r.cached()
			r.head = 0
		}
		for r.cached() < n {
			m, err := r.conn.Read(r.buf[r.tail:])
			if err != nil {
				return nil, err
			}
			if m == 0 {
				return nil, ErrClosed
			}
			r.tail += m
		}
	}
	out := r.buf[r.head : r.head+n]
	r.head += n
	return out, nil
}

// ReadFrame reads one full frame and returns its header and a private copy
// of its payload (safe to retain past the next ReadFrame call).
func (r *Reader) ReadFrame() (Header, []byte, error) {
	hb, err := r.readExact(HeaderSize)
	if err != nil {
		return Header{}, nil, err
	}
	hdr := ParseHeader(hb)
	if int(hdr.Length) < HeaderSize {
		return hdr, nil, fmt.Errorf("wire: frame length %d is shorter than the header", hdr.Length)
	}
	body, err := r.readExact(int(hdr.Length) - HeaderSize)
	if err != nil {
		return hdr, nil, err
	}
	payload := make([]byte, len(body))
	copy(payload, body)
	return hdr, payload, nil
}

// Writer sends complete, already-framed requests to the compositor,
// optionally attaching ancillary file descriptors. It is shared by every
// typed handle; §5 guarantees only one handler runs at a time so no locking
// is needed here.
type Writer struct {
	conn net.Conn
	raw  syscall.RawConn
}

func NewWriter(conn *net.UnixConn) (*Writer, error) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return nil, fmt.Errorf("wire: obtaining raw connection: %w", err)
	}
	return &Writer{conn: conn, raw: raw}, nil
}

// Send transmits frame, attaching fds as ancillary data when non-empty.
// Partial writes are reported as an error; the codec never retries.
func (w *Writer) Send(frame []byte, fds []int) error {
	if len(fds) == 0 {
		n, err := w.conn.Write(frame)
		if err != nil {
			return fmt.Errorf("wire: write: %w", err)
		}
		if n != len(frame) {
			return fmt.Errorf("wire: short write: sent %d of %d bytes", n, len(frame))
		}
		return nil
	}

	rights := unix.UnixRights(fds...)
	var sendErr error
	ctrlErr := w.raw.Write(func(fd uintptr) bool {
		n, err := unix.SendmsgN(int(fd), frame, rights, nil, 0)
		if err != nil {
			sendErr = fmt.Errorf("wire: sendmsg with %d fd(s): %w", len(fds), err)
			return true
		}
		if n != len(frame) {
			sendErr = fmt.Errorf("wire: short write with ancillary data: sent %d of %d bytes", n, len(frame))
			return true
		}
		return true
	})
	if ctrlErr != nil {
		return fmt.Errorf("wire: raw write: %w", ctrlErr)
	}
	return sendErr
}
