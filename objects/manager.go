// Package objects implements the client-side object table: ID allocation,
// interface typing, single-slot handler storage, and server-driven removal.
// Dispatch is single-threaded (see client.Client), so no locking is needed
// here; the design deliberately drops the sync.Map the teacher prototype
// used for this reason.
package objects

// MaxID is the highest object ID the client-allocated counter may reach.
// The display itself occupies ID 1, so allocation starts at 2.
const MaxID = 0xfeffffff

// DisplayID is the well-known object ID reserved for the display singleton.
const DisplayID uint32 = 1

// Parser turns an event opcode and its raw payload into a typed event value.
// Returning a non-nil error aborts dispatch of that frame.
type Parser func(opcode uint16, payload []byte) (interface{}, error)

// Handler processes one already-parsed event for an object.
type Handler func(event interface{})

type entry struct {
	interfaceName string
	parser        Parser
	handler       Handler
}

// Manager is the client-side object table described in spec.md §4.3.
type Manager struct {
	next    uint32
	entries map[uint32]*entry
}

// NewManager returns an empty table with the ID counter primed past the
// reserved display ID.
func NewManager() *Manager {
	return &Manager{next: DisplayID + 1, entries: make(map[uint32]*entry)}
}

// allocate records the interface and parser for the given id with an empty
// handler slot.
func (m *Manager) allocate(id uint32, interfaceName string, parser Parser) {
	m.entries[id] = &entry{interfaceName: interfaceName, parser: parser}
}

// Allocate draws the next counter value and inserts an entry for it.
func (m *Manager) Allocate(interfaceName string, parser Parser) (uint32, error) {
	if m.next > MaxID {
		return 0, ErrIDSpaceExhausted
	}
	id := m.next
	m.next++
	m.allocate(id, interfaceName, parser)
	return id, nil
}

// AllocateDisplay inserts the well-known display entry at ID 1. It must be
// called exactly once, before any other allocation, as part of bootstrap.
func (m *Manager) AllocateDisplay(interfaceName string, parser Parser) {
	m.allocate(DisplayID, interfaceName, parser)
}

// AddHandler installs handler in id's slot. It fails if id is unknown, if
// interfaceName doesn't match the entry's recorded tag, or if a handler is
// already installed.
func (m *Manager) AddHandler(id uint32, interfaceName string, handler Handler) error {
	e, ok := m.entries[id]
	if !ok {
		return &NoSuchObjectError{ID: id}
	}
	if e.interfaceName != interfaceName {
		return &InvalidInterfaceError{ID: id, Want: interfaceName, Got: e.interfaceName}
	}
	if e.handler != nil {
		return &HandlerAlreadyInPlaceError{ID: id}
	}
	e.handler = handler
	return nil
}

// RemoveHandler clears id's handler slot, if any.
func (m *Manager) RemoveHandler(id uint32) error {
	e, ok := m.entries[id]
	if !ok {
		return &NoSuchObjectError{ID: id}
	}
	e.handler = nil
	return nil
}

// Checkout is the re-entrant-safe handler fetch described in spec.md §4.3:
// it removes the handler from id's slot (leaving the entry itself in the
// table) and returns it alongside the interface name and parser, so dispatch
// can invoke the handler while the object table is mutated underneath it.
// The ok return is false if id is not in the table.
func (m *Manager) Checkout(id uint32) (interfaceName string, parser Parser, handler Handler, ok bool) {
	e, present := m.entries[id]
	if !present {
		return "", nil, nil, false
	}
	handler = e.handler
	e.handler = nil
	return e.interfaceName, e.parser, handler, true
}

// RemoveObject unconditionally erases id's entry, handler included.
func (m *Manager) RemoveObject(id uint32) {
	delete(m.entries, id)
}

// InterfaceOf reports the interface tag recorded for id, if it is still
// live.
func (m *Manager) InterfaceOf(id uint32) (string, bool) {
	e, ok := m.entries[id]
	if !ok {
		return "", false
	}
	return e.interfaceName, true
}

// Reinstall attempts to put handler back into id's slot after a dispatch
// call returns. Per spec.md §4.5, this silently fails — the more recent
// state wins — if the object was removed during the call or a new handler
// was installed during the call (e.g. by re-entrant code inside handler
// itself). It never returns an error: a failed reinstall is expected,
// routine behavior, not a fault.
func (m *Manager) Reinstall(id uint32, handler Handler) {
	if handler == nil {
		return
	}
	e, ok := m.entries[id]
	if !ok {
		return
	}
	if e.handler != nil {
		return
	}
	e.handler = handler
}
