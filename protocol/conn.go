package protocol

import (
	"github.com/bnema/gowl/objects"
	"github.com/bnema/gowl/wire"
)

// Conn is the surface a generated handle needs from the client core: it
// allocates new objects in the table and encodes+sends already-targeted
// requests. client.Client implements this.
type Conn interface {
	Allocate(interfaceName string, parser objects.Parser) (uint32, error)
	Send(objectID uint32, opcode uint16, build func(*wire.Encoder)) error
}

// byGoName backs the reflection-keyed constructor lookup used by the
// client package's generic GetGlobal/GetReference/NewObject helpers: each
// generated handle type registers itself here under its exported Go name.
var byGoName = make(map[string]func(id uint32, conn Conn) interface{}, 16)

func register(goName string, ctor func(id uint32, conn Conn) interface{}) {
	byGoName[goName] = ctor
}

// Construct builds the handle registered under goName, or reports ok=false
// if no handle type registered that name.
func Construct(goName string, id uint32, conn Conn) (interface{}, bool) {
	ctor, ok := byGoName[goName]
	if !ok {
		return nil, false
	}
	return ctor(id, conn), true
}

// WireNameFor maps a generated Go type name back to its wire interface
// name, the inverse of GoNameFor.
func WireNameFor(goName string) (string, bool) {
	for _, iface := range Schemas() {
		if iface.GoName == goName {
			return iface.Name, true
		}
	}
	return "", false
}
