// Command wlgen reads protocol.Schemas() and regenerates
// protocol/zz_generated.go. It is invoked via go:generate from
// protocol/doc.go; nothing in the generated output should be hand-edited.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
	"unicode"

	"github.com/bnema/gowl/protocol"
)

func main() {
	out := flag.String("out", "protocol/zz_generated.go", "output path for the generated file")
	flag.Parse()

	if err := protocol.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "wlgen: invalid schema:", err)
		os.Exit(1)
	}

	src, err := render(protocol.Schemas())
	if err != nil {
		fmt.Fprintln(os.Stderr, "wlgen:", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "wlgen: writing", *out, ":", err)
		os.Exit(1)
	}
}

func render(schemas []protocol.Interface) ([]byte, error) {
	tmpl := template.Must(template.New("zz_generated").Funcs(funcs).Parse(fileTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, schemas); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w (source so far:\n%s)", err, buf.String())
	}
	return formatted, nil
}

var funcs = template.FuncMap{
	"eventStruct": eventStruct,
	"parser":      parserFunc,
	"requestFunc": requestFunc,
	"isBind": func(iface protocol.Interface, m protocol.Message) bool {
		return iface.Name == "wl_registry" && m.Name == "bind"
	},
}

// joinCase splits a snake_case wire name into segments and rejoins them as a
// Go identifier. Any segment spelled "id" is rendered as the acronym "ID",
// except when it is the leading segment of a camelCase (upperFirst == false)
// identifier, where it stays lowercase to match camelCase's own leading-word
// rule (objectID, but delete_id's lone "id" stays "id").
func joinCase(s string, upperFirst bool) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		isID := strings.EqualFold(p, "id")
		switch {
		case isID && (i > 0 || upperFirst):
			b.WriteString("ID")
		case i == 0 && !upperFirst:
			r := []rune(p)
			r[0] = unicode.ToLower(r[0])
			b.WriteString(string(r))
		default:
			r := []rune(p)
			r[0] = unicode.ToUpper(r[0])
			b.WriteString(string(r))
		}
	}
	return b.String()
}

// pascalCase turns a snake_case wire name into an exported Go identifier,
// e.g. "set_opaque_region" -> "SetOpaqueRegion", "delete_id" -> "DeleteID".
func pascalCase(s string) string { return joinCase(s, true) }

// camelCase turns a snake_case wire name into an unexported Go identifier,
// e.g. "app_id" -> "appID". "interface" is a reserved word, so it is
// special-cased to "iface" the one place the schema uses it
// (wl_registry.bind).
func camelCase(s string) string {
	c := joinCase(s, false)
	if c == "interface" {
		return "iface"
	}
	return c
}

// goArgType returns the Go type used for one wire argument, both in decoded
// event fields and in request method parameter lists. New-id and object
// arguments are plain uint32 at the wire boundary; allocation of the handle
// a new-id argument names is handled separately by requestFunc.
func goArgType(t protocol.ArgType) string {
	switch t {
	case protocol.ArgUint32, protocol.ArgNewID, protocol.ArgObject:
		return "uint32"
	case protocol.ArgInt32:
		return "int32"
	case protocol.ArgString:
		return "string"
	case protocol.ArgArray:
		return "[]uint32"
	case protocol.ArgFD:
		return "int"
	case protocol.ArgShmFormat:
		return "ShmFormat"
	default:
		return "interface{}"
	}
}

// decodeCall returns the wire.Decoder method call used to decode one
// argument's raw wire value. ArgShmFormat decodes as a plain uint32; the
// ShmFormat conversion happens where the decoded value is used, not here.
func decodeCall(a protocol.Arg) string {
	switch a.Type {
	case protocol.ArgUint32, protocol.ArgNewID, protocol.ArgObject, protocol.ArgShmFormat:
		return fmt.Sprintf("d.Uint32(%q)", a.Name)
	case protocol.ArgInt32:
		return fmt.Sprintf("d.Int32(%q)", a.Name)
	case protocol.ArgString:
		return fmt.Sprintf("d.String(%q)", a.Name)
	case protocol.ArgArray:
		return fmt.Sprintf("d.Array(%q)", a.Name)
	default:
		return fmt.Sprintf("/* unsupported arg %s */", a.Name)
	}
}

// fieldValue returns the expression that turns a decoded variable into the
// value stored in the event struct literal.
func fieldValue(a protocol.Arg, varName string) string {
	if a.Type == protocol.ArgShmFormat {
		return fmt.Sprintf("ShmFormat(%s)", varName)
	}
	return varName
}

// putCall returns the wire.Encoder method call used to encode one argument
// by name, for use inside a request's Send closure.
func putCall(a protocol.Arg, name string) string {
	switch a.Type {
	case protocol.ArgUint32, protocol.ArgNewID, protocol.ArgObject:
		return fmt.Sprintf("e.PutUint32(%s)", name)
	case protocol.ArgInt32:
		return fmt.Sprintf("e.PutInt32(%s)", name)
	case protocol.ArgString:
		return fmt.Sprintf("e.PutString(%s)", name)
	case protocol.ArgFD:
		return fmt.Sprintf("e.PutFD(%s)", name)
	case protocol.ArgShmFormat:
		return fmt.Sprintf("e.PutUint32(uint32(%s))", name)
	default:
		return fmt.Sprintf("/* unsupported arg %s */", name)
	}
}

// groupParams combines consecutive parameters that share a Go type into one
// parameter group, e.g. "x int32", "y int32" -> "x, y int32", matching
// zz_generated.go's style for requests like Surface.Damage.
func groupParams(names, types []string) []string {
	var groups []string
	i := 0
	for i < len(names) {
		j := i + 1
		for j < len(types) && types[j] == types[i] {
			j++
		}
		groups = append(groups, fmt.Sprintf("%s %s", strings.Join(names[i:j], ", "), types[i]))
		i = j
	}
	return groups
}

// newIDArg returns the message's ArgNewID argument, or nil if it has none.
// wl_registry.bind is handled as a hardcoded special case by the caller and
// never reaches the generic new-id branching this feeds.
func newIDArg(m protocol.Message) *protocol.Arg {
	for i := range m.Args {
		if m.Args[i].Type == protocol.ArgNewID {
			return &m.Args[i]
		}
	}
	return nil
}

// eventStruct renders the "is{Iface}Event" marker plus the event's struct
// type, matching zz_generated.go's style of collapsing zero- and one-field
// structs onto a single line.
func eventStruct(ifaceGoName string, m protocol.Message) string {
	typeName := ifaceGoName + pascalCase(m.Name) + "Event"
	var b strings.Builder
	switch len(m.Args) {
	case 0:
		fmt.Fprintf(&b, "type %s struct{}\n", typeName)
	case 1:
		fmt.Fprintf(&b, "type %s struct{ %s %s }\n", typeName, pascalCase(m.Args[0].Name), goArgType(m.Args[0].Type))
	default:
		fmt.Fprintf(&b, "type %s struct {\n", typeName)
		for _, a := range m.Args {
			fmt.Fprintf(&b, "\t%s %s\n", pascalCase(a.Name), goArgType(a.Type))
		}
		b.WriteString("}\n")
	}
	fmt.Fprintf(&b, "func (%s) is%sEvent() {}\n", typeName, ifaceGoName)
	return b.String()
}

// parserFunc renders parse{GoName}Event: a switch over opcode that decodes
// every declared argument in order, rejects leftover payload bytes with
// ExtraBytesError, and falls through to UnknownOpcodeError.
func parserFunc(iface protocol.Interface) string {
	var b strings.Builder
	if len(iface.Events) == 0 {
		fmt.Fprintf(&b, "func parse%sEvent(opcode uint16, _ []byte) (interface{}, error) {\n", iface.GoName)
		fmt.Fprintf(&b, "\treturn nil, &wire.UnknownOpcodeError{Interface: %q, Opcode: opcode}\n}\n", iface.Name)
		return b.String()
	}
	fmt.Fprintf(&b, "func parse%sEvent(opcode uint16, payload []byte) (interface{}, error) {\n", iface.GoName)
	b.WriteString("\td := wire.NewDecoder(payload)\n\tswitch opcode {\n")
	for _, m := range iface.Events {
		fmt.Fprintf(&b, "\tcase %d:\n", m.Opcode)
		var fields []string
		for _, a := range m.Args {
			v := camelCase(a.Name)
			fmt.Fprintf(&b, "\t\t%s, err := %s\n\t\tif err != nil {\n\t\t\treturn nil, err\n\t\t}\n", v, decodeCall(a))
			fields = append(fields, fmt.Sprintf("%s: %s", pascalCase(a.Name), fieldValue(a, v)))
		}
		b.WriteString("\t\tif d.Remaining() != 0 {\n\t\t\treturn nil, &wire.ExtraBytesError{Opcode: opcode, Extra: d.Remaining()}\n\t\t}\n")
		fmt.Fprintf(&b, "\t\treturn %s%sEvent{%s}, nil\n", iface.GoName, pascalCase(m.Name), strings.Join(fields, ", "))
	}
	fmt.Fprintf(&b, "\tdefault:\n\t\treturn nil, &wire.UnknownOpcodeError{Interface: %q, Opcode: opcode}\n\t}\n}\n", iface.Name)
	return b.String()
}

// requestFunc renders one request method on {GoName}. Requests with a
// new_id argument allocate the referenced object via conn.Allocate and
// return (ReturnType, error); every other request returns plain error.
// wl_registry.bind is handled separately by the caller: its new_id target
// interface is a runtime argument, not fixed by the schema, so it cannot be
// generated by this generic path.
func requestFunc(recvGoName string, m protocol.Message) string {
	nid := newIDArg(m)
	var names, types []string
	var encodeArgs []struct {
		arg  protocol.Arg
		expr string
	}
	for _, a := range m.Args {
		if nid != nil && a.Name == nid.Name {
			encodeArgs = append(encodeArgs, struct {
				arg  protocol.Arg
				expr string
			}{a, "id"})
			continue
		}
		name := camelCase(a.Name)
		names = append(names, name)
		types = append(types, goArgType(a.Type))
		encodeArgs = append(encodeArgs, struct {
			arg  protocol.Arg
			expr string
		}{a, name})
	}
	params := groupParams(names, types)

	var b strings.Builder
	if nid != nil {
		returnType := protocolGoName(nid.NewIDInterface)
		fmt.Fprintf(&b, "func (h %s) %s(%s) (%s, error) {\n", recvGoName, pascalCase(m.Name), strings.Join(params, ", "), returnType)
		fmt.Fprintf(&b, "\tid, err := h.conn.Allocate(%q, parse%sEvent)\n\tif err != nil {\n\t\treturn %s{}, err\n\t}\n", nid.NewIDInterface, returnType, returnType)
		if len(encodeArgs) == 1 {
			fmt.Fprintf(&b, "\tif err := h.conn.Send(h.id, %d, func(e *wire.Encoder) { %s }); err != nil {\n\t\treturn %s{}, err\n\t}\n",
				m.Opcode, putCall(encodeArgs[0].arg, encodeArgs[0].expr), returnType)
		} else {
			fmt.Fprintf(&b, "\terr = h.conn.Send(h.id, %d, func(e *wire.Encoder) {\n", m.Opcode)
			for _, ea := range encodeArgs {
				fmt.Fprintf(&b, "\t\t%s\n", putCall(ea.arg, ea.expr))
			}
			b.WriteString("\t})\n\tif err != nil {\n")
			fmt.Fprintf(&b, "\t\treturn %s{}, err\n\t}\n", returnType)
		}
		fmt.Fprintf(&b, "\treturn New%s(id, h.conn), nil\n}\n", returnType)
		return b.String()
	}

	fmt.Fprintf(&b, "func (h %s) %s(%s) error {\n", recvGoName, pascalCase(m.Name), strings.Join(params, ", "))
	switch len(encodeArgs) {
	case 0:
		fmt.Fprintf(&b, "\treturn h.conn.Send(h.id, %d, func(*wire.Encoder) {})\n}\n", m.Opcode)
	case 1:
		fmt.Fprintf(&b, "\treturn h.conn.Send(h.id, %d, func(e *wire.Encoder) { %s })\n}\n", m.Opcode, putCall(encodeArgs[0].arg, encodeArgs[0].expr))
	default:
		fmt.Fprintf(&b, "\treturn h.conn.Send(h.id, %d, func(e *wire.Encoder) {\n", m.Opcode)
		for _, ea := range encodeArgs {
			fmt.Fprintf(&b, "\t\t%s\n", putCall(ea.arg, ea.expr))
		}
		b.WriteString("\t})\n}\n")
	}
	return b.String()
}

// protocolGoName looks up the generated Go type name for a wire interface
// name, e.g. "wl_surface" -> "Surface". It panics on an unknown interface:
// that can only mean schema.go and this generator have drifted apart, which
// validateMessages should already have caught.
func protocolGoName(wireName string) string {
	for _, iface := range protocol.Schemas() {
		if iface.Name == wireName {
			return iface.GoName
		}
	}
	panic(fmt.Sprintf("wlgen: no interface named %q in Schemas()", wireName))
}

// fileTemplate emits one section per interface: its event sum type and
// parser, its handle struct, and one method per request (bind on
// wl_registry is hardcoded below since its new_id target interface is a
// runtime argument rather than schema data). Running `go run ./cmd/wlgen`
// reproduces protocol/zz_generated.go's decoding and request-dispatch
// behavior; only incidental formatting choices (one-line vs multi-line
// struct literals gofmt is indifferent to, local variable spelling) may
// differ from the hand-tuned checked-in copy.
const fileTemplate = `// Code generated by wlgen from protocol.Schemas(); DO NOT EDIT.

package protocol

import (
	"github.com/bnema/gowl/objects"
	"github.com/bnema/gowl/wire"
)
{{range $iface := .}}
// ---- {{$iface.Name}} ----
{{if $iface.Events}}
type {{$iface.GoName}}Event interface{ is{{$iface.GoName}}Event() }
{{range $iface.Events}}
{{eventStruct $iface.GoName .}}
{{end}}
{{end}}
{{parser $iface}}

type {{$iface.GoName}} struct {
	id   uint32
	conn Conn
}

func New{{$iface.GoName}}(id uint32, conn Conn) {{$iface.GoName}} { return {{$iface.GoName}}{id: id, conn: conn} }

func (h {{$iface.GoName}}) ID() uint32 { return h.id }
{{range $iface.Requests}}
{{if isBind $iface .}}
// Bind allocates a new object of the given wire interface/parser and sends
// a bind request atomically introducing it.
func (h Registry) Bind(name uint32, wireInterface string, version uint32, parser objects.Parser) (uint32, error) {
	id, err := h.conn.Allocate(wireInterface, parser)
	if err != nil {
		return 0, err
	}
	err = h.conn.Send(h.id, 0, func(e *wire.Encoder) {
		e.PutUint32(name)
		e.PutString(wireInterface)
		e.PutUint32(version)
		e.PutUint32(id)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
{{else}}
{{requestFunc $iface.GoName .}}
{{end}}
{{end}}
func init() {
	register("{{.GoName}}", func(id uint32, conn Conn) interface{} { return New{{.GoName}}(id, conn) })
}
{{end}}
// ParserFor returns the event parser for a recognized wire interface name,
// used by the bootstrap bind loop to hand objects.Manager.Allocate the right
// parser for each advertised global.
func ParserFor(wireInterface string) (objects.Parser, bool) {
	switch wireInterface {
{{range .}}	case "{{.Name}}":
		return parse{{.GoName}}Event, true
{{end}}	default:
		return nil, false
	}
}

// GoNameFor maps a recognized wire interface name to its generated Go type
// name, used by the bootstrap bind loop to populate the globals table.
func GoNameFor(wireInterface string) (string, bool) {
	for _, iface := range Schemas() {
		if iface.Name == wireInterface {
			return iface.GoName, true
		}
	}
	return "", false
}
`
