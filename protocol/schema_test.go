package protocol

import "testing"

func TestValidateAcceptsTheBuiltInSchema(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestSchemasHaveUniqueGoNames(t *testing.T) {
	seen := make(map[string]string)
	for _, iface := range Schemas() {
		if prev, ok := seen[iface.GoName]; ok {
			t.Fatalf("GoName %q used by both %q and %q", iface.GoName, prev, iface.Name)
		}
		seen[iface.GoName] = iface.Name
	}
}

func TestValidateRejectsDuplicateOpcode(t *testing.T) {
	bad := Interface{
		Name: "test_iface",
		Requests: []Message{
			{Name: "a", Opcode: 0},
			{Name: "b", Opcode: 0},
		},
	}
	if err := validateMessages(bad.Name, "request", bad.Requests); err == nil {
		t.Fatal("expected an error for duplicate opcodes")
	}
}

func TestValidateRejectsFDInEvent(t *testing.T) {
	bad := Message{Name: "bogus", Opcode: 0, Args: []Arg{{Name: "fd", Type: ArgFD}}}
	if err := validateMessages("test_iface", "event", []Message{bad}); err == nil {
		t.Fatal("expected an error for a file descriptor argument in an event")
	}
}
