package shm

import (
	"os"
	"testing"
)

func TestAllocTruncatesAndMaps(t *testing.T) {
	p, err := Alloc(4096)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer p.Close()

	if p.Len() != 4096 {
		t.Fatalf("Len() = %d, want 4096", p.Len())
	}

	data := p.Data()
	data[0] = 0xab
	data[4095] = 0xcd
	if p.Data()[0] != 0xab || p.Data()[4095] != 0xcd {
		t.Fatal("writes through Data() did not persist in the mapping")
	}
}

func TestAllocUnlinksImmediately(t *testing.T) {
	p, err := Alloc(64)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer p.Close()

	if _, err := os.Stat(p.file.Name()); !os.IsNotExist(err) {
		t.Fatalf("backing path %q should have been unlinked, stat err = %v", p.file.Name(), err)
	}
}

func TestResizeGrowsAndPreservesData(t *testing.T) {
	p, err := Alloc(64)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer p.Close()

	p.Data()[0] = 0x42
	if err := p.Resize(128); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if p.Len() != 128 {
		t.Fatalf("Len() after resize = %d, want 128", p.Len())
	}
	if p.Data()[0] != 0x42 {
		t.Fatal("data was not preserved across resize")
	}
}

func TestResizeRejectsShrink(t *testing.T) {
	p, err := Alloc(128)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	defer p.Close()

	if err := p.Resize(64); err == nil {
		t.Fatal("expected an error shrinking the pool")
	}
}

func TestAllocRejectsNonPositiveSize(t *testing.T) {
	if _, err := Alloc(0); err == nil {
		t.Fatal("expected an error for a zero-size pool")
	}
	if _, err := Alloc(-1); err == nil {
		t.Fatal("expected an error for a negative-size pool")
	}
}
