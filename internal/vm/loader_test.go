package vm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func image(origin uint16, words ...uint16) []byte {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.BigEndian, origin)

	for _, w := range words {
		_ = binary.Write(buf, binary.BigEndian, w)
	}

	return buf.Bytes()
}

func TestLoader_RoundTrip(t *testing.T) {
	t.Parallel()

	cpu := New()
	data := image(0x3000, 0x1020, 0x1041, 0xf025)

	origin, count, err := NewLoader(cpu).Load(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("load: %s", err)
	}

	if origin != 0x3000 {
		t.Fatalf("origin: want 0x3000, got %s", origin)
	}

	if count != 3 {
		t.Fatalf("count: want 3, got %d", count)
	}

	want := []Word{0x1020, 0x1041, 0xf025}
	for i, w := range want {
		if got := cpu.Mem.Read(origin + Word(i)); got != w {
			t.Errorf("word %d: want %s, got %s", i, w, got)
		}
	}
}

func TestLoader_TruncatedOrigin(t *testing.T) {
	t.Parallel()

	cpu := New()

	_, _, err := NewLoader(cpu).Load(bytes.NewReader([]byte{0x30}))
	if !errors.Is(err, ErrLoader) {
		t.Fatalf("want ErrLoader, got %v", err)
	}
}

func TestLoader_EmptyImage(t *testing.T) {
	t.Parallel()

	cpu := New()

	origin, count, err := NewLoader(cpu).Load(bytes.NewReader(image(0x3000)))
	if err != nil {
		t.Fatalf("load: %s", err)
	}

	if origin != 0x3000 || count != 0 {
		t.Fatalf("want origin 0x3000 count 0, got origin %s count %d", origin, count)
	}
}

func TestLoader_TrailingOddByte(t *testing.T) {
	t.Parallel()

	cpu := New()

	data := append(image(0x3000, 0x1020), 0xff)

	origin, count, err := NewLoader(cpu).Load(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("load: %s", err)
	}

	if origin != 0x3000 || count != 1 {
		t.Fatalf("want origin 0x3000 count 1, got origin %s count %d", origin, count)
	}
}

func TestLoader_SecondImageOverlays(t *testing.T) {
	t.Parallel()

	cpu := New()
	loader := NewLoader(cpu)

	if _, _, err := loader.Load(bytes.NewReader(image(0x3000, 0x1111, 0x2222))); err != nil {
		t.Fatalf("first load: %s", err)
	}

	if _, _, err := loader.Load(bytes.NewReader(image(0x3000, 0x3333))); err != nil {
		t.Fatalf("second load: %s", err)
	}

	if got := cpu.Mem.Read(0x3000); got != 0x3333 {
		t.Errorf("word 0: want 0x3333, got %s", got)
	}

	if got := cpu.Mem.Read(0x3001); got != 0x2222 {
		t.Errorf("word 1: want untouched 0x2222, got %s", got)
	}
}

func TestLoader_StopsAtAddressSpaceBoundary(t *testing.T) {
	t.Parallel()

	cpu := New()

	// origin near the top of the address space; only one word fits before
	// the space wraps, regardless of how many words the image supplies.
	data := image(0xffff, 0x1111, 0x2222, 0x3333)

	origin, count, err := NewLoader(cpu).Load(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("load: %s", err)
	}

	if origin != 0xffff {
		t.Fatalf("origin: want 0xffff, got %s", origin)
	}

	if count != 1 {
		t.Fatalf("count: want 1 (stopped at boundary), got %d", count)
	}

	if got := cpu.Mem.Read(0xffff); got != 0x1111 {
		t.Errorf("word at 0xffff: want 0x1111, got %s", got)
	}

	if got := cpu.Mem.Read(0x0000); got != 0 {
		t.Errorf("word 0: want untouched 0, got %s (wraparound overwrote low memory)", got)
	}
}
