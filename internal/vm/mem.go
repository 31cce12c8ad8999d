package vm

// mem.go is the machine's memory bus. It is the only path to memory: every
// load and store from the executor, the trap intrinsics, and the loader
// passes through it, which is what lets the KBSR polling hook stay local to
// one place instead of leaking into instruction semantics.

import (
	"github.com/hallicrake/lc3/internal/log"
)

// Addresses of the memory-mapped keyboard registers.
const (
	KBSRAddr Word = 0xfe00 // Keyboard status register.
	KBDRAddr Word = 0xfe02 // Keyboard data register.
)

// Bit set in KBSR when a character is available in KBDR.
const keyboardReady Word = 1 << 15

// AddrSpace is the size of the logical address space: 65,536 words.
const AddrSpace = 1 << 16

// Memory is the machine's memory bus: a flat array of 65,536 words. The two
// keyboard registers occupy their cells in that array, but a read of KBSR
// first polls the terminal adapter and rewrites KBSR (and KBDR, when a key
// is ready) before returning.
type Memory struct {
	cell [AddrSpace]Word
	term Terminal

	log *log.Logger
}

// NewMemory creates a memory bus. A nil terminal is replaced with a
// discardTerminal, so KBSR always reads as empty and output is dropped.
// This is what the core's tests rely on to run without a real console.
func NewMemory(term Terminal) *Memory {
	if term == nil {
		term = discardTerminal{}
	}

	return &Memory{
		term: term,
		log:  log.DefaultLogger(),
	}
}

// Read returns the word at addr. Reading KBSR polls the terminal: if a
// character is ready, it is deposited into KBDR and KBSR reads as 0x8000;
// otherwise KBSR reads as 0x0000. Reading KBDR directly returns whatever was
// last deposited there; callers are expected to test KBSR first.
func (m *Memory) Read(addr Word) Word {
	if addr == KBSRAddr {
		if m.term.CheckKey() {
			ch, err := m.term.ReadChar()
			if err == nil {
				m.cell[KBDRAddr] = Word(ch)
				m.cell[KBSRAddr] = keyboardReady

				return m.cell[KBSRAddr]
			}
		}

		m.cell[KBSRAddr] = 0x0000

		return m.cell[KBSRAddr]
	}

	return m.cell[addr]
}

// Write stores val at addr. Writes to KBSR/KBDR are permitted and behave as
// plain storage: a program that writes them is ill-behaved but not
// rejected.
func (m *Memory) Write(addr, val Word) {
	m.cell[addr] = val

	m.log.Debug("store", log.String("addr", addr.String()), log.String("val", val.String()))
}
