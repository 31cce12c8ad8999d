package vm

// traps.go implements the trap service routines as VM intrinsics rather than
// resident service routine code: there is no trap vector table in memory to
// jump through. Each vector is a small Go function called directly from the
// TRAP opcode's Execute.

import (
	"fmt"
)

// Trap vectors.
const (
	TrapGETC  Word = 0x20
	TrapOUT   Word = 0x21
	TrapPUTS  Word = 0x22
	TrapIN    Word = 0x23
	TrapPUTSP Word = 0x24
	TrapHALT  Word = 0x25
)

// trap dispatches on a trap vector. R7 has already been set to the return
// address by the caller (the TRAP opcode's Execute) before trap is called.
func (vm *LC3) trap(vector Word) error {
	switch vector {
	case TrapGETC:
		return vm.trapGETC()
	case TrapOUT:
		return vm.trapOUT()
	case TrapPUTS:
		return vm.trapPUTS()
	case TrapIN:
		return vm.trapIN()
	case TrapPUTSP:
		return vm.trapPUTSP()
	case TrapHALT:
		return vm.trapHALT()
	default:
		return &FaultError{Opcode: TRAP, Vector: vector, PC: vm.PC}
	}
}

// GETC reads one character from the terminal without echo, placing its low
// byte in R0 with the high byte cleared, and sets condition flags on R0.
func (vm *LC3) trapGETC() error {
	ch, err := vm.Mem.term.ReadChar()
	if err != nil {
		return err
	}

	vm.Reg[R0] = Word(ch)
	vm.setcc(vm.Reg[R0])

	return nil
}

// OUT writes the low byte of R0 to the terminal and flushes.
func (vm *LC3) trapOUT() error {
	if err := vm.Mem.term.WriteChar(byte(vm.Reg[R0])); err != nil {
		return err
	}

	return vm.Mem.term.Flush()
}

// PUTS emits the low byte of each word starting at the address in R0,
// one word per character, until a zero word is reached.
func (vm *LC3) trapPUTS() error {
	addr := vm.Reg[R0]

	for {
		w := vm.Mem.Read(addr)
		if w == 0 {
			break
		}

		if err := vm.Mem.term.WriteChar(byte(w)); err != nil {
			return err
		}

		addr++
	}

	return vm.Mem.term.Flush()
}

// IN prompts, reads and echoes one character, and stores it in R0,
// setting condition flags on R0.
func (vm *LC3) trapIN() error {
	for _, c := range "Enter a character: " {
		if err := vm.Mem.term.WriteChar(byte(c)); err != nil {
			return err
		}
	}

	if err := vm.Mem.term.Flush(); err != nil {
		return err
	}

	ch, err := vm.Mem.term.ReadChar()
	if err != nil {
		return err
	}

	if err := vm.Mem.term.WriteChar(ch); err != nil {
		return err
	}

	if err := vm.Mem.term.Flush(); err != nil {
		return err
	}

	vm.Reg[R0] = Word(ch)
	vm.setcc(vm.Reg[R0])

	return nil
}

// PUTSP emits two characters per word starting at the address in R0, low
// byte first then high byte, stopping at a zero word. If a word's low byte
// is nonzero but its high byte is zero, the low byte is emitted and
// iteration ends without emitting the high byte.
func (vm *LC3) trapPUTSP() error {
	addr := vm.Reg[R0]

	for {
		w := vm.Mem.Read(addr)
		if w == 0 {
			break
		}

		lo := byte(w & 0x00ff)
		hi := byte(w >> 8)

		if err := vm.Mem.term.WriteChar(lo); err != nil {
			return err
		}

		if hi == 0 {
			break
		}

		if err := vm.Mem.term.WriteChar(hi); err != nil {
			return err
		}

		addr++
	}

	return vm.Mem.term.Flush()
}

// HALT prints a banner, flushes, and stops the fetch-execute loop.
func (vm *LC3) trapHALT() error {
	for _, c := range "HALT\n" {
		if err := vm.Mem.term.WriteChar(byte(c)); err != nil {
			return err
		}
	}

	if err := vm.Mem.term.Flush(); err != nil {
		return err
	}

	vm.running = false

	return nil
}

func (v Word) trapName() string {
	switch v {
	case TrapGETC:
		return "GETC"
	case TrapOUT:
		return "OUT"
	case TrapPUTS:
		return "PUTS"
	case TrapIN:
		return "IN"
	case TrapPUTSP:
		return "PUTSP"
	case TrapHALT:
		return "HALT"
	default:
		return fmt.Sprintf("TRAP(%#x)", uint16(v))
	}
}
