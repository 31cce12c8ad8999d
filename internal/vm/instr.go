package vm

// instr.go decodes the wire format of an instruction word: bit fields and
// sign extension only. Semantic effects live in ops.go.

import (
	"fmt"
)

// Opcode identifies the operation encoded in the top 4 bits of an
// instruction word. The ISA has fifteen live opcodes and one reserved value.
type Opcode uint8

// Opcode constants, in the order the LC-3 ISA assigns them.
const (
	BR Opcode = iota
	ADD
	LD
	ST
	JSR
	AND
	LDR
	STR
	RTI
	NOT
	LDI
	STI
	JMP
	RES
	LEA
	TRAP
)

func (op Opcode) String() string {
	switch op {
	case BR:
		return "BR"
	case ADD:
		return "ADD"
	case LD:
		return "LD"
	case ST:
		return "ST"
	case JSR:
		return "JSR"
	case AND:
		return "AND"
	case LDR:
		return "LDR"
	case STR:
		return "STR"
	case RTI:
		return "RTI"
	case NOT:
		return "NOT"
	case LDI:
		return "LDI"
	case STI:
		return "STI"
	case JMP:
		return "JMP"
	case RES:
		return "RES"
	case LEA:
		return "LEA"
	case TRAP:
		return "TRAP"
	default:
		return fmt.Sprintf("OP(%#x)", uint8(op))
	}
}

// Instruction is a fetched instruction word, ready to be decoded.
type Instruction Word

func (i Instruction) String() string {
	return fmt.Sprintf("%s (%s)", Word(i), i.Opcode())
}

// Opcode returns the instruction's opcode, bits [15:12].
func (i Instruction) Opcode() Opcode {
	return Opcode(i >> 12 & 0xf)
}

// DR returns the destination register field, bits [11:9].
func (i Instruction) DR() GPR {
	return GPR(i >> 9 & 0x7)
}

// SR returns the source register field, bits [11:9]. Same bits as DR; named
// differently at call sites for readability.
func (i Instruction) SR() GPR {
	return GPR(i >> 9 & 0x7)
}

// SR1 returns the first source register operand, bits [8:6].
func (i Instruction) SR1() GPR {
	return GPR(i >> 6 & 0x7)
}

// BaseR returns the base register operand, bits [8:6]. Same bits as SR1;
// named differently at call sites for readability.
func (i Instruction) BaseR() GPR {
	return GPR(i >> 6 & 0x7)
}

// SR2 returns the second source register operand, bits [2:0].
func (i Instruction) SR2() GPR {
	return GPR(i & 0x7)
}

// ImmMode returns true if bit 5 (the immediate-mode flag) is set, as in the
// ADD and AND instructions.
func (i Instruction) ImmMode() bool {
	return i&0x0020 != 0
}

// JSRMode returns true if bit 11 is set, selecting the PC-relative form of
// JSR over the register-indirect form (JSRR).
func (i Instruction) JSRMode() bool {
	return i&0x0800 != 0
}

// NZP returns the branch condition field, bits [11:9].
func (i Instruction) NZP() Condition {
	return Condition(i >> 9 & 0x7)
}

// Offset sign-extends the low n bits of the instruction to a 16-bit value.
func (i Instruction) Offset(n uint8) Word {
	w := Word(i)
	w.Sext(n)

	return w
}

// Imm5 sign-extends the low 5 bits of the instruction, the ADD/AND
// immediate operand.
func (i Instruction) Imm5() Word {
	return i.Offset(5)
}

// TrapVector zero-extends the low 8 bits of the instruction, the TRAP
// vector field.
func (i Instruction) TrapVector() Word {
	w := Word(i)
	w.Zext(8)

	return w
}

// NewInstruction assembles an instruction word from an opcode and a 12-bit
// operand field. It is used by tests to construct instructions without
// hand-computing bit patterns.
func NewInstruction(op Opcode, operands uint16) Instruction {
	return Instruction(uint16(op)<<12 | operands&0x0fff)
}
