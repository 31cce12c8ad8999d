package vm

// words.go defines the basic data types the CPU operates on.

import (
	"fmt"
)

// Word is the base data type the machine operates on. Registers, memory
// cells, and instructions are all 16-bit values. Arithmetic on a Word wraps
// silently, modulo 2^16.
type Word uint16

func (w Word) String() string {
	return fmt.Sprintf("%0#4x", uint16(w))
}

// Sext sign-extends the lower n bits of w in place, interpreting those bits
// as a two's-complement value.
func (w *Word) Sext(n uint8) {
	s := 16 - n
	i := int16(*w)
	i <<= s
	i >>= s
	*w = Word(uint16(i))
}

// Zext zero-extends the lower n bits of w in place, clearing everything
// above bit n-1.
func (w *Word) Zext(n uint8) {
	var low Word = ^(0xffff << n)
	*w &= low
}

// GPR is the index of a general-purpose register.
type GPR uint8

// General-purpose registers, R0 through R7.
const (
	R0 = GPR(iota)
	R1
	R2
	R3
	R4
	R5
	R6
	R7

	NumGPR // Count of general-purpose registers.
)

func (r GPR) String() string {
	return fmt.Sprintf("R%d", uint8(r))
}

// RegisterFile holds the eight general-purpose registers.
type RegisterFile [NumGPR]Word

func (rf RegisterFile) String() string {
	return fmt.Sprintf(
		"R0: %s R1: %s R2: %s R3: %s\nR4: %s R5: %s R6: %s R7: %s",
		rf[R0], rf[R1], rf[R2], rf[R3], rf[R4], rf[R5], rf[R6], rf[R7],
	)
}

// Condition is the 3-bit NZP condition code register. Exactly one of the
// three flags is set at any reachable instruction boundary.
type Condition uint8

// Condition flags. Values match the bit positions used in branch
// instructions' NZP field, so a branch's operand can be tested directly
// against the COND register with a bitwise AND.
const (
	ConditionPositive Condition = 1 << 0 // P
	ConditionZero     Condition = 1 << 1 // Z
	ConditionNegative Condition = 1 << 2 // N
)

func (c Condition) String() string {
	return fmt.Sprintf("%03b (N:%t Z:%t P:%t)", uint8(c), c.Negative(), c.Zero(), c.Positive())
}

func (c Condition) Positive() bool { return c&ConditionPositive != 0 }
func (c Condition) Negative() bool { return c&ConditionNegative != 0 }
func (c Condition) Zero() bool     { return c&ConditionZero != 0 }

// ConditionOf returns the condition class of a register value under
// two's-complement interpretation: negative if the sign bit is set, zero if
// the value is zero, positive otherwise.
func ConditionOf(w Word) Condition {
	switch {
	case w == 0:
		return ConditionZero
	case w&0x8000 != 0:
		return ConditionNegative
	default:
		return ConditionPositive
	}
}
