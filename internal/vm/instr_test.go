package vm

import "testing"

func TestInstruction_Fields(t *testing.T) {
	t.Parallel()

	ir := NewInstruction(ADD, 0x1<<9|0x2<<6|0x1<<5|0x1f)

	if op := ir.Opcode(); op != ADD {
		t.Errorf("Opcode: want ADD, got %s", op)
	}

	if dr := ir.DR(); dr != R1 {
		t.Errorf("DR: want R1, got %s", dr)
	}

	if sr1 := ir.SR1(); sr1 != R2 {
		t.Errorf("SR1: want R2, got %s", sr1)
	}

	if !ir.ImmMode() {
		t.Error("ImmMode: want true")
	}

	if imm := ir.Imm5(); imm != 0xffff {
		t.Errorf("Imm5: want -1 (0xffff), got %s", imm)
	}
}

func TestInstruction_JSRMode(t *testing.T) {
	t.Parallel()

	pcRelative := NewInstruction(JSR, 0x1<<11|0x3ff)
	if !pcRelative.JSRMode() {
		t.Error("JSRMode: want true for bit 11 set")
	}

	register := NewInstruction(JSR, 0x2<<6)
	if register.JSRMode() {
		t.Error("JSRMode: want false for bit 11 clear")
	}

	if baseR := register.BaseR(); baseR != R2 {
		t.Errorf("BaseR: want R2, got %s", baseR)
	}
}

func TestInstruction_TrapVector(t *testing.T) {
	t.Parallel()

	ir := NewInstruction(TRAP, 0x25)
	if v := ir.TrapVector(); v != TrapHALT {
		t.Errorf("TrapVector: want %s, got %s", TrapHALT, v)
	}
}

func TestSext_AllWidths(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		n        uint8
		in, want Word
	}{
		{5, 0x0f, 0x000f},  // positive, unaffected
		{5, 0x1f, 0xffff},  // -1 in 5 bits
		{5, 0x10, 0xfff0},  // -16 in 5 bits, most negative
		{9, 0x1ff, 0xffff}, // -1 in 9 bits
		{9, 0x100, 0xff00}, // -256 in 9 bits, most negative
		{11, 0x7ff, 0xffff},
		{16, 0xffff, 0xffff},
		{16, 0x7fff, 0x7fff},
	} {
		got := tc.in
		got.Sext(tc.n)

		if got != tc.want {
			t.Errorf("Sext(%d) of %s: want %s, got %s", tc.n, tc.in, tc.want, got)
		}
	}
}

func TestZext_TrapVectorField(t *testing.T) {
	t.Parallel()

	w := Word(0xff25)
	w.Zext(8)

	if w != 0x0025 {
		t.Errorf("Zext(8): want 0x0025, got %s", w)
	}
}

func TestConditionOf(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		w    Word
		want Condition
	}{
		{0x0000, ConditionZero},
		{0x0001, ConditionPositive},
		{0x7fff, ConditionPositive},
		{0x8000, ConditionNegative},
		{0xffff, ConditionNegative},
	} {
		if got := ConditionOf(tc.w); got != tc.want {
			t.Errorf("ConditionOf(%s): want %s, got %s", tc.w, tc.want, got)
		}
	}
}
