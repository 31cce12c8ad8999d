package vm

// machine.go assembles the machine from its parts: registers, memory, and a
// running flag. This is the single piece of mutable state threaded through
// the loader and the executor; it lives on the LC3 value rather than in
// package-level arrays, so multiple machines can run independently.

import (
	"fmt"

	"github.com/hallicrake/lc3/internal/log"
)

// UserSpaceAddr is the conventional address at which user programs begin
// execution.
const UserSpaceAddr Word = 0x3000

// LC3 is a single invocation of the virtual machine: registers, memory, and
// the run flag that the HALT trap clears.
type LC3 struct {
	PC   Word         // Program counter: address of the next instruction to fetch.
	Cond Condition    // Condition code register: exactly one of N, Z, P.
	Reg  RegisterFile // General-purpose registers R0-R7.
	Mem  *Memory      // Memory bus.

	running bool

	log *log.Logger
}

// Option configures an LC3 at construction.
type Option func(*LC3)

// WithTerminal attaches a Terminal to the machine's memory bus so that
// KBSR reads and trap I/O reach a real console (or a test double).
func WithTerminal(term Terminal) Option {
	return func(vm *LC3) {
		vm.Mem.term = term
	}
}

// WithLogger overrides the machine's logger.
func WithLogger(logger *log.Logger) Option {
	return func(vm *LC3) {
		vm.log = logger
		vm.Mem.log = logger
	}
}

// New creates a machine ready to load images into. PC starts at the
// conventional user-program origin and COND starts ZRO.
func New(opts ...Option) *LC3 {
	vm := &LC3{
		PC:      UserSpaceAddr,
		Cond:    ConditionZero,
		Mem:     NewMemory(nil),
		running: true,
		log:     log.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(vm)
	}

	return vm
}

// Running reports whether the machine has not yet executed a HALT trap.
func (vm *LC3) Running() bool {
	return vm.running
}

// setcc sets COND from the sign of the value last written to a
// flag-setting instruction's destination register.
func (vm *LC3) setcc(w Word) {
	vm.Cond = ConditionOf(w)
}

func (vm *LC3) String() string {
	return fmt.Sprintf("PC: %s COND: %s\n%s", vm.PC, vm.Cond, vm.Reg)
}
