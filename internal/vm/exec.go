package vm

// exec.go drives the fetch-decode-execute cycle.

import (
	"context"
	"errors"
	"fmt"

	"github.com/hallicrake/lc3/internal/log"
)

// Step fetches, decodes, and executes a single instruction. PC is
// incremented exactly once, before the instruction's semantics are
// applied, so an instruction's own effects (BR, JSR, JMP, TRAP) see the
// address of the *following* instruction in PC.
func (vm *LC3) Step() error {
	if !vm.running {
		return ErrHalted
	}

	ir := Instruction(vm.Mem.Read(vm.PC))
	vm.PC++

	op := decode(ir)

	vm.log.Debug("exec", log.String("IR", ir.String()), log.String("OP", op.String()))

	if err := op.Execute(vm); err != nil {
		return fmt.Errorf("step: %w", err)
	}

	return nil
}

// Run executes instructions until the machine halts, an illegal instruction
// is encountered, or ctx is cancelled.
func (vm *LC3) Run(ctx context.Context) error {
	for vm.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := vm.Step(); err != nil {
			if errors.Is(err, ErrHalted) {
				return nil
			}

			return err
		}
	}

	return nil
}
