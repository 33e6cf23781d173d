package vm

import (
	"fmt"
)

// Operand is the resolved form of a token passed to a Handler: either a
// reference to a declared register, or an immediate literal. Operands
// are produced fresh for each invocation and are only valid for that
// invocation; handlers must not retain them across dispatches.
type Operand struct {
	def   *Definition // Owning definition; nil for immediates.
	name  string      // Referenced register name.
	value Word        // Immediate value.
}

// IsRegister returns true if the operand references a register.
func (op Operand) IsRegister() bool {
	return op.def != nil
}

// Name returns the referenced register name, or "" for an immediate.
func (op Operand) Name() string {
	return op.name
}

// Resolve reads the operand's current value. A register operand reads
// through the register store, so it observes mutations made by earlier
// instructions in the same run.
func (op Operand) Resolve() (value Word) {
	if op.def != nil {
		value = op.def.registers[op.name]
	} else {
		value = op.value
	}

	return
}

// Modify writes value through the operand into the register store.
// Immediates are never writable; the write fails with
// ErrOperandImmutable and mutates nothing.
func (op Operand) Modify(value Word) (err error) {
	if op.def == nil {
		err = ErrOperandImmutable
		return
	}

	op.def.registers[op.name] = value

	return
}

func (op Operand) String() string {
	if op.def != nil {
		return fmt.Sprintf("[%v]=%v", op.name, op.Resolve())
	}

	return fmt.Sprintf("%v", op.value)
}

// Args is the ordered operand list supplied to a Handler. Access beyond
// the supplied count reports ErrOperandIndex, never a panic.
type Args []Operand

// Len returns the number of supplied operands.
func (args Args) Len() int {
	return len(args)
}

// At returns operand n.
func (args Args) At(n int) (op Operand, err error) {
	if n < 0 || n >= len(args) {
		err = ErrOperandIndex(n)
		return
	}

	op = args[n]

	return
}

// ResolveAt reads the value of operand n.
func (args Args) ResolveAt(n int) (value Word, err error) {
	op, err := args.At(n)
	if err != nil {
		return
	}

	value = op.Resolve()

	return
}

// ModifyAt writes value through operand n.
func (args Args) ModifyAt(n int, value Word) (err error) {
	op, err := args.At(n)
	if err != nil {
		return
	}

	err = op.Modify(value)

	return
}
