// Package ops provides a small reference instruction set for hosts
// that want one. The engine itself has no builtins: installing this set
// is an ordinary host declaration, and a host may override any of its
// opcodes by re-declaring them.
package ops

import (
	"fmt"
	"strings"

	"github.com/hostasm/hostasm/vm"
)

// Install declares the reference instruction set on def. Chainable.
func Install(def *vm.Definition) *vm.Definition {
	return def.
		Instruction("mov", Mov).
		Instruction("add", Add).
		Instruction("sub", Sub).
		Instruction("mul", Mul).
		Instruction("out", Out).
		Instruction("dump", Dump)
}

// Mov writes operand 1's value into operand 0.
func Mov(def *vm.Definition, args vm.Args) (err error) {
	value, err := args.ResolveAt(1)
	if err != nil {
		return
	}

	err = args.ModifyAt(0, value)

	return
}

// binary combines operands 0 and 1 and writes the result into operand 0.
func binary(args vm.Args, fn func(a, b vm.Word) vm.Word) (err error) {
	a, err := args.ResolveAt(0)
	if err != nil {
		return
	}
	b, err := args.ResolveAt(1)
	if err != nil {
		return
	}

	err = args.ModifyAt(0, fn(a, b))

	return
}

// Add writes operand0 + operand1 into operand 0.
func Add(def *vm.Definition, args vm.Args) (err error) {
	return binary(args, func(a, b vm.Word) vm.Word { return a + b })
}

// Sub writes operand0 - operand1 into operand 0.
func Sub(def *vm.Definition, args vm.Args) (err error) {
	return binary(args, func(a, b vm.Word) vm.Word { return a - b })
}

// Mul writes operand0 * operand1 into operand 0.
func Mul(def *vm.Definition, args vm.Args) (err error) {
	return binary(args, func(a, b vm.Word) vm.Word { return a * b })
}

// Out prints the resolved operands to the definition's output, space
// separated, one line per invocation.
func Out(def *vm.Definition, args vm.Args) (err error) {
	strs := make([]string, 0, args.Len())
	for n := range args.Len() {
		var value vm.Word
		value, err = args.ResolveAt(n)
		if err != nil {
			return
		}
		strs = append(strs, fmt.Sprintf("%v", value))
	}

	_, err = fmt.Fprintln(def.Output, strings.Join(strs, " "))

	return
}

// Dump prints the definition's register and instruction state to its output.
func Dump(def *vm.Definition, args vm.Args) (err error) {
	_, err = fmt.Fprint(def.Output, def.String())

	return
}
