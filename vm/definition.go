package vm

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"os"
	"slices"
	"strings"
)

// Handler is host-supplied behavior bound to an opcode name. The
// ordered operands for one invocation arrive in args; def is the
// Definition being run, giving the handler access to registers and to
// host-visible output. A non-nil return aborts the run.
type Handler func(def *Definition, args Args) error

// Definition is the single object a host constructs, configures, and
// executes. It owns the register store and the instruction table for
// its entire lifetime, and starts with neither: the engine has no
// builtins, so anything a program names must be declared first.
//
// A Definition may be run any number of times; registers carry their
// state across runs unless the host resets them. A Definition is not
// safe for concurrent use; hosts must serialize Run calls or build one
// Definition per goroutine.
type Definition struct {
	Verbose bool      // Set to enable verbose execution logging.
	Output  io.Writer // Host-visible output for handlers. Defaults to os.Stdout.

	registers    map[string]Word
	instructions map[string]Handler
}

// NewDefinition creates an empty definition.
func NewDefinition() (def *Definition) {
	def = &Definition{
		Output:       os.Stdout,
		registers:    map[string]Word{},
		instructions: map[string]Handler{},
	}

	return
}

// Register declares a register, initialized to zero. Re-declaring an
// existing register resets it to zero. Chainable.
func (def *Definition) Register(name string) *Definition {
	def.registers[name] = 0

	return def
}

// Instruction installs fn as the handler for the named opcode,
// replacing any prior handler under that name. Chainable.
func (def *Definition) Instruction(name string, fn Handler) *Definition {
	def.instructions[name] = fn

	return def
}

// Get reads a declared register.
func (def *Definition) Get(name string) (value Word, err error) {
	value, ok := def.registers[name]
	if !ok {
		err = ErrUnknownRegister(name)
	}

	return
}

// Set writes a declared register.
func (def *Definition) Set(name string, value Word) (err error) {
	if _, ok := def.registers[name]; !ok {
		err = ErrUnknownRegister(name)
		return
	}

	def.registers[name] = value

	return
}

// ResetRegisters resets every declared register to zero.
func (def *Definition) ResetRegisters() {
	for name := range def.registers {
		def.registers[name] = 0
	}
}

// Registers iterates the declared registers in name order.
func (def *Definition) Registers() iter.Seq2[string, Word] {
	return func(yield func(name string, value Word) bool) {
		for _, name := range slices.Sorted(maps.Keys(def.registers)) {
			if !yield(name, def.registers[name]) {
				return
			}
		}
	}
}

// Instructions iterates the installed opcode names in name order.
func (def *Definition) Instructions() iter.Seq[string] {
	return func(yield func(name string) bool) {
		for _, name := range slices.Sorted(maps.Keys(def.instructions)) {
			if !yield(name) {
				return
			}
		}
	}
}

// String returns the current register and instruction state as a string.
func (def *Definition) String() (text string) {
	for name, value := range def.Registers() {
		text += fmt.Sprintf("% 8s: %v\n", name, value)
	}

	text += fmt.Sprintf("% 8s: %v\n", "ops", strings.Join(slices.Collect(def.Instructions()), " "))

	return
}
