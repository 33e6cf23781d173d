package vm

import (
	"errors"

	"github.com/hostasm/hostasm/translate"
)

var f = translate.From

var (
	// Executor errors
	ErrUnexpectedToken = errors.New(f("token out of place"))
	ErrMissingEnd      = errors.New(f("missing end of expression"))

	// Operand errors
	ErrOperandImmutable = errors.New(f("operand not writable"))
)

// ErrUnknownRegister reports a register reference that was never declared.
type ErrUnknownRegister string

func (err ErrUnknownRegister) Error() string {
	return f("register '%v' not declared", string(err))
}

// ErrUnknownInstruction reports an opcode with no installed handler.
type ErrUnknownInstruction string

func (err ErrUnknownInstruction) Error() string {
	return f("instruction '%v' not declared", string(err))
}

// ErrOperandIndex reports a handler access past the end of the supplied operands.
type ErrOperandIndex int

func (err ErrOperandIndex) Error() string {
	return f("operand %d not supplied", int(err))
}

// ErrHandler wraps a failure reported by a host-supplied handler.
type ErrHandler struct {
	Opcode string
	Err    error
}

func (err *ErrHandler) Error() string {
	return f("%v: %v", err.Opcode, err.Err)
}

func (err *ErrHandler) Unwrap() error {
	return err.Err
}

// ErrRun reports where a run stopped: the opcode being dispatched
// (empty while scanning for one) and the index of the offending token.
type ErrRun struct {
	Opcode   string
	Position int
	Err      error
}

func (err *ErrRun) Error() string {
	if len(err.Opcode) == 0 {
		return f("token %d: %v", err.Position, err.Err)
	}

	return f("token %d (%v): %v", err.Position, err.Opcode, err.Err)
}

func (err *ErrRun) Unwrap() error {
	return err.Err
}
