// Package vm implements an embeddable, zero-builtin instruction engine.
//
// The host declares every register and installs every instruction
// handler on a Definition; the engine supplies only the execution
// machinery: operand resolution, dispatch, and register mutation. There
// is no program counter and no jump, loop, or branch primitive; a token
// stream runs front to back and stops at the first failure.
//
// Producing the token stream from source text is a collaborator's job,
// not the engine's; see the asm package for one such collaborator.
package vm
