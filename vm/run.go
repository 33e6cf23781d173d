// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package vm

import (
	"errors"
	"log"
)

// Run executes a token stream against the definition's current
// register and instruction state.
//
// The stream is consumed strictly in order. Each instruction token
// opens an invocation; register and literal tokens are resolved into
// operands as they are collected; the end token dispatches the
// invocation to the installed handler. An instruction's full effects
// (register mutation, handler output) are committed before the next
// instruction's operands resolve. An empty stream is a successful run.
//
// Run is fail-fast: the first failure aborts the remainder of the
// stream and is returned wrapped in *ErrRun, which records the opcode
// and the token position where execution stopped. Mutations already
// applied by prior, completed instructions are not rolled back.
func (def *Definition) Run(tokens []Token) (err error) {
	var opcode string
	var args Args
	collecting := false
	pos := 0

	defer func() {
		if err != nil {
			err = &ErrRun{Opcode: opcode, Position: pos, Err: err}
		}
	}()

	for n, tok := range tokens {
		pos = n

		if !collecting {
			if tok.Kind != TOKEN_INSTRUCTION {
				err = ErrUnexpectedToken
				return
			}
			opcode = tok.Name
			collecting = true
			args = nil
			continue
		}

		switch tok.Kind {
		case TOKEN_REGISTER:
			if _, ok := def.registers[tok.Name]; !ok {
				err = ErrUnknownRegister(tok.Name)
				return
			}
			args = append(args, Operand{def: def, name: tok.Name})
		case TOKEN_LITERAL:
			args = append(args, Operand{value: tok.Value})
		case TOKEN_END:
			fn, ok := def.instructions[opcode]
			if !ok {
				err = ErrUnknownInstruction(opcode)
				return
			}
			if def.Verbose {
				log.Printf("run: %v %v", opcode, args)
			}
			err = fn(def, args)
			if err != nil {
				// The operand access guard is an engine failure, not a
				// handler one; everything else a handler returns is its
				// own opaque payload.
				var oob ErrOperandIndex
				if !errors.As(err, &oob) {
					err = &ErrHandler{Opcode: opcode, Err: err}
				}
				return
			}
			collecting = false
			opcode = ""
			args = nil
		default:
			// An instruction token, or an unknown kind, inside an
			// operand list.
			err = ErrUnexpectedToken
			return
		}
	}

	if collecting {
		pos = len(tokens)
		err = ErrMissingEnd
	}

	return
}
