package vm

import (
	"fmt"
)

// Word is the numeric domain of registers and literals.
type Word int64

// TokenKind tags the variants of a Token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_INSTRUCTION = TokenKind(0) // instruction
	TOKEN_REGISTER    = TokenKind(1) // register
	TOKEN_LITERAL     = TokenKind(2) // literal
	TOKEN_END         = TokenKind(3) // end
)

// Token is one unit of an executable program stream. Tokens are
// produced by an external collaborator (see the asm package) and
// consumed in order by Definition.Run; they are immutable once issued.
type Token struct {
	Kind  TokenKind
	Name  string // Opcode or register name (TOKEN_INSTRUCTION, TOKEN_REGISTER).
	Value Word   // Literal value (TOKEN_LITERAL).
}

// Instruction makes a token naming the handler to invoke.
func Instruction(name string) Token {
	return Token{Kind: TOKEN_INSTRUCTION, Name: name}
}

// RegisterRef makes a token referencing a declared register.
func RegisterRef(name string) Token {
	return Token{Kind: TOKEN_REGISTER, Name: name}
}

// Literal makes an immediate value token.
func Literal(value Word) Token {
	return Token{Kind: TOKEN_LITERAL, Value: value}
}

// End makes the token terminating one instruction's operand list.
func End() Token {
	return Token{Kind: TOKEN_END}
}

func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_INSTRUCTION:
		return tok.Name
	case TOKEN_REGISTER:
		return fmt.Sprintf("[%v]", tok.Name)
	case TOKEN_LITERAL:
		return fmt.Sprintf("%v", tok.Value)
	case TOKEN_END:
		return ";"
	}

	return fmt.Sprintf("?%v", int(tok.Kind))
}
