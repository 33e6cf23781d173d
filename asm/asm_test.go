// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hostasm/hostasm/vm"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)

	source := `
; set both registers, then combine them
mov [R1] 1
mov [R2] 1

add [R1] [R2] ; R1 now holds the sum
`

	asm := &Assembler{}
	tokens, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)

	expected := []vm.Token{
		vm.Instruction("mov"), vm.RegisterRef("R1"), vm.Literal(1), vm.End(),
		vm.Instruction("mov"), vm.RegisterRef("R2"), vm.Literal(1), vm.End(),
		vm.Instruction("add"), vm.RegisterRef("R1"), vm.RegisterRef("R2"), vm.End(),
	}
	assert.Equal(expected, tokens)
}

func TestParseNumbers(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		value  vm.Word
	}){
		{"decimal", "mov [R1] 10\n", 10},
		{"negative", "mov [R1] -3\n", -3},
		{"hex", "mov [R1] 0x1f\n", 31},
		{"octal", "mov [R1] 0o17\n", 15},
	}

	for _, entry := range table {
		asm := &Assembler{}
		tokens, err := asm.Parse(strings.NewReader(entry.source))
		assert.NoError(err, entry.name)
		if assert.Len(tokens, 4, entry.name) {
			assert.Equal(vm.Literal(entry.value), tokens[2], entry.name)
		}
	}
}

func TestParseEquates(t *testing.T) {
	assert := assert.New(t)

	source := ".equ LIMIT 0x10\nmov [R1] LIMIT\n"

	asm := &Assembler{}
	tokens, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)

	expected := []vm.Token{
		vm.Instruction("mov"), vm.RegisterRef("R1"), vm.Literal(16), vm.End(),
	}
	assert.Equal(expected, tokens)
}

func TestParsePredefines(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", "8")

	tokens, err := asm.Parse(strings.NewReader("mov [R1] BASE\n"))
	assert.NoError(err)
	if assert.Len(tokens, 4) {
		assert.Equal(vm.Literal(8), tokens[2])
	}
}

func TestParseExpressions(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", "8")

	tokens, err := asm.Parse(strings.NewReader("mov [R1] $(BASE * 2 + 1)\n"))
	assert.NoError(err)
	if assert.Len(tokens, 4) {
		assert.Equal(vm.Literal(17), tokens[2])
	}

	// LINENO tracks the line being assembled.
	asm = &Assembler{}
	tokens, err = asm.Parse(strings.NewReader("\nmov [R1] $(LINENO)\n"))
	assert.NoError(err)
	if assert.Len(tokens, 4) {
		assert.Equal(vm.Literal(2), tokens[2])
	}
}

func TestParseEmptyEquate(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("FOO", "")

	_, err := asm.Parse(strings.NewReader("mov [R1] FOO\n"))
	assert.ErrorIs(err, ErrParseValue(""))

	var syn *ErrSyntax
	if assert.ErrorAs(err, &syn) {
		assert.Equal(1, syn.LineNo)
	}
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		want   error
		lineno int
	}){
		{"bad word", "mov [R1] bogus\n", ErrParseValue("bogus"), 1},
		{"bad number", "mov [R1] 12q\n", ErrParseNumber("12q"), 1},
		{"equ syntax", ".equ ONLY\n", ErrEquateSyntax, 1},
		{"equ duplicate", ".equ A 1\n.equ A 2\n", ErrEquateDuplicate, 2},
		{"empty register", "mov []\n", ErrParseValue("[]"), 1},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(entry.source))
		assert.ErrorIs(err, entry.want, entry.name)

		var syn *ErrSyntax
		if assert.ErrorAs(err, &syn, entry.name) {
			assert.Equal(entry.lineno, syn.LineNo, entry.name)
		}
	}
}
