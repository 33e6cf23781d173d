// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package asm is a single pass line assembler producing vm token
// streams. It is the external collaborator the engine expects: the vm
// package never parses source text itself.
package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/hostasm/hostasm/vm"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler converts assembly text into a vm token stream.
//
// Grammar: one instruction per line. The first word is the opcode,
// each remaining word is an operand ([name] is a register reference,
// an integer is a literal), and the end of the line terminates the
// operand list. ';' starts a comment. '.equ NAME VALUE' defines an
// equate, and '$(...)' is evaluated at assembly time with integer
// equates in scope.
//
// The assembler validates nothing against a Definition; undeclared
// opcodes and registers surface when the stream is run.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate ahead of parsing.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// parenEval does assemble-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, _err := strconv.ParseInt(str, 0, 64)
		if _err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// parseLine expands $() evaluations and equates, and splits a line into words.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	return
}

// wordToken converts a single operand word into a vm token.
func (asm *Assembler) wordToken(word string) (tok vm.Token, err error) {
	if len(word) == 0 {
		// An equate may expand to the empty string.
		err = ErrParseValue(word)
		return
	}

	if strings.HasPrefix(word, "[") && strings.HasSuffix(word, "]") {
		name := word[1 : len(word)-1]
		if len(name) == 0 {
			err = ErrParseValue(word)
			return
		}
		tok = vm.RegisterRef(name)
		return
	}

	v64, _err := strconv.ParseInt(word, 0, 64)
	if _err != nil {
		if word[0] == '-' || (word[0] >= '0' && word[0] <= '9') {
			err = ErrParseNumber(word)
		} else {
			err = ErrParseValue(word)
		}
		return
	}
	tok = vm.Literal(vm.Word(v64))

	return
}

// Parse parses an input stream into a vm token stream.
func (asm *Assembler) Parse(input io.Reader) (tokens []vm.Token, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Equate = map[string]string{}
	for attr, val := range sysEquate {
		asm.Equate[attr] = val
	}
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		// no-op
		if len(words) == 0 {
			continue
		}

		tokens = append(tokens, vm.Instruction(words[0]))
		for _, word := range words[1:] {
			var tok vm.Token
			tok, err = asm.wordToken(word)
			if err != nil {
				return
			}
			tokens = append(tokens, tok)
		}
		tokens = append(tokens, vm.End())
	}
	err = scanner.Err()

	return
}
