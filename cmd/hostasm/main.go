// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"iter"
	"log"
	"maps"
	"os"
	"strings"

	"github.com/hostasm/hostasm/asm"
	"github.com/hostasm/hostasm/internal"
	"github.com/hostasm/hostasm/manifest"
	"github.com/hostasm/hostasm/ops"
	"github.com/hostasm/hostasm/vm"
)

func main() {
	var machine string
	var output string
	var verbose bool
	defines := map[string]string{}

	flag.StringVar(&machine, "m", "", "machine.toml definition to apply")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Predefine an equate (NAME=VALUE)", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			value = "1"
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: Expected one program file, got: %v", os.Args[0], flag.Args())
	}
	program := flag.Arg(0)

	def := ops.Install(vm.NewDefinition())
	def.Verbose = verbose

	assembler := &asm.Assembler{Verbose: verbose}

	predefs := []iter.Seq2[string, string]{maps.All(defines)}
	if len(machine) != 0 {
		man, err := manifest.Load(machine)
		if err != nil {
			log.Fatalf("%v: %v", machine, err)
		}
		man.Apply(def)
		predefs = append([]iter.Seq2[string, string]{man.Defines()}, predefs...)
	}
	for equ, value := range internal.IterSeq2Concat(predefs...) {
		assembler.Predefine(equ, value)
	}

	if output == "-" {
		def.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		def.Output = ouf
	}

	inf, err := os.Open(program)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}
	defer inf.Close()

	tokens, err := assembler.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", program, err)
	}

	err = def.Run(tokens)
	if err != nil {
		log.Fatal(err)
	}
}
