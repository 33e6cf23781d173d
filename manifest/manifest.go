// Package manifest handles machine.toml definitions: the registers a
// host machine declares, and the equates predefined for the assembler.
package manifest

import (
	"errors"
	"iter"
	"maps"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/hostasm/hostasm/translate"
	"github.com/hostasm/hostasm/vm"
)

var f = translate.From

// Manifest represents a machine.toml definition.
type Manifest struct {
	Machine Machine           `toml:"machine"`
	Define  map[string]string `toml:"defines"`
}

// Machine describes the register file of a machine.
type Machine struct {
	Name      string   `toml:"name"`
	Registers []string `toml:"registers"`
}

// Load parses a machine.toml file.
func Load(path string) (man *Manifest, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(errors.New(f("cannot read %v", path)), err)
	}

	man = &Manifest{}
	if err = toml.Unmarshal(data, man); err != nil {
		return nil, errors.Join(errors.New(f("parse error in %v", path)), err)
	}

	return
}

// Apply declares the manifest's registers on def. Chainable.
func (man *Manifest) Apply(def *vm.Definition) *vm.Definition {
	for _, name := range man.Machine.Registers {
		def = def.Register(name)
	}

	return def
}

// Defines iterates the assembler predefines.
func (man *Manifest) Defines() iter.Seq2[string, string] {
	return maps.All(man.Define)
}
