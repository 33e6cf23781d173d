package manifest

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hostasm/hostasm/vm"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "machine.toml")
	text := `
[machine]
name = "demo"
registers = ["R1", "R2"]

[defines]
LIMIT = "16"
`
	assert.NoError(os.WriteFile(path, []byte(text), 0o644))

	man, err := Load(path)
	assert.NoError(err)
	assert.Equal("demo", man.Machine.Name)
	assert.Equal([]string{"R1", "R2"}, man.Machine.Registers)

	def := man.Apply(vm.NewDefinition())
	value, err := def.Get("R2")
	assert.NoError(err)
	assert.Equal(vm.Word(0), value)

	defines := map[string]string{}
	for equ, val := range man.Defines() {
		defines[equ] = val
	}
	assert.Equal(map[string]string{"LIMIT": "16"}, defines)
}

func TestLoadMissing(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(err)

	// The underlying cause stays inspectable through the wrapper.
	assert.ErrorIs(err, fs.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "machine.toml")
	assert.NoError(os.WriteFile(path, []byte("[machine\n"), 0o644))

	_, err := Load(path)
	assert.Error(err)
}
