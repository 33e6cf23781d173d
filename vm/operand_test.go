package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperandImmediate(t *testing.T) {
	assert := assert.New(t)

	def := NewDefinition().Register("R1")
	def.Instruction("grab", func(def *Definition, args Args) (err error) {
		op, err := args.At(0)
		if err != nil {
			return
		}

		assert.False(op.IsRegister())
		assert.Equal("", op.Name())
		assert.Equal(Word(5), op.Resolve())

		// Immediates never accept a write, and nothing changes.
		assert.ErrorIs(op.Modify(9), ErrOperandImmutable)
		assert.Equal(Word(5), op.Resolve())

		return
	})

	assert.NoError(def.Run([]Token{Instruction("grab"), Literal(5), End()}))

	value, err := def.Get("R1")
	assert.NoError(err)
	assert.Equal(Word(0), value)
}

func TestOperandRegister(t *testing.T) {
	assert := assert.New(t)

	def := NewDefinition().Register("R1")
	assert.NoError(def.Set("R1", 3))

	def.Instruction("probe", func(def *Definition, args Args) (err error) {
		op, err := args.At(0)
		if err != nil {
			return
		}

		assert.True(op.IsRegister())
		assert.Equal("R1", op.Name())
		assert.Equal(Word(3), op.Resolve())

		// Reads route through the store, so a write is observable.
		assert.NoError(op.Modify(8))
		assert.Equal(Word(8), op.Resolve())

		return
	})

	assert.NoError(def.Run([]Token{Instruction("probe"), RegisterRef("R1"), End()}))

	value, err := def.Get("R1")
	assert.NoError(err)
	assert.Equal(Word(8), value)
}

func TestArgsGuards(t *testing.T) {
	assert := assert.New(t)

	args := Args{{value: 4}}
	assert.Equal(1, args.Len())

	value, err := args.ResolveAt(0)
	assert.NoError(err)
	assert.Equal(Word(4), value)

	_, err = args.At(1)
	assert.ErrorIs(err, ErrOperandIndex(1))

	_, err = args.At(-1)
	assert.ErrorIs(err, ErrOperandIndex(-1))

	_, err = args.ResolveAt(3)
	assert.ErrorIs(err, ErrOperandIndex(3))

	assert.ErrorIs(args.ModifyAt(2, 1), ErrOperandIndex(2))
}
