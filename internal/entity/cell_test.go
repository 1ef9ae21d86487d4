package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell(t *testing.T) {
	t.Run("Opponent swaps colors", func(t *testing.T) {
		assert.Equal(t, Black, White.Opponent())
		assert.Equal(t, White, Black.Opponent())
		assert.Equal(t, Empty, Empty.Opponent())
	})

	t.Run("Only white and black are colors", func(t *testing.T) {
		assert.True(t, White.IsColor())
		assert.True(t, Black.IsColor())
		assert.False(t, Empty.IsColor())
		assert.False(t, Cell(7).IsColor())
	})

	t.Run("Glyphs follow the board notation", func(t *testing.T) {
		assert.Equal(t, ".", Empty.Glyph())
		assert.Equal(t, "O", White.Glyph())
		assert.Equal(t, "X", Black.Glyph())
	})
}

func TestNewPlayer(t *testing.T) {
	// Given: two players created with the same name
	first := NewPlayer("Player 1", White)
	second := NewPlayer("Player 1", White)

	// Then: each gets its own identifier
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "Player 1", first.Name)
	assert.Equal(t, White, first.Color)
}
