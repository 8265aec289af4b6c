package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateCenter(t *testing.T) {
	t.Run("empty board scores zero", func(t *testing.T) {
		require.Zero(t, EvaluateCenter(NewBoard(), Red))
	})

	t.Run("own center pieces add weight, opponent pieces subtract it", func(t *testing.T) {
		b := NewBoard()
		_, err := b.Drop(CenterCol, Red)
		require.NoError(t, err)
		_, err = b.Drop(CenterCol, Red)
		require.NoError(t, err)
		_, err = b.Drop(CenterCol, Yellow)
		require.NoError(t, err)

		require.Equal(t, CenterWeight, EvaluateCenter(b, Red))
		require.Equal(t, -CenterWeight, EvaluateCenter(b, Yellow),
			"Score should flip sign with the perspective")
	})

	t.Run("pieces outside the center column are ignored", func(t *testing.T) {
		b := NewBoard()
		for _, col := range []int{0, 1, 2, 4, 5, 6} {
			_, err := b.Drop(col, Red)
			require.NoError(t, err)
		}

		require.Zero(t, EvaluateCenter(b, Red))
	})
}
