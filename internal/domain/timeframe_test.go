package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimeframe(t *testing.T) {
	now := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	t.Run("Janela de 30 dias com comparação disjunta", func(t *testing.T) {
		tf, err := ResolveTimeframe(Period30d, now)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), tf.End)
		assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), tf.Start)
		require.True(t, tf.HasComparison())

		// A janela anterior termina exatamente onde a atual começa
		assert.Equal(t, tf.Start, *tf.PreviousEnd)
		assert.Equal(t, time.Date(2024, 4, 17, 0, 0, 0, 0, time.UTC), *tf.PreviousStart)
		assert.Equal(t, 30, tf.WindowDays())
	})

	t.Run("Período all não tem comparação", func(t *testing.T) {
		tf, err := ResolveTimeframe(PeriodAll, now)
		require.NoError(t, err)
		assert.False(t, tf.HasComparison())
	})

	t.Run("Período desconhecido retorna erro", func(t *testing.T) {
		_, err := ResolveTimeframe(Period("14d"), now)
		assert.Error(t, err)
	})
}
