package game

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayerCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1", 1},
		{"3", 3},
		{" 2\n", 2},
		{"9", 9},
		{"0", 0},
		{"12", 1},
		{"x", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePlayerCount(tt.input))
		})
	}
}

func TestTablePlay(t *testing.T) {
	t.Run("one round per player", func(t *testing.T) {
		engine := NewTestEngine(9, 5)
		table := NewTable(engine, DefaultMaxPlayers)

		var seats []int
		results, err := table.Play(context.Background(), 3, func(seat int) Decider {
			seats = append(seats, seat)
			return StandOn(17)
		})
		require.NoError(t, err)
		assert.Len(t, results, 3)
		assert.Equal(t, []int{1, 2, 3}, seats)
		assert.Equal(t, 12, engine.Stats().GamesPlayed)
		for i, r := range results {
			assert.Equal(t, i+1, r.Round)
		}
	})

	for _, players := range []int{0, 4, 9, -1} {
		t.Run("out of range is a no-op", func(t *testing.T) {
			engine := NewTestEngine(9, 5)
			table := NewTable(engine, DefaultMaxPlayers)

			results, err := table.Play(context.Background(), players, func(int) Decider {
				t.Fatal("no seat should be played")
				return nil
			})
			require.NoError(t, err)
			assert.Empty(t, results)
			assert.Equal(t, 9, engine.Stats().GamesPlayed)
		})
	}

	t.Run("stops on error", func(t *testing.T) {
		engine := NewTestEngine(9, 5)
		table := NewTable(engine, 0)
		boom := errors.New("boom")

		results, err := table.Play(context.Background(), 2, func(int) Decider {
			return DeciderFunc(func(HandView) (bool, error) { return false, boom })
		})
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, results)
	})
}
