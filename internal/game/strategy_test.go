package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrategyPlan(t *testing.T) {
	s := DefaultStrategy()

	tests := []struct {
		name    string
		winRate float64
		want    Plan
	}{
		{name: "exactly at threshold", winRate: 0.55, want: Plan{StandLimit: 16}},
		{name: "computed threshold", winRate: 11.0 / 20.0, want: Plan{StandLimit: 16}},
		{name: "seeded start", winRate: 5.0 / 9.0, want: Plan{StandLimit: 16}},
		{name: "just below", winRate: 0.5499, want: Plan{StandLimit: 18, Cheat: true}},
		{name: "losing badly", winRate: 0, want: Plan{StandLimit: 18, Cheat: true}},
		{name: "winning", winRate: 0.9, want: Plan{StandLimit: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Plan(tt.winRate))
		})
	}
}

func TestStrategyValidate(t *testing.T) {
	assert.NoError(t, DefaultStrategy().Validate())
	assert.Error(t, Strategy{Threshold: 1.5, AggressiveLimit: 18, RelaxedLimit: 16}.Validate())
	assert.Error(t, Strategy{Threshold: 0.5, AggressiveLimit: 0, RelaxedLimit: 16}.Validate())
	assert.Error(t, Strategy{Threshold: 0.5, AggressiveLimit: 18, RelaxedLimit: 22}.Validate())
}
