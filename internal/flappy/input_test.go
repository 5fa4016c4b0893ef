package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestCommandFor(t *testing.T) {
	replay := core.NewRect(6.875, 2.475, 2.25, 0.9)

	tests := []struct {
		name  string
		state State
		x, y  float64
		want  Command
	}{
		{"idle anywhere", StateIdle, 0, 0, CommandStart},
		{"idle on replay", StateIdle, 8, 3, CommandStart},
		{"running", StateRunning, 12, 7, CommandJump},
		{"running on replay", StateRunning, 8, 3, CommandJump},
		{"paused", StatePaused, 8, 3, CommandNone},
		{"game over on replay", StateGameOver, 8, 3, CommandRestart},
		{"game over on replay edge", StateGameOver, 6.875, 2.475, CommandRestart},
		{"game over left of replay", StateGameOver, 6.8, 3, CommandNone},
		{"game over above replay", StateGameOver, 8, 3.5, CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CommandFor(tc.state, replay, tc.x, tc.y); got != tc.want {
				t.Errorf("CommandFor(%v, %v, %v) = %v, expected %v", tc.state, tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestStateAndCommandStrings(t *testing.T) {
	if StateGameOver.String() != "GameOver" || State(99).String() != "Unknown" {
		t.Error("unexpected State names")
	}
	if CommandRestart.String() != "Restart" || Command(99).String() != "Unknown" {
		t.Error("unexpected Command names")
	}
}

func TestEventHas(t *testing.T) {
	e := EventScore | EventCrash
	if !e.Has(EventScore) || !e.Has(EventCrash) || e.Has(EventJump) {
		t.Errorf("Has() wrong for %b", e)
	}
}
