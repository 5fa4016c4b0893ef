package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

func newTestField(seed int64) (*PipeField, config.FlappyConfig) {
	cfg := config.DefaultFlappyConfig()
	return NewPipeField(cfg.Obstacles, cfg.World.ViewportHeight, seed), cfg
}

func TestSpawnPairsFillPlayfieldHeight(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		field, cfg := newTestField(seed)
		field.Spawn(500)

		pipes, gates := field.Pipes(), field.Gates()
		if len(pipes) != 2*len(gates) {
			t.Fatalf("seed %d: %d pipes for %d gates", seed, len(pipes), len(gates))
		}

		for i, g := range gates {
			bottom, top := pipes[2*i], pipes[2*i+1]
			if bottom.Top || !top.Top {
				t.Fatalf("seed %d pair %d: expected bottom then top", seed, i)
			}

			gap := g.Bounds.H
			if sum := (bottom.Bounds.H + gap) + top.Bounds.H; sum != cfg.World.ViewportHeight {
				t.Errorf("seed %d pair %d: bottom+gap+top = %v, expected %v", seed, i, sum, cfg.World.ViewportHeight)
			}
			if gap < cfg.Obstacles.GapMin || gap > cfg.Obstacles.GapMax {
				t.Errorf("seed %d pair %d: gap %v out of range", seed, i, gap)
			}
			if bottom.Bounds.H < cfg.Obstacles.GapStartMin || bottom.Bounds.H > cfg.Obstacles.GapStartMax {
				t.Errorf("seed %d pair %d: gap start %v out of range", seed, i, bottom.Bounds.H)
			}
			if bottom.Bounds.Y != 0 {
				t.Errorf("seed %d pair %d: bottom pipe should stand on the floor, y=%v", seed, i, bottom.Bounds.Y)
			}
			if top.Bounds.Top() != cfg.World.ViewportHeight {
				t.Errorf("seed %d pair %d: top pipe should reach the ceiling, top=%v", seed, i, top.Bounds.Top())
			}
			if g.Bounds.X != bottom.Bounds.X || g.Bounds.Y != bottom.Bounds.H || g.Triggered {
				t.Errorf("seed %d pair %d: gate %+v does not cover the gap", seed, i, g)
			}
		}
	}
}

func TestSpawnSpacingAndOrder(t *testing.T) {
	field, cfg := newTestField(7)
	field.Spawn(200)

	gates := field.Gates()
	if gates[0].Bounds.X != cfg.Obstacles.FirstPipeX {
		t.Errorf("first pair at x=%v, expected %v", gates[0].Bounds.X, cfg.Obstacles.FirstPipeX)
	}

	const eps = 1e-9
	for i := 1; i < len(gates); i++ {
		prevRight := gates[i-1].Bounds.Right()
		spacing := gates[i].Bounds.X - prevRight
		if spacing < cfg.Obstacles.SpacingMin-eps || spacing > cfg.Obstacles.SpacingMax+eps {
			t.Errorf("pair %d: spacing %v out of range", i, spacing)
		}
	}

	pipes := field.Pipes()
	for i := 1; i < len(pipes); i++ {
		if pipes[i].Bounds.X < pipes[i-1].Bounds.X {
			t.Fatalf("pipes out of x order at %d", i)
		}
	}
}

func TestSpawnStopsPastLimit(t *testing.T) {
	field, _ := newTestField(1)

	if n := field.Spawn(16); n == 0 {
		t.Fatal("empty field should spawn at least one pair")
	}
	last := field.Gates()[len(field.Gates())-1]
	if last.Bounds.X < 16 {
		t.Errorf("newest pair at %v, expected at or past 16", last.Bounds.X)
	}
	if n := field.Spawn(16); n != 0 {
		t.Errorf("second Spawn with the same limit added %d pairs", n)
	}
}

func TestSpawnIsDeterministic(t *testing.T) {
	a, _ := newTestField(12345)
	b, _ := newTestField(12345)
	a.Spawn(100)
	b.Spawn(100)

	if len(a.Pipes()) != len(b.Pipes()) {
		t.Fatalf("pipe counts differ: %d vs %d", len(a.Pipes()), len(b.Pipes()))
	}
	for i := range a.Pipes() {
		if a.Pipes()[i] != b.Pipes()[i] {
			t.Fatalf("pipe %d differs: %+v vs %+v", i, a.Pipes()[i], b.Pipes()[i])
		}
	}
}

func TestCullDropsOnlyPipesBehind(t *testing.T) {
	field, _ := newTestField(3)
	field.Spawn(60)

	minX := 30.0
	before := len(field.Pipes())
	removed := field.Cull(minX)

	if removed == 0 {
		t.Fatal("expected some pipes behind x=30")
	}
	if len(field.Pipes()) != before-removed {
		t.Errorf("pipe count %d, expected %d", len(field.Pipes()), before-removed)
	}
	for _, p := range field.Pipes() {
		if p.Bounds.Right() < minX {
			t.Errorf("pipe at %v should have been culled", p.Bounds.X)
		}
	}
	for _, g := range field.Gates() {
		if g.Bounds.Right() < minX {
			t.Errorf("gate at %v should have been culled", g.Bounds.X)
		}
	}
	if len(field.Pipes()) != 2*len(field.Gates()) {
		t.Errorf("culling split a pair: %d pipes, %d gates", len(field.Pipes()), len(field.Gates()))
	}

	// Culling everything must not restart the layout at the first pipe x.
	lastX := field.Gates()[len(field.Gates())-1].Bounds.X
	field.Cull(math.MaxFloat64)
	field.Spawn(lastX + 1)
	if x := field.Gates()[0].Bounds.X; x <= lastX {
		t.Errorf("pair after full cull at %v, expected past %v", x, lastX)
	}
}

func TestScoreGateFiresOnce(t *testing.T) {
	field, _ := newTestField(5)
	field.Spawn(10)

	g := field.Gates()[0]
	inside := core.NewRect(g.Bounds.X, g.Bounds.Y+0.1, 0.5, 0.5)

	if n := field.Score(inside); n != 1 {
		t.Fatalf("first overlap scored %d, expected 1", n)
	}
	for i := 0; i < 5; i++ {
		if n := field.Score(inside); n != 0 {
			t.Fatalf("repeated overlap scored %d, expected 0", n)
		}
	}
	if !field.Gates()[0].Triggered {
		t.Error("gate should be marked triggered")
	}
}

func TestOverlaps(t *testing.T) {
	field, _ := newTestField(5)
	field.Spawn(10)

	bottom := field.Pipes()[0]
	g := field.Gates()[0]

	if !field.Overlaps(core.NewRect(bottom.Bounds.X, bottom.Bounds.Top()-0.5, 1, 1)) {
		t.Error("rect crossing the bottom pipe top should collide")
	}
	if field.Overlaps(core.NewRect(g.Bounds.X, g.Bounds.Y+0.1, 1, 1)) {
		t.Error("rect inside the gap should not collide")
	}
	if field.Overlaps(core.NewRect(0, 4, 1, 1)) {
		t.Error("rect before the first pipe should not collide")
	}
}

func TestClosestBottomAhead(t *testing.T) {
	field, _ := newTestField(9)

	if _, ok := field.ClosestBottomAhead(0); ok {
		t.Error("empty field should have no pipe ahead")
	}

	field.Spawn(40)
	gates := field.Gates()

	p, ok := field.ClosestBottomAhead(0)
	if !ok || p.Top || p.Bounds.X != gates[0].Bounds.X {
		t.Errorf("closest from x=0 = %+v, expected first bottom pipe", p)
	}

	// Standing on the second pair's left edge: the first pair is behind.
	p, ok = field.ClosestBottomAhead(gates[1].Bounds.X)
	if !ok || p.Bounds.X != gates[1].Bounds.X {
		t.Errorf("closest from second pair = %+v, expected x=%v", p, gates[1].Bounds.X)
	}

	last := gates[len(gates)-1]
	if _, ok := field.ClosestBottomAhead(last.Bounds.Right() + 1); ok {
		t.Error("no pipe should be ahead of the last pair")
	}
}

func TestResetClearsField(t *testing.T) {
	field, cfg := newTestField(2)
	field.Spawn(50)
	field.Reset()

	if len(field.Pipes()) != 0 || len(field.Gates()) != 0 {
		t.Fatalf("Reset left %d pipes, %d gates", len(field.Pipes()), len(field.Gates()))
	}
	field.Spawn(1)
	if x := field.Gates()[0].Bounds.X; x != cfg.Obstacles.FirstPipeX {
		t.Errorf("first pair after Reset at %v, expected %v", x, cfg.Obstacles.FirstPipeX)
	}
}
