package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is one half of a pipe pair. Bottom pipes stand on the floor, top pipes
// hang from the ceiling.
type Pipe struct {
	Bounds core.Rect
	Top    bool
}

// ScoreGate is the invisible trigger between a pipe pair.
type ScoreGate struct {
	Bounds    core.Rect
	Triggered bool // Set once the gate has awarded its point
}

// PipeField generates pipe pairs ahead of the camera and drops them once they
// are behind it. Pipes and gates are kept in spawn order, which is also
// ascending x order.
type PipeField struct {
	cfg     config.FlappyObstacles
	height  float64 // Playfield height, floor to ceiling
	rng     *rand.Rand
	pipes   []Pipe
	gates   []ScoreGate
	lastX   float64 // X of the most recently spawned pair
	spawned bool    // Whether any pair was spawned since Reset
}

// NewPipeField creates an empty field. The seed fixes the obstacle layout.
func NewPipeField(cfg config.FlappyObstacles, height float64, seed int64) *PipeField {
	return &PipeField{
		cfg:    cfg,
		height: height,
		rng:    rand.New(rand.NewSource(seed)),
		pipes:  make([]Pipe, 0, 16),
		gates:  make([]ScoreGate, 0, 8),
	}
}

// Reset removes every pipe and gate. The RNG keeps its sequence so a new run
// gets a new layout.
func (f *PipeField) Reset() {
	f.pipes = f.pipes[:0]
	f.gates = f.gates[:0]
	f.lastX = 0
	f.spawned = false
}

// Spawn adds pairs until the newest one sits at or past limitX.
// Returns the number of pairs added.
func (f *PipeField) Spawn(limitX float64) int {
	n := 0
	for !f.spawned || f.lastX < limitX {
		f.spawnPair()
		n++
	}
	return n
}

func (f *PipeField) spawnPair() {
	gap := f.uniform(f.cfg.GapMin, f.cfg.GapMax)
	gapStart := f.uniform(f.cfg.GapStartMin, f.cfg.GapStartMax)

	x := f.cfg.FirstPipeX
	if f.spawned {
		x = f.lastX + f.cfg.PipeWidth + f.uniform(f.cfg.SpacingMin, f.cfg.SpacingMax)
	}

	w := f.cfg.PipeWidth
	f.pipes = append(f.pipes,
		Pipe{Bounds: core.NewRect(x, 0, w, gapStart)},
		Pipe{Bounds: core.NewRect(x, gapStart+gap, w, f.height-(gapStart+gap)), Top: true},
	)
	f.gates = append(f.gates, ScoreGate{Bounds: core.NewRect(x, gapStart, w, gap)})
	f.lastX = x
	f.spawned = true
}

// uniform returns a value in [min, max).
func (f *PipeField) uniform(min, max float64) float64 {
	return min + f.rng.Float64()*(max-min)
}

// Cull drops pipes and gates whose right edge is left of minX.
// Returns the number of pipes removed.
func (f *PipeField) Cull(minX float64) int {
	i := 0
	for i < len(f.pipes) && f.pipes[i].Bounds.Right() < minX {
		i++
	}
	f.pipes = f.pipes[i:]

	j := 0
	for j < len(f.gates) && f.gates[j].Bounds.Right() < minX {
		j++
	}
	f.gates = f.gates[j:]
	return i
}

// Pipes returns the live pipes. Callers must not modify the slice.
func (f *PipeField) Pipes() []Pipe {
	return f.pipes
}

// Gates returns the live score gates. Callers must not modify the slice.
func (f *PipeField) Gates() []ScoreGate {
	return f.gates
}

// Overlaps reports whether r hits any pipe.
func (f *PipeField) Overlaps(r core.Rect) bool {
	for _, p := range f.pipes {
		if p.Bounds.Overlaps(r) {
			return true
		}
	}
	return false
}

// Score triggers every untriggered gate overlapping r and returns how many
// fired. A gate fires at most once.
func (f *PipeField) Score(r core.Rect) int {
	n := 0
	for i := range f.gates {
		g := &f.gates[i]
		if !g.Triggered && g.Bounds.Overlaps(r) {
			g.Triggered = true
			n++
		}
	}
	return n
}

// ClosestBottomAhead returns the bottom pipe whose right edge is nearest to x
// without being behind it.
func (f *PipeField) ClosestBottomAhead(x float64) (Pipe, bool) {
	best := math.MaxFloat64
	var found Pipe
	ok := false
	for i := len(f.pipes) - 1; i >= 0; i-- {
		p := f.pipes[i]
		if p.Bounds.Right() < x {
			break
		}
		if p.Top {
			continue
		}
		if d := p.Bounds.Right() - x; d < best {
			best = d
			found = p
			ok = true
		}
	}
	return found, ok
}
