package storage

import (
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Memory keeps the high score in process. Nothing survives a restart.
type Memory struct {
	mu   sync.Mutex
	high int
}

// NewMemory creates an in-memory store starting at high.
func NewMemory(high int) *Memory {
	return &Memory{high: high}
}

// HighScore returns the best score seen so far.
func (m *Memory) HighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.high, nil
}

// SetHighScoreIfGreater raises the best score.
func (m *Memory) SetHighScoreIfGreater(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.high {
		m.high = score
	}
	return nil
}

var _ flappy.HighScoreStore = (*Memory)(nil)
