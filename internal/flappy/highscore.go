package flappy

// HighScoreStore persists the best score across sessions.
// Implementations must never lower the stored value and must make a write
// durable before SetHighScoreIfGreater returns.
type HighScoreStore interface {
	// HighScore returns the stored best, or 0 if none was ever saved.
	HighScore() (int, error)
	// SetHighScoreIfGreater stores score if it beats the stored best.
	SetHighScoreIfGreater(score int) error
}
