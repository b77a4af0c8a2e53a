package snake

// HighScoreStore persists the single best score across games.
// LoadHighScore must return 0 for absent or unreadable values.
type HighScoreStore interface {
	LoadHighScore() int
	SaveHighScore(score int) error
}

// MemoryStore is an in-process HighScoreStore.
type MemoryStore struct {
	Value  int
	Writes int
}

// LoadHighScore returns the stored value.
func (m *MemoryStore) LoadHighScore() int {
	return m.Value
}

// SaveHighScore records score and counts the write.
func (m *MemoryStore) SaveHighScore(score int) error {
	m.Value = score
	m.Writes++
	return nil
}
