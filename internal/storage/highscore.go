package storage

// HighScores adapts a Store to the game's high score interface.
type HighScores struct {
	store *Store
	key   string
}

// HighScores returns an adapter bound to key. An empty key uses HighScoreKey.
func (s *Store) HighScores(key string) *HighScores {
	if key == "" {
		key = HighScoreKey
	}
	return &HighScores{store: s, key: key}
}

// LoadHighScore returns the stored best score, or 0 if it is absent,
// malformed or cannot be read.
func (h *HighScores) LoadHighScore() int {
	score, err := h.store.HighScore(h.key)
	if err != nil {
		h.store.logger.Warn("cannot load high score", "key", h.key, "err", err)
		return 0
	}
	return score
}

// SaveHighScore stores score if it beats the stored value.
func (h *HighScores) SaveHighScore(score int) error {
	return h.store.RaiseHighScore(h.key, score)
}
