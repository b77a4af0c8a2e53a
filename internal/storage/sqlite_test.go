package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath, WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreInMemory(t *testing.T) {
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	defer store.Close()

	if err := store.RaiseHighScore(HighScoreKey, 40); err != nil {
		t.Fatalf("RaiseHighScore() failed: %v", err)
	}
	if got, _ := store.HighScore(HighScoreKey); got != 40 {
		t.Errorf("HighScore() = %d, expected 40", got)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, food int }{{100, 10}, {50, 5}, {200, 20}} {
		if _, err := store.SaveScore(s.score, s.food); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].FoodEaten != 20 {
		t.Errorf("Expected food eaten 20, got %d", scores[0].FoodEaten)
	}
}

func TestStoreRunIDsUnique(t *testing.T) {
	store := openTestStore(t)

	a, err := store.SaveScore(10, 1)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	b, err := store.SaveScore(10, 1)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	if a.RunID == "" || a.RunID == b.RunID {
		t.Errorf("run ids should be distinct and non-empty: %q %q", a.RunID, b.RunID)
	}
	if a.ID == b.ID {
		t.Errorf("row ids should differ, both %d", a.ID)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore((i+1)*100, i)
	}

	// Request only top 3
	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestHighScoreAbsent(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore(HighScoreKey)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for an empty store, got %d", high)
	}
}

func TestHighScoreMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"garbage", "abc"},
		{"empty", ""},
		{"negative", "-20"},
		{"float", "12.5"},
		{"float above score", "99.5"},
		{"digit prefix", "12abc"},
		{"overflow", "99999999999999999999"},
		{"padded", " 7x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			if err := store.SetValue(HighScoreKey, tt.value); err != nil {
				t.Fatalf("SetValue() failed: %v", err)
			}

			high, err := store.HighScore(HighScoreKey)
			if err != nil {
				t.Fatalf("HighScore() failed: %v", err)
			}
			if high != 0 {
				t.Errorf("HighScore() = %d, expected 0 for %q", high, tt.value)
			}

			// A real score replaces the bad value, even one below a
			// numeric-looking prefix.
			if err := store.RaiseHighScore(HighScoreKey, 10); err != nil {
				t.Fatalf("RaiseHighScore() failed: %v", err)
			}
			if high, _ := store.HighScore(HighScoreKey); high != 10 {
				t.Errorf("HighScore() = %d after raise, expected 10", high)
			}
			if raw, _, _ := store.Value(HighScoreKey); raw != "10" {
				t.Errorf("stored value = %q, expected \"10\"", raw)
			}
		})
	}
}

func TestRaiseHighScoreMonotonic(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		save int
		want int
	}{
		{50, 50},
		{30, 50},
		{50, 50},
		{120, 120},
		{0, 120},
	}

	for _, s := range steps {
		if err := store.RaiseHighScore(HighScoreKey, s.save); err != nil {
			t.Fatalf("RaiseHighScore(%d) failed: %v", s.save, err)
		}
		got, err := store.HighScore(HighScoreKey)
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if got != s.want {
			t.Errorf("after saving %d: high score = %d, expected %d", s.save, got, s.want)
		}
	}
}

func TestHighScoreStoredAsDecimalText(t *testing.T) {
	store := openTestStore(t)

	if err := store.RaiseHighScore(HighScoreKey, 1230); err != nil {
		t.Fatalf("RaiseHighScore() failed: %v", err)
	}

	raw, ok, err := store.Value(HighScoreKey)
	if err != nil || !ok {
		t.Fatalf("Value() = %q, %v, %v", raw, ok, err)
	}
	if raw != "1230" {
		t.Errorf("stored value = %q, expected \"1230\"", raw)
	}
}

func TestHighScoresAdapter(t *testing.T) {
	store := openTestStore(t)
	hs := store.HighScores("")

	if got := hs.LoadHighScore(); got != 0 {
		t.Errorf("LoadHighScore() = %d, expected 0", got)
	}
	if err := hs.SaveHighScore(70); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	if got := hs.LoadHighScore(); got != 70 {
		t.Errorf("LoadHighScore() = %d, expected 70", got)
	}

	// Other keys are independent.
	if got := store.HighScores("other").LoadHighScore(); got != 0 {
		t.Errorf("other key = %d, expected 0", got)
	}
}

func TestHighScorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.HighScores("").SaveHighScore(90); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got := store.HighScores("").LoadHighScore(); got != 90 {
		t.Errorf("LoadHighScore() after reopen = %d, expected 90", got)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.GamesCount != 0 || st.BestScore != 0 {
		t.Errorf("empty stats = %+v", st)
	}

	store.SaveScore(100, 10)
	store.SaveScore(300, 30)
	store.SaveScore(200, 20)

	st, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.GamesCount != 3 {
		t.Errorf("GamesCount = %d, expected 3", st.GamesCount)
	}
	if st.BestScore != 300 {
		t.Errorf("BestScore = %d, expected 300", st.BestScore)
	}
	if st.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", st.AvgScore)
	}
	if st.TotalFood != 60 {
		t.Errorf("TotalFood = %d, expected 60", st.TotalFood)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, 10)
	store.SaveScore(200, 20)
	store.RaiseHighScore(HighScoreKey, 200)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if high, _ := store.HighScore(HighScoreKey); high != 0 {
		t.Errorf("high score after clear = %d, expected 0", high)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.snake/scores.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".snake", "scores.db"); got != want {
		t.Errorf("expandHome() = %q, expected %q", got, want)
	}

	if got, _ := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}
