package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jpl-au/cafeval/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a fresh database for the test.
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = origDBPath
	})
	Close()
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Log(Entry{
			Source:  "cli:check",
			Author:  "test-user",
			Action:  "check",
			Input:   "ZumoNa,1",
			Success: true,
		})

		db, err := sql.Open("sqlite", DBPath())
		require.NoError(t, err)
		defer db.Close()

		var source, action, input string
		var success int
		err = db.QueryRow("SELECT source, action, input, success FROM log ORDER BY id DESC LIMIT 1").
			Scan(&source, &action, &input, &success)
		require.NoError(t, err)
		assert.Equal(t, "cli:check", source)
		assert.Equal(t, "check", action)
		assert.Equal(t, "ZumoNa,1", input)
		assert.Equal(t, 1, success)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		// Should not panic
		Log(Entry{Source: "test:cmd", Action: "test", Success: true})
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestBuilder(t *testing.T) {
	useTempDB(t)
	require.NoError(t, Open())

	_, rejected := validate.Parse("a,1")
	Event("cli:check", "check").Author("ana").Input("a,1").Write(rejected)
	Event("cli:check", "check").Author("ana").Input("ZumoNa,1").Write(nil)
	Event("cli:selftest", "selftest").Detail("cases", 24).Detail("passed", 24).Write(nil)

	entries, err := Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first.
	assert.Equal(t, "selftest", entries[0].Action)
	assert.Equal(t, float64(24), entries[0].Detail["cases"])
	assert.Empty(t, entries[0].Input)

	assert.Equal(t, "ZumoNa,1", entries[1].Input)
	assert.True(t, entries[1].Success)
	assert.Equal(t, hash("ZumoNa,1"), entries[1].Digest)

	assert.Equal(t, "a,1", entries[2].Input)
	assert.Equal(t, "ana", entries[2].Author)
	assert.False(t, entries[2].Success)
	assert.Contains(t, entries[2].Error, "invalid product name")
	assert.LessOrEqual(t, entries[2].Start, entries[2].End)
}

func TestRecent(t *testing.T) {
	useTempDB(t)

	t.Run("not open", func(t *testing.T) {
		_, err := Recent(5)
		assert.ErrorIs(t, err, ErrNotOpen)
	})

	t.Run("limit", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		for range 5 {
			Event("cli:check", "check").Input("tt,1").Write(nil)
		}
		entries, err := Recent(2)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Greater(t, entries[0].ID, entries[1].ID)
	})
}

func TestSinceAndPrune(t *testing.T) {
	useTempDB(t)

	_, err := Prune(time.Now())
	assert.ErrorIs(t, err, ErrNotOpen)

	require.NoError(t, Open())
	defer Close()

	now := time.Now()
	old := now.Add(-48 * time.Hour).Unix()
	Log(Entry{Source: "cli:check", Action: "check", Input: "tt,1", Start: old, End: old, Success: true})
	Event("cli:check", "check").Input("tt,2").Write(nil)

	entries, err := Since(now.Add(-time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tt,2", entries[0].Input)

	n, err := Prune(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	entries, err = Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tt,2", entries[0].Input)
}

func TestHash(t *testing.T) {
	h1 := hash("ZumoNa,1")
	h2 := hash("ZumoNa,1")
	h3 := hash("ZumoNa,2")

	assert.Equal(t, h1, h2, "same input should produce same hash")
	assert.NotEqual(t, h1, h3, "different input should produce different hash")
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expected := filepath.Join(home, ".cafeval", "log", "cafeval-log.db")

	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, expected, DBPath())
}
