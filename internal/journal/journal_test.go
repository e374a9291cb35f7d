// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/md2norg/pkg/types"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.JournalConfig{StateDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestChecksum_Stable(t *testing.T) {
	a := Checksum([]byte("# doc"))
	b := Checksum([]byte("# doc"))
	c := Checksum([]byte("# doc changed"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestSeen_UnknownPath(t *testing.T) {
	s := openStore(t)

	seen, err := s.Seen("notes/a.md", Checksum([]byte("x")))
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestRecordAndSeen(t *testing.T) {
	s := openStore(t)
	sum := Checksum([]byte("# a"))

	err := s.Record(types.JournalEntry{
		SourcePath:  "notes/a.md",
		Checksum:    sum,
		OutputPath:  "notes/a.norg",
		RunID:       uuid.New().String(),
		ConvertedAt: time.Now(),
	})
	require.NoError(t, err)

	seen, err := s.Seen("notes/a.md", sum)
	require.NoError(t, err)
	assert.True(t, seen)

	// A changed document is not considered seen.
	seen, err = s.Seen("notes/a.md", Checksum([]byte("# a v2")))
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestRecord_Upsert(t *testing.T) {
	s := openStore(t)

	first := types.JournalEntry{
		SourcePath:  "a.md",
		Checksum:    Checksum([]byte("v1")),
		OutputPath:  "a.norg",
		RunID:       uuid.New().String(),
		ConvertedAt: time.Now(),
	}
	require.NoError(t, s.Record(first))

	second := first
	second.Checksum = Checksum([]byte("v2"))
	second.RunID = uuid.New().String()
	require.NoError(t, s.Record(second))

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, second.Checksum, entries[0].Checksum)
	assert.Equal(t, second.RunID, entries[0].RunID)
}

func TestList_Ordered(t *testing.T) {
	s := openStore(t)
	for _, p := range []string{"b.md", "a.md", "c.md"} {
		require.NoError(t, s.Record(types.JournalEntry{
			SourcePath:  p,
			Checksum:    Checksum([]byte(p)),
			OutputPath:  p + ".norg",
			RunID:       uuid.New().String(),
			ConvertedAt: time.Now(),
		}))
	}

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a.md", entries[0].SourcePath)
	assert.Equal(t, "b.md", entries[1].SourcePath)
	assert.Equal(t, "c.md", entries[2].SourcePath)
}
