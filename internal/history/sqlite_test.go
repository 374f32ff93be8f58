package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_SaveAndLoad(t *testing.T) {
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"), testLogger())
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	older := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

	loc, err := st.Save(ctx, completedSession("20260110_100000_Alex_Lee", "Alex Lee", older))
	require.NoError(t, err)
	assert.Equal(t, "sqlite:20260110_100000_Alex_Lee", loc)

	_, err = st.Save(ctx, completedSession("20260120_100000_Sam_Poe", "Sam Poe", newer))
	require.NoError(t, err)

	records, err := st.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Sam Poe", records[0].StudentName)
	assert.Equal(t, "Alex Lee", records[1].StudentName)
	require.Len(t, records[1].TypedResponses, 1)
	assert.Equal(t, "Good start. Add a concrete example.", records[1].TypedResponses[0].AIFeedback)
}

func TestSQLiteStore_DuplicateIDRejected(t *testing.T) {
	st, err := NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"), testLogger())
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	started := time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC)
	s := completedSession("20260110_100000_Alex_Lee", "Alex Lee", started)

	_, err = st.Save(ctx, s)
	require.NoError(t, err)
	_, err = st.Save(ctx, s)
	assert.Error(t, err)
}
