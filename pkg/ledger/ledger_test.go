package ledger_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrianliechti/docread/pkg/ledger"

	"github.com/stretchr/testify/require"
)

func openLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	l, err := ledger.Open(filepath.Join(t.TempDir(), "docread.db"))
	require.NoError(t, err)

	t.Cleanup(func() { l.Close() })

	return l
}

func TestRecordGet(t *testing.T) {
	l := openLedger(t)
	ctx := context.Background()

	entry := ledger.Entry{
		ID:   "doc-1",
		Name: "invoice.pdf",

		Status: ledger.StatusSucceeded,

		Pages:    3,
		Duration: 1500 * time.Millisecond,
	}

	require.NoError(t, l.Record(ctx, entry))

	got, err := l.Get(ctx, "doc-1")
	require.NoError(t, err)

	require.Equal(t, "invoice.pdf", got.Name)
	require.Equal(t, ledger.StatusSucceeded, got.Status)
	require.Equal(t, 3, got.Pages)
	require.Equal(t, 1500*time.Millisecond, got.Duration)
	require.False(t, got.Created.IsZero())
}

func TestRecordFailure(t *testing.T) {
	l := openLedger(t)
	ctx := context.Background()

	require.NoError(t, l.Record(ctx, ledger.Entry{
		ID:     "doc-2",
		Name:   "scan.png",
		Status: ledger.StatusFailed,
		Error:  "recognition timed out after 10 attempts",
	}))

	got, err := l.Get(ctx, "doc-2")
	require.NoError(t, err)

	require.Equal(t, ledger.StatusFailed, got.Status)
	require.Contains(t, got.Error, "timed out")
}

func TestGetNotFound(t *testing.T) {
	l := openLedger(t)

	_, err := l.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestList(t *testing.T) {
	l := openLedger(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, l.Record(ctx, ledger.Entry{
			ID:      id,
			Name:    id + ".pdf",
			Status:  ledger.StatusSucceeded,
			Created: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := l.List(ctx, 2)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	require.Equal(t, "c", entries[0].ID)
	require.Equal(t, "b", entries[1].ID)
}
