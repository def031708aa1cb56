package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitFor = 2 * time.Second

func TestWatchReportsWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "props.yaml")
	require.NoError(t, os.WriteFile(path, []byte("padding: tight\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := Watch(ctx, path, WithDelay(20*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("padding: loose\n"), 0o644))

	select {
	case ev := <-events:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, ev.Path)
		assert.False(t, ev.At.IsZero())
	case <-time.After(waitFor):
		t.Fatal("expected a change event")
	}
}

func TestWatchCoalescesBursts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "props.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := Watch(ctx, path, WithDelay(200*time.Millisecond))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o644))
	}

	select {
	case <-events:
	case <-time.After(waitFor):
		t.Fatal("expected a change event")
	}

	select {
	case <-events:
		t.Fatal("burst should produce a single event")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "props.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := Watch(ctx, path, WithDelay(20*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))

	select {
	case <-events:
		t.Fatal("unexpected event for another file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "props.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	events, err := Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(waitFor):
		t.Fatal("channel was not closed")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "props.yaml"))
	require.Error(t, err)
}
