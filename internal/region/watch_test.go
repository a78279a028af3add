package region

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pulpContent = `
regions:
  pulp_back:
    name: %s
    line: [[0, 0, 0], [0, 0, 0.1], [1, 0, 0.1]]
`

func writeContent(t *testing.T, path, name string) {
	t.Helper()
	data := []byte(fmt.Sprintf(pulpContent, name))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestLiveSwap(t *testing.T) {
	first := NewTable(DefaultAliases(), map[ID]Bundle{"pulp_back": {Name: "Pulp"}})
	second := NewTable(DefaultAliases(), map[ID]Bundle{"pulp_back": {Name: "Pulpa"}})

	live := NewLive(first)
	assert.Equal(t, "Pulp", live.Lookup("pulp_back").Name)
	assert.Equal(t, Nerves, live.Resolve("nerve_red_back"))

	live.Set(second)
	assert.Same(t, second, live.Table())
	assert.Equal(t, "Pulpa", live.Lookup("pulp_back").Name)

	live.Set(nil)
	assert.Same(t, second, live.Table())
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")
	writeContent(t, path, "Pulp")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.delay = 50 * time.Millisecond
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	writeContent(t, path, "Pulpa")

	select {
	case table := <-w.Updates():
		assert.Equal(t, "Pulpa", table.Lookup("pulp_back").Name)
		assert.Equal(t, Nerves, table.Resolve("nerve_blue_back"))
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcherKeepsPreviousOnBadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")
	writeContent(t, path, "Pulp")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.delay = 50 * time.Millisecond
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Two leader points only.
	bad := "regions:\n  pulp_back:\n    name: Pulp\n    line: [[0, 0, 0], [1, 0, 0]]\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0644))

	select {
	case <-w.Updates():
		t.Fatal("invalid content must not be delivered")
	case <-time.After(300 * time.Millisecond):
	}

	writeContent(t, path, "Pulp again")
	select {
	case table := <-w.Updates():
		assert.Equal(t, "Pulp again", table.Lookup("pulp_back").Name)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after fixing content")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.yaml")
	writeContent(t, path, "Pulp")

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.delay = 50 * time.Millisecond
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case <-w.Updates():
		t.Fatal("sibling file change triggered a reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "regions.yaml"), nil)
	assert.Error(t, err)
}
