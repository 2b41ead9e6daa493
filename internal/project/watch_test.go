package project

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherDetectsChange(t *testing.T) {
	proj, err := Init(t.TempDir(), InitOptions{Name: "test"})
	require.NoError(t, err)

	w, err := NewWatcher(proj)
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, os.WriteFile(proj.Resolve("assets/config/AdsConfig.yaml"), []byte("guid: g\n"), 0o644))

	select {
	case change := <-w.Changes:
		require.Contains(t, change.Path, "AdsConfig.yaml")
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatcherStop(t *testing.T) {
	proj, err := Init(t.TempDir(), InitOptions{Name: "test"})
	require.NoError(t, err)

	w, err := NewWatcher(proj)
	require.NoError(t, err)
	w.Stop()

	_, ok := <-w.Changes
	require.False(t, ok, "channel closes on stop")
}
