package build_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"moodbank/core/build"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_RebuildsOnChange(t *testing.T) {
	root := project(t)
	b, err := build.NewBuilder(root, build.Config{OutDir: "dist", EmptyOutDir: true, WatchDebounceMillis: 20}, nil)
	require.NoError(t, err)

	builds := make(chan *build.Manifest, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- b.Watch(ctx, func(m *build.Manifest, err error) {
			if err == nil {
				builds <- m
			}
		})
	}()

	select {
	case <-builds:
	case <-time.After(5 * time.Second):
		t.Fatal("initial build did not run")
	}

	writeFile(t, filepath.Join(root, "src", "new.js"), "export {}")

	require.Eventually(t, func() bool {
		select {
		case m := <-builds:
			for _, f := range m.Files {
				if f.Path == "src/new.js" {
					return true
				}
			}
		default:
		}
		return false
	}, 5*time.Second, 20*time.Millisecond)

	_, err = os.Stat(filepath.Join(root, "dist", "src", "new.js"))
	assert.NoError(t, err)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
