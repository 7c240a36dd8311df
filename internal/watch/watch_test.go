package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherFiresOnceAfterDebouncedBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.cow")
	if err := os.WriteFile(path, []byte("v0"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var mu sync.Mutex
	fires := 0
	w, err := New(path, 60*time.Millisecond, func() {
		mu.Lock()
		fires++
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	for i := 0; i < 3; i++ {
		os.WriteFile(path, []byte("v"+string(rune('1'+i))), 0644)
		time.Sleep(15 * time.Millisecond)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := fires
		mu.Unlock()
		if n > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	if fires == 0 {
		t.Error("expected onChange to fire at least once after a burst of writes")
	}
}

func TestStopIsIdempotentAndWaitsForLoopExit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.cow")
	os.WriteFile(path, []byte("v0"), 0644)

	w, err := New(path, 50*time.Millisecond, func() {})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	w.Stop()
	w.Stop()
}
