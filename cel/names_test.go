package cel_test

import (
	"strings"
	"sync"
	"testing"

	"celc/cel"
)

func TestUUIDSource_Unique(t *testing.T) {
	src := cel.NewUUIDSource("walk cycle")

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := src.Next()
		if !strings.HasPrefix(id, "walk-cycle-") {
			t.Fatalf("id %q does not carry slugged prefix", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestUUIDSource_DefaultPrefix(t *testing.T) {
	for _, prefix := range []string{"", "!!!", "   "} {
		id := cel.NewUUIDSource(prefix).Next()
		if !strings.HasPrefix(id, "cel-") {
			t.Errorf("prefix %q: id %q does not fall back to cel-", prefix, id)
		}
	}
}

func TestSequenceSource_Deterministic(t *testing.T) {
	src := cel.NewSequenceSource("blink")

	for i, want := range []string{"blink-1", "blink-2", "blink-3"} {
		if got := src.Next(); got != want {
			t.Errorf("call %d: got %q, want %q", i+1, got, want)
		}
	}
}

func TestSequenceSource_ConcurrentUnique(t *testing.T) {
	const workers = 8
	const perWorker = 500

	src := cel.NewSequenceSource("cel")
	ids := make(chan string, workers*perWorker)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				ids <- src.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, workers*perWorker)
	for id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q under concurrent use", id)
		}
		seen[id] = struct{}{}
	}
}
