package database

import (
	"regexp"
	"sync"
	"testing"
)

var uuidV4Pattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func Test_generateID_Format(t *testing.T) {
	got, err := generateID()
	if err != nil {
		t.Fatalf("generateID() returned error: %v", err)
	}
	if !uuidV4Pattern.MatchString(got) {
		t.Fatalf("generateID() returned invalid UUID v4 format: %q", got)
	}
}

func Test_generateID_UniqueUnderConcurrency(t *testing.T) {
	const workers = 8
	const perWorker = 128

	var mu sync.Mutex
	var wg sync.WaitGroup
	seen := make(map[string]struct{}, workers*perWorker)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				got, err := generateID()
				if err != nil {
					t.Errorf("generateID() returned error: %v", err)
					return
				}
				mu.Lock()
				if _, dup := seen[got]; dup {
					t.Errorf("generateID() returned duplicate UUID: %q", got)
				}
				seen[got] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != workers*perWorker {
		t.Fatalf("expected %d unique ids, got %d", workers*perWorker, len(seen))
	}
}
