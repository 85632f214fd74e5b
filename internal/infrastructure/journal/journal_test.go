package journal

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "journal.txt"))
}

func TestStore_AppendAndRead(t *testing.T) {
	store := newTestStore(t)
	store.now = func() time.Time {
		return time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)
	}

	if err := store.Append("first entry"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.Append("second entry"); err != nil {
		t.Fatalf("append: %v", err)
	}

	lines, err := store.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "2024-05-17 09:30:00: first entry" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "2024-05-17 09:30:00: second entry" {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}

func TestStore_ReadMissingFile(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Read(); err == nil {
		t.Fatalf("expected error reading a journal that was never written")
	}
}

func TestStore_ConcurrentAppends(t *testing.T) {
	store := newTestStore(t)

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := store.Append(fmt.Sprintf("writer %d", i)); err != nil {
				t.Errorf("append from writer %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	lines, err := store.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(lines) != writers {
		t.Fatalf("expected %d lines, got %d", writers, len(lines))
	}
	// Every line must be complete, never interleaved.
	for _, line := range lines {
		if !strings.Contains(line, ": writer ") {
			t.Fatalf("corrupt journal line: %q", line)
		}
	}
}
