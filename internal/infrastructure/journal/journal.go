// Package journal implements the append-only journal file. All access
// serializes through a single mutex so concurrent writers cannot
// interleave partial lines and readers always see a consistent snapshot.
package journal

import (
	"bufio"
	"fmt"
	"os"
	"sync"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

type Store struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Append writes one timestamped line. The write is atomic with respect
// to other Append and Read calls.
func (s *Store) Append(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "%s: %s\n", s.now().Format(timestampLayout), message); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

// Read returns a snapshot of all journal lines.
func (s *Store) Read() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer file.Close()

	messages := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		messages = append(messages, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return messages, nil
}
