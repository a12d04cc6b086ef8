// ABOUTME: Advisory writer lock for file-backed stores.
// ABOUTME: A lock file with a uuid token enforces the single-writer discipline.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const lockFileName = "writer.lock"

// writerLock is an advisory single-writer lock. The design assumes one
// active writer per data directory; a second opener fails instead of
// silently racing (two tabs / two shells problem).
type writerLock struct {
	path  string
	token string
}

// acquireWriterLock creates the lock file exclusively, writing a uuid token
// and the pid for diagnostics. A held lock produces a descriptive error.
func acquireWriterLock(dir string) (*writerLock, error) {
	path := filepath.Join(dir, lockFileName)
	token := uuid.NewString()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if os.IsExist(err) {
			holder := describeHolder(path)
			return nil, fmt.Errorf("data directory is locked by another process%s; remove %s if that process is gone", holder, path)
		}
		return nil, fmt.Errorf("acquire writer lock: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s %d\n", token, os.Getpid()); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("write writer lock: %w", err)
	}

	return &writerLock{path: path, token: token}, nil
}

// release removes the lock file if it still carries our token.
func (l *writerLock) release() {
	if l == nil {
		return
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return
	}
	if strings.HasPrefix(string(data), l.token) {
		_ = os.Remove(l.path)
	}
}

func describeHolder(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return ""
	}
	return fmt.Sprintf(" (pid %s)", fields[1])
}
