package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/oshokin/chainkit-mutate/internal/domain/rewrite"
)

// DefaultPath is the generated binding file, relative to the repository root.
const DefaultPath = "platforms/ios/ChainKit/Sources/ChainKit/ChainKit.swift"

// ErrNotFound is returned when the source file does not exist.
var ErrNotFound = errors.New("source file not found")

// Repository loads and stores the lines of one text file.
type Repository interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, lines []string) error
}

// FileRepository reads the whole file, then reopens it for writing.
// The write truncates in place and is not atomic.
type FileRepository struct {
	// path is the filesystem location of the file.
	path string
	// mu serialises Load and Save.
	mu sync.Mutex
}

// NewFileRepository creates a repository for path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the cleaned file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Load returns the file contents split into lines.
func (r *FileRepository) Load(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, r.path, err)
		}

		return nil, fmt.Errorf("read source file: %w", err)
	}

	return rewrite.SplitLines(string(contents)), nil
}

// Save truncates the file and writes lines back. An existing file keeps its mode.
func (r *FileRepository) Save(_ context.Context, lines []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := os.OpenFile(r.path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s: %w", ErrNotFound, r.path, err)
		}

		return fmt.Errorf("open source file: %w", err)
	}

	if _, err = file.WriteString(rewrite.Join(lines)); err != nil {
		_ = file.Close()

		return fmt.Errorf("write source file: %w", err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("close source file: %w", err)
	}

	return nil
}
