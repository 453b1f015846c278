package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/orderlunch/internal/domain/errors"
)

// errUnchanged lets a mutation finish without rewriting the file.
var errUnchanged = errors.New("collection unchanged")

// Collection is a JSON array of T kept in a single file. Every read and every
// read/modify/write cycle holds the collection lock, so access from one process
// never interleaves. Nothing guards against a second process using the same file.
type Collection[T any] struct {
	path   string
	name   string
	logger *slog.Logger

	mu sync.Mutex
}

// OpenCollection prepares dir/file for use, creating the directory and an empty
// collection when they are missing. Opening an existing file leaves it untouched.
func OpenCollection[T any](dir, file string, logger *slog.Logger) (*Collection[T], error) {
	if dir == "" || file == "" {
		return nil, fmt.Errorf("%w: collection path must not be empty", domainErrors.ErrInvalidArgument)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dir, file)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	switch {
	case err == nil:
		_, werr := f.WriteString("[]")
		cerr := f.Close()
		if werr != nil {
			return nil, fmt.Errorf("init %s: %w", path, werr)
		}
		if cerr != nil {
			return nil, fmt.Errorf("init %s: %w", path, cerr)
		}
	case errors.Is(err, fs.ErrExist):
	default:
		return nil, fmt.Errorf("init %s: %w", path, err)
	}

	if logger == nil {
		logger = slog.Default()
	}
	name := strings.TrimSuffix(file, filepath.Ext(file))
	return &Collection[T]{
		path:   path,
		name:   name,
		logger: logger.With(slog.String("collection", name)),
	}, nil
}

// Path returns the backing file location.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load returns the whole collection. An empty file yields an empty, non-nil slice.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.read()
}

// Mutate loads the collection, applies fn and writes the result back, all under
// the collection lock. When fn fails nothing is written and its error is returned.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	items, err := c.read()
	if err != nil {
		return err
	}

	next, err := fn(items)
	if err != nil {
		if errors.Is(err, errUnchanged) {
			return nil
		}
		return err
	}
	return c.write(next)
}

func (c *Collection[T]) read() (items []T, err error) {
	defer observe(c.name, "load", time.Now(), &err)

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}

	items = make([]T, 0)
	if len(bytes.TrimSpace(data)) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger.Error("collection file is not parsable", slog.String("path", c.path), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: decode %s: %v", domainErrors.ErrCorruptStorage, c.path, err)
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (c *Collection[T]) write(items []T) (err error) {
	defer observe(c.name, "store", time.Now(), &err)

	if items == nil {
		items = make([]T, 0)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encode %s: %w", c.path, err)
	}

	if err := writeFileAtomic(c.path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}

// writeFileAtomic replaces path with data through a temp file in the same
// directory, so readers see either the old or the new content.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
