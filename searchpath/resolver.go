// Package searchpath resolves bare file names against a conventional set of
// content directories.
package searchpath

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// VarSearchPath is the ambient variable consulted for extra search roots,
// holding an OS path-list separated list of directories. Roots from the
// variable take precedence over the configured ones.
const VarSearchPath = "search_path"

// ErrNotFound is returned when a file cannot be located in any search root.
var ErrNotFound = errors.New("file not found in search path")

// Resolver locates files by probing each root's files/ subdirectory and then
// the root itself, in order. An absolute name bypasses the search.
type Resolver struct {
	roots  []string
	logger *slog.Logger
}

// Option is a function type for configuring a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used by the resolver.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver over the given roots. With no roots the current
// directory is searched.
func New(roots []string, opts ...Option) *Resolver {
	if len(roots) == 0 {
		roots = []string{"."}
	}

	r := &Resolver{
		roots:  roots,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the absolute path of the first existing regular file named
// filename under the search roots. Roots carried in vars[VarSearchPath] are
// tried before the configured ones; within each root the files/ subdirectory
// is tried before the root itself.
func (r *Resolver) Resolve(filename string, vars map[string]string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("%w: empty file name", ErrNotFound)
	}

	if filepath.IsAbs(filename) {
		if isRegularFile(filename) {
			return filename, nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
	}

	roots := r.roots
	if extra, ok := vars[VarSearchPath]; ok && extra != "" {
		roots = append(filepath.SplitList(extra), roots...)
	}

	for _, root := range roots {
		for _, candidate := range []string{
			filepath.Join(root, "files", filename),
			filepath.Join(root, filename),
		} {
			if !isRegularFile(candidate) {
				continue
			}
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return "", fmt.Errorf("resolving %s: %w", candidate, err)
			}
			r.logger.Debug("file resolved", "name", filename, "path", abs)
			return abs, nil
		}
	}

	return "", fmt.Errorf("%w: %q (roots: %v)", ErrNotFound, filename, roots)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
