package lookup

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sevigo/csvlookup/schema"
)

// Lookup resolves terms against delimited files. It holds no state across
// invocations; concurrent Run calls share nothing mutable.
type Lookup struct {
	resolver         schema.PathResolver
	logger           *slog.Logger
	defaultFile      string
	defaultDelimiter string
	defaultEncoding  string
}

// New creates a Lookup that locates files through the given resolver.
func New(resolver schema.PathResolver, opts ...Option) (*Lookup, error) {
	if resolver == nil {
		return nil, errors.New("path resolver cannot be nil")
	}

	l := &Lookup{
		resolver:         resolver,
		logger:           slog.Default(),
		defaultFile:      DefaultFile,
		defaultDelimiter: DefaultDelimiter,
		defaultEncoding:  DefaultEncoding,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Run processes the terms strictly in order and returns the accumulated
// values. Each term is parsed, its file resolved and scanned independently;
// a vector value is flattened one level, a scalar appended as-is, and a term
// with no matching row contributes its default. The first failing term
// aborts the whole call with no partial results.
func (l *Lookup) Run(terms []string, vars map[string]string) ([]string, error) {
	log := l.logger.With("call_id", uuid.NewString())

	ret := []string{}
	for _, term := range terms {
		key, params, err := l.parseTerm(term)
		if err != nil {
			log.Error("term failed", "term", term, "error", err)
			return nil, fmt.Errorf("term %q: %w", term, err)
		}

		path, err := l.resolver.Resolve(params.File, vars)
		if err != nil {
			log.Error("term failed", "term", term, "error", err)
			return nil, fmt.Errorf("term %q: %w", term, err)
		}

		value, found, err := l.scanFile(path, key, params)
		if err != nil {
			log.Error("term failed", "term", term, "error", err)
			return nil, fmt.Errorf("term %q: %w", term, err)
		}
		if !found {
			log.Debug("no matching row, using default", "key", key, "file", path)
			ret = append(ret, params.Default)
			continue
		}

		log.Debug("row matched", "key", key, "file", path, "col", params.Col)
		ret = append(ret, value.Flatten()...)
	}

	return ret, nil
}
