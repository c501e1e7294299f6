package lookup

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	textencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/sevigo/csvlookup/schema"
)

// scanFile reads the file at path row by row and returns the value at
// p.Col of the first row whose first field equals key exactly. The second
// return value reports whether any row matched; a clean end of file without
// a match is not an error.
func (l *Lookup) scanFile(path, key string, p Params) (schema.Value, bool, error) {
	enc, err := htmlindex.Get(p.Encoding)
	if err != nil {
		return schema.Value{}, false, fmt.Errorf("%w: unknown encoding %q", ErrFileAccess, p.Encoding)
	}

	f, err := os.Open(path)
	if err != nil {
		return schema.Value{}, false, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	// UTF-8 input needs no conversion, but invalid bytes must still be
	// fatal rather than replaced with U+FFFD.
	var tr transform.Transformer = enc.NewDecoder()
	if enc == unicode.UTF8 {
		tr = textencoding.UTF8Validator
	}

	reader := csv.NewReader(transform.NewReader(f, tr))
	reader.Comma = p.Delimiter
	reader.FieldsPerRecord = -1

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return schema.Value{}, false, fmt.Errorf("%w: parsing %s: %w", ErrFileAccess, path, err)
		}
		if len(row) == 0 || row[0] != key {
			continue
		}
		if p.Col >= len(row) {
			return schema.Value{}, false, fmt.Errorf("%w: col %d requested but matched row in %s has only %d fields",
				ErrRowFormat, p.Col, path, len(row))
		}
		return schema.Scalar(row[p.Col]), true, nil
	}

	return schema.Value{}, false, nil
}
