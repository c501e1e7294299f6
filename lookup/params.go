package lookup

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// parseTerm splits a term into its key and option overrides. The first
// whitespace-separated token is the key; every later token must be a single
// name=value pair naming one of the five recognized options. Anything else
// fails with ErrBadParameter identifying the offending token.
func (l *Lookup) parseTerm(term string) (string, Params, error) {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return "", Params{}, fmt.Errorf("%w: term is empty, expected a lookup key", ErrBadParameter)
	}
	key := fields[0]

	raw := map[string]string{
		"col":       defaultColumn,
		"default":   "",
		"delimiter": l.defaultDelimiter,
		"file":      l.defaultFile,
		"encoding":  l.defaultEncoding,
	}

	for _, tok := range fields[1:] {
		name, value, ok := strings.Cut(tok, "=")
		if !ok || strings.Contains(value, "=") {
			return "", Params{}, fmt.Errorf("%w: malformed option %q, expected name=value", ErrBadParameter, tok)
		}
		if _, known := raw[name]; !known {
			return "", Params{}, fmt.Errorf("%w: unknown option %q", ErrBadParameter, name)
		}
		raw[name] = value
	}

	delim := raw["delimiter"]
	if delim == "TAB" {
		delim = "\t"
	}
	if utf8.RuneCountInString(delim) != 1 {
		return "", Params{}, fmt.Errorf("%w: delimiter %q must be a single character", ErrBadParameter, raw["delimiter"])
	}

	col, err := strconv.Atoi(raw["col"])
	if err != nil || col < 0 {
		return "", Params{}, fmt.Errorf("%w: col %q must be a non-negative integer", ErrBadParameter, raw["col"])
	}

	p := Params{
		Col:       col,
		Default:   raw["default"],
		Delimiter: []rune(delim)[0],
		File:      raw["file"],
		Encoding:  raw["encoding"],
	}
	return key, p, nil
}
