// Package lookup implements a keyed lookup against delimited text files.
// A term names a key plus optional name=value overrides; the lookup scans the
// file for the first row whose first field equals the key and returns the
// value of the configured column, or a default when no row matches.
package lookup

import "errors"

// Built-in option defaults. The file name, delimiter and encoding defaults
// can be overridden per Lookup instance; col and default are fixed.
const (
	DefaultFile      = "ansible.csv"
	DefaultDelimiter = "TAB"
	DefaultEncoding  = "utf-8"

	defaultColumn = "1"
)

var (
	// ErrBadParameter is returned for a malformed or unrecognized option
	// token in a term.
	ErrBadParameter = errors.New("invalid lookup parameter")

	// ErrFileAccess is returned when the lookup file cannot be opened,
	// decoded or parsed.
	ErrFileAccess = errors.New("cannot read lookup file")

	// ErrRowFormat is returned when the requested column lies outside the
	// bounds of the matched row.
	ErrRowFormat = errors.New("column out of range")
)

// Params holds the resolved per-term options after parsing. The delimiter
// has already been translated ("TAB" to a literal tab) and validated to be a
// single character; Col is a non-negative index.
type Params struct {
	Col       int
	Default   string
	Delimiter rune
	File      string
	Encoding  string
}
