package bib

import (
	"errors"
	"fmt"
)

// ErrInputNotFound reports a source .bib file that does not exist. Wrapped
// with the offending path via fmt.Errorf.
var ErrInputNotFound = errors.New("input file not found")

// ErrOutputExists reports an output path that already exists while overwrite
// was not authorized.
var ErrOutputExists = errors.New("output file already exists")

// MalformedSourceError reports a .bib file the parser could not read.
type MalformedSourceError struct {
	Path string
	Err  error
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("malformed bibtex source %s: %v", e.Path, e.Err)
}

func (e *MalformedSourceError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a record that lacks a field the similarity
// scorers require. The whole run fails; there is no per-record skip.
type MissingFieldError struct {
	CiteKey string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("entry %q has no %s field", e.CiteKey, e.Field)
}
