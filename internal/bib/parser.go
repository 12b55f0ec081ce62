package bib

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/nickng/bibtex"
)

var authorSeparator = regexp.MustCompile(`(?i)\s+and\s+`)

// Load parses one .bib file into an ordered Collection. The file must exist
// (ErrInputNotFound) and parse cleanly (MalformedSourceError).
func Load(path string) (*Collection, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	parsed, err := bibtex.Parse(f)
	if err != nil {
		return nil, &MalformedSourceError{Path: path, Err: err}
	}

	records := make([]*Record, 0, len(parsed.Entries))
	for _, entry := range parsed.Entries {
		records = append(records, fromEntry(entry))
	}

	c := NewCollection(path, records)
	slog.Debug("Loaded bibtex collection", "path", path, "entries", c.Len())
	return c, nil
}

func fromEntry(entry *bibtex.BibEntry) *Record {
	r := &Record{
		CiteKey: entry.CiteName,
		Type:    entry.Type,
		Fields:  make(map[string]string, len(entry.Fields)),
	}
	for name, value := range entry.Fields {
		r.Fields[strings.ToLower(name)] = value.String()
	}
	r.Authors = parseAuthors(r.Fields["author"])
	return r
}

// parseAuthors splits a BibTeX author field on the "and" keyword and extracts
// last-name tokens per author. "Last, First" names take the capitalized
// tokens before the comma, dropping lowercase von particles; plain
// "First Last" names take the final token.
func parseAuthors(field string) []Author {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil
	}

	var authors []Author
	for _, name := range authorSeparator.Split(field, -1) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if tokens := lastNameTokens(name); len(tokens) > 0 {
			authors = append(authors, Author{LastNames: tokens})
		}
	}
	return authors
}

func lastNameTokens(name string) []string {
	if before, _, found := strings.Cut(name, ","); found {
		tokens := cleanTokens(before)
		trimmed := tokens
		for len(trimmed) > 1 && startsLower(trimmed[0]) {
			trimmed = trimmed[1:]
		}
		return trimmed
	}

	tokens := cleanTokens(name)
	if len(tokens) == 0 {
		return nil
	}
	return tokens[len(tokens)-1:]
}

func cleanTokens(s string) []string {
	fields := strings.Fields(s)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.Trim(f, "{}"); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func startsLower(s string) bool {
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}
