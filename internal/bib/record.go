// Package bib holds the bibliographic record model and the BibTeX file I/O
// around it: loading collections, and writing the merged output file.
package bib

import (
	"sort"
	"strings"
)

// Author is one author of a record. LastNames holds the last-name tokens in
// order; multi-part last names ("Vander Berg") contribute several tokens.
type Author struct {
	LastNames []string
}

// Record is a single bibliographic entry. Records are immutable once loaded;
// nothing in the matching pipeline writes to them.
type Record struct {
	CiteKey string
	Type    string
	Fields  map[string]string
	Authors []Author
}

// KeyPair joins one cite key from each collection, first file on the left.
// It serves both as a candidate-pair identifier during scoring and as a
// resolved match handed to the writer.
type KeyPair struct {
	First  string
	Second string
}

// LastNameTokens flattens the record's authors into one ordered token
// sequence: author order first, then intra-author name order.
func (r *Record) LastNameTokens() []string {
	var tokens []string
	for _, a := range r.Authors {
		tokens = append(tokens, a.LastNames...)
	}
	return tokens
}

// AllFieldsText concatenates every field value into one space-joined blob,
// with field names sorted so the order is consistent between runs.
func (r *Record) AllFieldsText() string {
	names := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make([]string, 0, len(names))
	for _, name := range names {
		values = append(values, r.Fields[name])
	}
	return strings.Join(values, " ")
}

// Collection is an ordered set of records from one .bib file. Record order
// matches the source file; that order drives candidate enumeration and the
// greedy matcher, so it must stay stable.
type Collection struct {
	Path    string
	records []*Record
	index   map[string]*Record
}

// NewCollection builds a collection from records in file order. Later records
// with a duplicate cite key are dropped; the first occurrence wins.
func NewCollection(path string, records []*Record) *Collection {
	c := &Collection{
		Path:  path,
		index: make(map[string]*Record, len(records)),
	}
	for _, r := range records {
		if _, dup := c.index[r.CiteKey]; dup {
			continue
		}
		c.records = append(c.records, r)
		c.index[r.CiteKey] = r
	}
	return c
}

// Keys returns the cite keys in file order.
func (c *Collection) Keys() []string {
	keys := make([]string, len(c.records))
	for i, r := range c.records {
		keys[i] = r.CiteKey
	}
	return keys
}

// Get returns the record for a cite key.
func (c *Collection) Get(key string) (*Record, bool) {
	r, ok := c.index[key]
	return r, ok
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.records)
}
