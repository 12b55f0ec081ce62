package bib

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
)

// WriteOptions controls how the merged output file is produced.
type WriteOptions struct {
	// PreferSecond writes the second collection's entry as the canonical one
	// and comments out the first; by default the first collection wins.
	PreferSecond bool
	// Overwrite authorizes replacing an existing output file.
	Overwrite bool
	// DryRun logs the planned actions without writing anything.
	DryRun bool
}

// CheckOutput refuses an output path that already exists unless overwrite is
// authorized. Callers run this before any computation so a doomed run fails
// fast.
func CheckOutput(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	}
	return nil
}

// WriteMerged writes the merged .bib file: for every matched key pair, the
// preferred side's entry verbatim followed by the other side's entry with
// every line commented out, so no information is lost in the merge.
func WriteMerged(path string, pairs []KeyPair, first, second *Collection, opts WriteOptions) error {
	if err := CheckOutput(path, opts.Overwrite); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(banner())

	for i, pair := range pairs {
		keep, ok := first.Get(pair.First)
		if !ok {
			return fmt.Errorf("key %q not present in %s", pair.First, first.Path)
		}
		comment, ok := second.Get(pair.Second)
		if !ok {
			return fmt.Errorf("key %q not present in %s", pair.Second, second.Path)
		}
		if opts.PreferSecond {
			keep, comment = comment, keep
		}

		slog.Info("Writing merged group",
			"group", i, "kept", keep.CiteKey, "commented", comment.CiteKey)

		b.WriteString(fmt.Sprintf("%%%%%% START GROUP %d %%%%%%\n\n", i))
		b.WriteString(FormatEntry(keep))
		b.WriteString("\n")
		b.WriteString(commentedEntry(comment))
		b.WriteString(fmt.Sprintf("%%%%%% END GROUP %d %%%%%%\n\n", i))
	}

	if opts.DryRun {
		slog.Info("Dry run: skipping output file", "path", path, "groups", len(pairs))
		return nil
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// FormatEntry renders one record as a BibTeX entry with sorted field names.
func FormatEntry(r *Record) string {
	names := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", r.Type, r.CiteKey)
	for _, name := range names {
		fmt.Fprintf(&b, "  %s = {%s},\n", name, r.Fields[name])
	}
	b.WriteString("}\n")
	return b.String()
}

// commentedEntry renders a record with every line prefixed with "%". The
// leading "@" is dropped so lenient parsers do not mistake the comment for a
// real entry.
func commentedEntry(r *Record) string {
	entry := strings.TrimPrefix(FormatEntry(r), "@")
	entry = strings.TrimSpace(entry)
	return "%" + strings.ReplaceAll(entry, "\n", "\n%") + "\n\n"
}

func banner() string {
	title := "%%% GENERATED BY BIBMERGE %%%"
	bar := strings.Repeat("%", len(title))
	return bar + "\n" + title + "\n" + bar + "\n\n"
}
