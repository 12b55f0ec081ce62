package bib

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testCollections() (*Collection, *Collection) {
	first := NewCollection("first.bib", []*Record{
		{
			CiteKey: "smit54",
			Type:    "article",
			Fields: map[string]string{
				"author": "Smith, John",
				"title":  "A Theory of Information Retrieval",
				"year":   "1954",
			},
		},
	})
	second := NewCollection("second.bib", []*Record{
		{
			CiteKey: "smit55",
			Type:    "article",
			Fields: map[string]string{
				"author": "Smith, John",
				"title":  "Theory of Information Retrieval",
				"year":   "1955",
			},
		},
	})
	return first, second
}

func TestWriteMerged(t *testing.T) {
	first, second := testCollections()
	path := filepath.Join(t.TempDir(), "merged.bib")
	pairs := []KeyPair{{First: "smit54", Second: "smit55"}}

	if err := WriteMerged(path, pairs, first, second, WriteOptions{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "GENERATED BY BIBMERGE") {
		t.Error("Expected banner in output")
	}
	if !strings.Contains(out, "%%% START GROUP 0 %%%") || !strings.Contains(out, "%%% END GROUP 0 %%%") {
		t.Error("Expected group markers in output")
	}
	// First collection's entry is canonical by default.
	if !strings.Contains(out, "@article{smit54,") {
		t.Error("Expected first entry to be written verbatim")
	}
	// Second collection's entry is commented out, with the @ dropped.
	if !strings.Contains(out, "%article{smit55,") {
		t.Error("Expected second entry to be commented out")
	}
	if strings.Contains(out, "@article{smit55,") {
		t.Error("Second entry must not appear uncommented")
	}
}

func TestWriteMergedPreferSecond(t *testing.T) {
	first, second := testCollections()
	path := filepath.Join(t.TempDir(), "merged.bib")
	pairs := []KeyPair{{First: "smit54", Second: "smit55"}}

	opts := WriteOptions{PreferSecond: true}
	if err := WriteMerged(path, pairs, first, second, opts); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "@article{smit55,") {
		t.Error("Expected second entry to be written verbatim")
	}
	if !strings.Contains(out, "%article{smit54,") {
		t.Error("Expected first entry to be commented out")
	}
}

func TestWriteMergedRefusesOverwrite(t *testing.T) {
	first, second := testCollections()
	path := filepath.Join(t.TempDir(), "merged.bib")
	if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
		t.Fatalf("Failed to seed existing file: %v", err)
	}

	err := WriteMerged(path, nil, first, second, WriteOptions{})
	if !errors.Is(err, ErrOutputExists) {
		t.Fatalf("Expected ErrOutputExists, got %v", err)
	}

	// With overwrite authorized the same write succeeds.
	if err := WriteMerged(path, nil, first, second, WriteOptions{Overwrite: true}); err != nil {
		t.Errorf("Unexpected error with overwrite: %v", err)
	}
}

func TestWriteMergedDryRun(t *testing.T) {
	first, second := testCollections()
	path := filepath.Join(t.TempDir(), "merged.bib")
	pairs := []KeyPair{{First: "smit54", Second: "smit55"}}

	opts := WriteOptions{DryRun: true}
	if err := WriteMerged(path, pairs, first, second, opts); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("Expected dry run to write nothing")
	}
}

func TestWriteMergedUnknownKey(t *testing.T) {
	first, second := testCollections()
	path := filepath.Join(t.TempDir(), "merged.bib")
	pairs := []KeyPair{{First: "ghost", Second: "smit55"}}

	if err := WriteMerged(path, pairs, first, second, WriteOptions{}); err == nil {
		t.Error("Expected error for unknown key")
	}
}

func TestFormatEntry(t *testing.T) {
	r := &Record{
		CiteKey: "smit54",
		Type:    "article",
		Fields: map[string]string{
			"year":   "1954",
			"author": "Smith, John",
		},
	}

	// Fields come out sorted by name.
	expected := "@article{smit54,\n  author = {Smith, John},\n  year = {1954},\n}\n"
	if got := FormatEntry(r); got != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, got)
	}
}
