package mergecmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecuteInspectYAML(t *testing.T) {
	first, second, _ := writeInputs(t)
	output := filepath.Join(t.TempDir(), "scores.yaml")

	opts := InspectOptions{Format: "yaml", Output: output, IncludeAll: true, Concurrency: 2}
	if err := ExecuteInspect(first, second, opts); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read report: %v", err)
	}
	out := string(data)

	// Full cross product: 2 x 3 pairs.
	if !strings.Contains(out, "totalpairs: 6") {
		t.Errorf("Expected 6 total pairs in report:\n%s", out)
	}
	for _, key := range []string{"smit54", "smit55", "jame76", "gree00"} {
		if !strings.Contains(out, key) {
			t.Errorf("Expected key %q in report", key)
		}
	}
}

func TestExecuteInspectParquet(t *testing.T) {
	first, second, _ := writeInputs(t)
	output := filepath.Join(t.TempDir(), "scores.parquet")

	opts := InspectOptions{Format: "parquet", Output: output, Concurrency: 2}
	if err := ExecuteInspect(first, second, opts); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	info, err := os.Stat(output)
	if err != nil {
		t.Fatalf("Expected parquet report to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected parquet report to be non-empty")
	}
}

func TestExecuteInspectText(t *testing.T) {
	first, second, _ := writeInputs(t)

	opts := InspectOptions{Format: "text", Concurrency: 2}
	if err := ExecuteInspect(first, second, opts); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestExecuteInspectBadFormat(t *testing.T) {
	first, second, _ := writeInputs(t)

	if err := ExecuteInspect(first, second, InspectOptions{Format: "csv"}); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestExecuteInspectFileFormatRequiresOutput(t *testing.T) {
	first, second, _ := writeInputs(t)

	for _, format := range []string{"yaml", "parquet"} {
		if err := ExecuteInspect(first, second, InspectOptions{Format: format}); err == nil {
			t.Errorf("Expected error when --output missing for %s", format)
		}
	}
}
