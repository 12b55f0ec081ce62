// Package report renders candidate-pair scores for threshold tuning. It
// mirrors the merge pipeline's scoring but keeps every pair visible, so a
// user can see what the 0.70 cutoff kept and dropped.
package report

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/bibtools/bibmerge/internal/similarity"
	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// Config describes the run that produced a score report.
type Config struct {
	FirstFile   string  `yaml:"firstfile"`
	SecondFile  string  `yaml:"secondfile"`
	Threshold   float64 `yaml:"threshold"`
	TotalPairs  int     `yaml:"totalpairs"`
	KeptPairs   int     `yaml:"keptpairs"`
	IncludesAll bool    `yaml:"includesall"`
	Timestamp   string  `yaml:"timestamp"`
}

// Row is one scored candidate pair.
type Row struct {
	First     string  `yaml:"first" parquet:"first"`
	Second    string  `yaml:"second" parquet:"second"`
	Title     float64 `yaml:"title" parquet:"title"`
	Author    float64 `yaml:"author" parquet:"author"`
	Field     float64 `yaml:"field" parquet:"field"`
	Aggregate float64 `yaml:"aggregate" parquet:"aggregate"`
	Kept      bool    `yaml:"kept" parquet:"kept"`
}

// ScoreReport is the full report: run configuration plus one row per pair.
type ScoreReport struct {
	Config Config `yaml:"config"`
	Pairs  []Row  `yaml:"pairs"`
}

// Build converts raw pair scores into a report. With includeAll false only
// pairs at or above the threshold are listed; the counts in Config always
// cover the full cross product.
func Build(firstFile, secondFile string, scores []similarity.PairScore, includeAll bool) *ScoreReport {
	r := &ScoreReport{
		Config: Config{
			FirstFile:   firstFile,
			SecondFile:  secondFile,
			Threshold:   similarity.Threshold,
			TotalPairs:  len(scores),
			IncludesAll: includeAll,
			Timestamp:   time.Now().Format("2006-01-02_15-04-05"),
		},
	}

	for _, s := range scores {
		kept := s.Aggregate >= similarity.Threshold
		if kept {
			r.Config.KeptPairs++
		}
		if !kept && !includeAll {
			continue
		}
		r.Pairs = append(r.Pairs, Row{
			First:     s.Pair.First,
			Second:    s.Pair.Second,
			Title:     s.Signals.Title,
			Author:    s.Signals.Author,
			Field:     s.Signals.Field,
			Aggregate: s.Aggregate,
			Kept:      kept,
		})
	}

	return r
}

// WriteYAML saves the report to a YAML file.
func (r *ScoreReport) WriteYAML(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}
	return nil
}

// WriteParquet saves the report rows to a Parquet file.
func (r *ScoreReport) WriteParquet(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}

	writer := parquet.NewGenericWriter[Row](f)
	if _, err := writer.Write(r.Pairs); err != nil {
		f.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		f.Close()
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return f.Close()
}

// PrintText prints a human-readable summary of the report to stdout.
func (r *ScoreReport) PrintText() {
	fmt.Println("========================================")
	fmt.Println("Candidate Pair Score Report")
	fmt.Println("========================================")
	fmt.Printf("First file:   %s\n", r.Config.FirstFile)
	fmt.Printf("Second file:  %s\n", r.Config.SecondFile)
	fmt.Printf("Total pairs:  %d\n", r.Config.TotalPairs)
	fmt.Printf("Kept pairs:   %d (threshold %.2f)\n", r.Config.KeptPairs, r.Config.Threshold)
	fmt.Println()

	if len(r.Pairs) == 0 {
		fmt.Println("No pairs to show.")
		return
	}

	rows := make([]Row, len(r.Pairs))
	copy(rows, r.Pairs)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Aggregate != rows[j].Aggregate {
			return rows[i].Aggregate > rows[j].Aggregate
		}
		if rows[i].First != rows[j].First {
			return rows[i].First < rows[j].First
		}
		return rows[i].Second < rows[j].Second
	})

	fmt.Printf("%-20s %-20s %8s %8s %8s %10s %s\n",
		"FIRST", "SECOND", "TITLE", "AUTHOR", "FIELD", "AGGREGATE", "KEPT")
	for _, row := range rows {
		kept := ""
		if row.Kept {
			kept = "yes"
		}
		fmt.Printf("%-20s %-20s %8.3f %8.3f %8.3f %10.3f %s\n",
			row.First, row.Second, row.Title, row.Author, row.Field, row.Aggregate, kept)
	}
}
