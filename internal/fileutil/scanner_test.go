package fileutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestScan(t *testing.T) {
	tmpDir := t.TempDir()

	// Test tree:
	// tmpDir/
	//   MSHR100_1.fastq.gz
	//   MSHR200_2.fastq.gz
	//   notes.txt
	//   .hidden/
	//     MSHR300_1.fastq.gz
	//   batch/
	//     MSHR100_1.fastq.gz
	testFiles := []string{
		"MSHR100_1.fastq.gz",
		"MSHR200_2.fastq.gz",
		"notes.txt",
		".hidden/MSHR300_1.fastq.gz",
		"batch/MSHR100_1.fastq.gz",
	}
	for _, f := range testFiles {
		path := filepath.Join(tmpDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}

	tests := []struct {
		name      string
		pattern   string
		wantPaths []string // relative to tmpDir, sorted
	}{
		{
			name:    "match everything includes directories and hidden entries",
			pattern: "*",
			wantPaths: []string{
				".hidden",
				".hidden/MSHR300_1.fastq.gz",
				"MSHR100_1.fastq.gz",
				"MSHR200_2.fastq.gz",
				"batch",
				"batch/MSHR100_1.fastq.gz",
				"notes.txt",
			},
		},
		{
			name:    "glob against base name only",
			pattern: "*.fastq.gz",
			wantPaths: []string{
				".hidden/MSHR300_1.fastq.gz",
				"MSHR100_1.fastq.gz",
				"MSHR200_2.fastq.gz",
				"batch/MSHR100_1.fastq.gz",
			},
		},
		{
			name:      "no matches",
			pattern:   "*.bam",
			wantPaths: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, err := Scan(tmpDir, tt.pattern)
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}

			got := make([]string, 0, len(candidates))
			for _, c := range candidates {
				rel, err := filepath.Rel(tmpDir, c.Path)
				if err != nil {
					t.Fatalf("failed to relativize %s: %v", c.Path, err)
				}
				got = append(got, filepath.ToSlash(rel))
			}
			sort.Strings(got)

			if len(got) != len(tt.wantPaths) {
				t.Fatalf("Scan() returned %d entries, want %d: %v", len(got), len(tt.wantPaths), got)
			}
			for i, want := range tt.wantPaths {
				if got[i] != want {
					t.Errorf("entry %d = %q, want %q", i, got[i], want)
				}
			}
		})
	}
}

func TestScanExcludesRootItself(t *testing.T) {
	tmpDir := t.TempDir()
	candidates, err := Scan(tmpDir, "*")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("expected empty scan of empty directory, got %v", candidates)
	}
}

func TestScanCapturesModTime(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "MSHR1_1.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	candidates, err := Scan(tmpDir, "*")
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if !candidates[0].ModTime.Equal(fi.ModTime()) {
		t.Errorf("ModTime = %v, want %v", candidates[0].ModTime, fi.ModTime())
	}
}

func TestScanInvalidPattern(t *testing.T) {
	if _, err := Scan(t.TempDir(), "[unclosed"); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}

func TestScanMissingRoot(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "nope"), "*"); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestScanRootIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if _, err := Scan(path, "*"); err == nil {
		t.Fatal("expected error when root is a regular file")
	}
}

func TestCandidateName(t *testing.T) {
	c := Candidate{Path: filepath.Join("a", "b", "MSHR1_1.txt")}
	if c.Name() != "MSHR1_1.txt" {
		t.Errorf("Name() = %q, want %q", c.Name(), "MSHR1_1.txt")
	}
}
