package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	return root
}

func TestSearchPrintsOnePathPerLine(t *testing.T) {
	root := buildTree(t,
		"MSHR100_1.fastq.gz",
		"batch/MSHR200_2.fastq.gz",
		"notes.txt",
	)

	out, err := execute(t, "search", "--root", root)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, "MSHR")
	}
}

func TestSearchWithPattern(t *testing.T) {
	root := buildTree(t,
		"MSHR100_1.fastq.gz",
		"MSHR100_1.bam",
	)

	out, err := execute(t, "search", "-r", root, "-p", "*.bam")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "MSHR100_1.bam"), strings.TrimSpace(out))
}

func TestSearchWithIDListFile(t *testing.T) {
	root := buildTree(t,
		"MSHR100_1.fastq.gz",
		"MSHR200_2.fastq.gz",
	)
	idFile := filepath.Join(t.TempDir(), "ids.txt")
	require.NoError(t, os.WriteFile(idFile, []byte("200"), 0644))

	out, err := execute(t, "search", "-r", root, "-f", idFile)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "MSHR200_2.fastq.gz"), strings.TrimSpace(out))
}

func TestSearchMissingIDListFileIsUsageError(t *testing.T) {
	root := buildTree(t, "MSHR100_1.fastq.gz")

	_, err := execute(t, "search", "-r", root, "-f", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)

	var usageErr *UsageError
	require.ErrorAs(t, err, &usageErr)
	assert.Contains(t, usageErr.Message, "doesn't exist")
}

func TestSearchYAMLFormat(t *testing.T) {
	root := buildTree(t, "MSHR100_1.fastq.gz")

	out, err := execute(t, "search", "-r", root, "--format", "yaml")
	require.NoError(t, err)

	var report searchReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, root, report.Root)
	assert.Equal(t, "*", report.Pattern)
	assert.Equal(t, []string{filepath.Join(root, "MSHR100_1.fastq.gz")}, report.Paths)
}

func TestSearchUnknownFormat(t *testing.T) {
	root := buildTree(t, "MSHR100_1.fastq.gz")

	_, err := execute(t, "search", "-r", root, "--format", "csv")
	require.Error(t, err)

	var usageErr *UsageError
	assert.ErrorAs(t, err, &usageErr)
}
