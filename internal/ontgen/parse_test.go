package ontgen

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestScanLengths(t *testing.T) {
	d := Generate(NewRand(42), 100, nil)
	dir := t.TempDir()

	plain := filepath.Join(dir, "reads.fastq")
	compressed := filepath.Join(dir, "reads.fastq.gz")
	if err := WriteFASTQ(plain, d.Reads, EncPlain); err != nil {
		t.Fatal(err)
	}
	if err := WriteFASTQ(compressed, d.Reads, EncGzip); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"plain", plain},
		{"gzipped", compressed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lengths, err := ScanLengths(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(lengths, d.Lengths) {
				t.Error("ScanLengths() does not round-trip the generated lengths")
			}
		})
	}
}

func TestScanLengths_malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"missing @ on header",
			"ont_read_000000\nACGT\n+\n!!!!\n",
		},
		{
			"truncated record",
			"@ont_read_000000\nACGT\n+\n",
		},
		{
			"bad separator",
			"@ont_read_000000\nACGT\n-\n!!!!\n",
		},
		{
			"length mismatch",
			"@ont_read_000000\nACGT\n+\n!!!\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.fastq")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			if _, err := ScanLengths(path); err == nil {
				t.Error("ScanLengths() accepted a malformed file, want error")
			}
		})
	}
}

func TestScanLengths_missingFile(t *testing.T) {
	if _, err := ScanLengths(filepath.Join(t.TempDir(), "nope.fastq")); err == nil {
		t.Error("ScanLengths() on a missing file succeeded, want error")
	}
}
