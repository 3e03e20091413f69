package ontgen

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// scanner token limit; realized reads stay under maxLength plus both
// adapters, 4MB leaves plenty of headroom
const maxLineBytes = 4 * 1024 * 1024

// ScanLengths reads an existing FASTQ file, plain or gzipped (detected
// by the .gz suffix), and returns each record's sequence length in file
// order. Truncated records and sequence/quality length mismatches are
// errors
func ScanLengths(filename string) ([]int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lengths []int
	for record := 0; sc.Scan(); record++ {
		header := sc.Text()
		if !strings.HasPrefix(header, "@") {
			return nil, fmt.Errorf("record %d: header %q does not start with '@'", record, header)
		}

		lines := [3]string{}
		for i := range lines {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, err
				}
				return nil, fmt.Errorf("record %d: truncated after %d of 4 lines", record, i+1)
			}
			lines[i] = sc.Text()
		}
		seq, sep, qual := lines[0], lines[1], lines[2]

		if !strings.HasPrefix(sep, "+") {
			return nil, fmt.Errorf("record %d: separator %q does not start with '+'", record, sep)
		}
		if len(seq) != len(qual) {
			return nil, fmt.Errorf("record %d: sequence length %d != quality length %d", record, len(seq), len(qual))
		}

		lengths = append(lengths, len(seq))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lengths, nil
}
