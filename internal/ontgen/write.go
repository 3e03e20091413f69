package ontgen

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
)

// Encoding selects the byte stream an output file is written through.
type Encoding int

const (
	// EncPlain writes the FASTQ text as-is
	EncPlain Encoding = iota

	// EncGzip writes the same text through a gzip stream
	EncGzip

	// EncSnappy writes the same text through a snappy stream
	EncSnappy
)

// WriteFASTQ writes one four-line FASTQ record per read, in collection
// order, to filename. Compressed encodings carry byte-identical text:
// decompressing the output reproduces the plain encoding exactly
func WriteFASTQ(filename string, reads []Read, enc Encoding) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	var w io.Writer = f
	var comp io.WriteCloser
	switch enc {
	case EncGzip:
		comp = gzip.NewWriter(f)
		w = comp
	case EncSnappy:
		comp = snappy.NewBufferedWriter(f)
		w = comp
	}

	buf := bufio.NewWriter(w)
	for i := range reads {
		r := &reads[i]
		if _, err := fmt.Fprintf(buf, "@%s\n%s\n+\n%s\n", r.ID, r.Seq, r.Qual); err != nil {
			f.Close()
			return err
		}
	}

	if err := buf.Flush(); err != nil {
		f.Close()
		return err
	}
	if comp != nil {
		if err := comp.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}
