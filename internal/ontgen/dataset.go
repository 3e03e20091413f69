package ontgen

import (
	"io"
	"math/rand"

	"gopkg.in/cheggaaa/pb.v1"
)

// Dataset is the ordered collection of generated reads plus the
// aggregates accumulated while generating them.
type Dataset struct {
	// Reads in generation order
	Reads []Read

	// TotalBases is the sum of realized sequence lengths
	TotalBases int

	// Lengths holds the realized length of each read, in generation
	// order
	Lengths []int
}

// Generate synthesizes count reads from the seeded generator. Each read
// draws, in order: a length, an adapter placement, the sequence bases,
// the quality values, and the identifier's channel number. Statistics
// accumulate the realized (post-adapter) sequence length, not the
// sampled one. A progress bar is drawn on progress when it is non-nil
func Generate(rng *rand.Rand, count int, progress io.Writer) *Dataset {
	var pbar *pb.ProgressBar
	if progress != nil {
		pbar = pb.New(count)
		pbar.Output = progress
		pbar.Start()
		defer pbar.Finish()
	}

	d := &Dataset{
		Reads:   make([]Read, 0, count),
		Lengths: make([]int, 0, count),
	}

	for i := 0; i < count; i++ {
		length := sampleLength(rng)
		seq := synthesizeSeq(rng, length, samplePlacement(rng))
		qual := synthesizeQual(rng, len(seq))

		d.Reads = append(d.Reads, Read{
			ID:   readID(rng, i),
			Seq:  string(seq),
			Qual: string(qual),
		})
		d.TotalBases += len(seq)
		d.Lengths = append(d.Lengths, len(seq))

		if pbar != nil {
			pbar.Increment()
		}
	}

	return d
}
