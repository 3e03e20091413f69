package ontgen

import (
	"fmt"
	"io"
	"sort"
)

// Summary holds the aggregate statistics reported after generation.
type Summary struct {
	// Reads is the number of reads in the dataset
	Reads int

	// TotalBases across all reads
	TotalBases int

	// Mean length (integer division)
	Mean int

	// Median length (middle element of the sorted lengths)
	Median int

	// Min and Max lengths
	Min int
	Max int

	// N50 is the length of the shortest read among the longest reads
	// collectively covering half the total bases
	N50 int
}

// Summarize computes the summary statistics for a set of realized read
// lengths. The input slice is not modified
func Summarize(lengths []int, totalBases int) Summary {
	if len(lengths) == 0 {
		return Summary{}
	}

	sorted := append([]int(nil), lengths...)
	sort.Ints(sorted)

	return Summary{
		Reads:      len(sorted),
		TotalBases: totalBases,
		Mean:       totalBases / len(sorted),
		Median:     sorted[len(sorted)/2],
		Min:        sorted[0],
		Max:        sorted[len(sorted)-1],
		N50:        n50(sorted, totalBases),
	}
}

// Summary computes the dataset's aggregate statistics.
func (d *Dataset) Summary() Summary {
	return Summarize(d.Lengths, d.TotalBases)
}

// n50 scans the ascending-sorted lengths from the longest read down,
// accumulating lengths until the running sum first reaches half of the
// total base count, and returns that read's length. The comparison is
// kept in integers: 2*sum >= total is sum >= total/2 without the
// division
func n50(sorted []int, totalBases int) int {
	sum := 0
	for i := len(sorted) - 1; i >= 0; i-- {
		sum += sorted[i]
		if 2*sum >= totalBases {
			return sorted[i]
		}
	}
	return sorted[len(sorted)-1]
}

// Report writes the human-readable summary block
func (s Summary) Report(w io.Writer) {
	fmt.Fprintf(w, "Generated %d ONT reads\n", s.Reads)
	fmt.Fprintf(w, "Total bases: %d\n", s.TotalBases)
	fmt.Fprintf(w, "Mean length: %d\n", s.Mean)
	fmt.Fprintf(w, "Median length: %d\n", s.Median)
	fmt.Fprintf(w, "Min length: %d\n", s.Min)
	fmt.Fprintf(w, "Max length: %d\n", s.Max)
	fmt.Fprintf(w, "N50: %d\n", s.N50)
}
