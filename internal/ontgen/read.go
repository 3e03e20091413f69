package ontgen

import (
	"fmt"
	"math/rand"
)

// constant metadata fields embedded in every read identifier
const (
	runID           = "dummy_run_001"
	flowCellID      = "FAK00001"
	protocolGroupID = "benchmark"
	sampleID        = "dummy_ont"
)

// Read is a single synthesized sequencing read.
type Read struct {
	// ID is the full identifier line, without the leading '@'
	ID string

	// Seq is the nucleotide sequence over {A,C,G,T,N}
	Seq string

	// Qual is the phred+33 encoded quality string, same length as Seq
	Qual string
}

// readID builds the structured identifier for read index i, in the
// style of ONT basecaller headers: a zero-padded read name followed by
// run metadata key=value fields. The channel is a uniform draw in
// [1, 512]; the synthetic timestamp's seconds field cycles with i
func readID(rng *rand.Rand, i int) string {
	return fmt.Sprintf(
		"ont_read_%06d runid=%s read=%d ch=%d start_time=2024-01-01T00:00:%02dZ flow_cell_id=%s protocol_group_id=%s sample_id=%s",
		i, runID, i, rng.Intn(512)+1, i%60, flowCellID, protocolGroupID, sampleID,
	)
}
