package cmd

import (
	"fmt"
	"os"

	"github.com/seqbench/ontgen/internal/ontgen"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [file.fastq|file.fastq.gz]",
	Short: "Summarize the read lengths of an existing FASTQ file",
	Long: `Recompute the generation summary (read count, total bases, length
distribution, N50) for an existing FASTQ file, plain or gzipped.`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno FASTQ file passed.")
	}

	lengths, err := ontgen.ScanLengths(args[0])
	if err != nil {
		stderr.Fatalln(err)
	}

	totalBases := 0
	for _, l := range lengths {
		totalBases += l
	}

	ontgen.Summarize(lengths, totalBases).Report(os.Stdout)

	info, err := os.Stat(args[0])
	if err != nil {
		stderr.Fatalln(err)
	}
	fmt.Printf("File: %s (%.1f MB)\n", args[0], float64(info.Size())/1024/1024)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
