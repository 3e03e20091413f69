// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/viper"
)

// defaults for the canonical benchmark dataset; a flag-less
// "ontgen generate" uses exactly these
const (
	// DefaultSeed anchors reproducibility
	DefaultSeed = 42

	// DefaultReads is the dataset size
	DefaultReads = 10000

	// DefaultName is the output files' basename
	DefaultName = "ont_10k"
)

// Config is the root-level settings struct, populated from the command
// line via Viper.
type Config struct {
	// the seed for the run's random generator
	Seed int64 `mapstructure:"seed"`

	// the number of reads to generate
	Reads int `mapstructure:"reads"`

	// the directory both output files are written to
	OutDir string `mapstructure:"out"`

	// the basename of the output files
	Name string `mapstructure:"name"`

	// whether to also write a snappy-compressed output
	Snappy bool `mapstructure:"snappy"`

	// whether to suppress the progress bar
	Quiet bool `mapstructure:"quiet"`
}

// NewConfig returns a new Config struct populated by Viper settings
// bound from command line arguments
func NewConfig() Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}

// FastqPath is the plain-text FASTQ output path.
func (c Config) FastqPath() string {
	return filepath.Join(c.OutDir, c.Name+".fastq")
}

// GzipPath is the gzip-compressed FASTQ output path.
func (c Config) GzipPath() string {
	return c.FastqPath() + ".gz"
}

// SnappyPath is the snappy-compressed FASTQ output path.
func (c Config) SnappyPath() string {
	return c.FastqPath() + ".sz"
}
