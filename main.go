package main

import (
	"github.com/seqbench/ontgen/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
