// Command rcmatch finds pairs of reads that are reverse complements of
// one another across a read set, using minimizer sketches, a
// hash-indexed lookup, and LIS-based chaining.
package main

import "github.com/bio-rcmatch/rcmatch/cmd"

func main() {
	cmd.Execute()
}
