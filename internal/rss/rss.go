// Package rss reports the process's peak resident set size, grounded in
// the same instrumentation the original prototype's eval harness used
// (peak_memory_gib in ref_mapping_stats.py) but read directly from the
// kernel instead of sampled externally.
package rss

import "golang.org/x/sys/unix"

// PeakBytes returns the process's peak RSS in bytes. On Linux,
// Getrusage's Maxrss is reported in kilobytes; on Darwin it is bytes.
// We assume Linux, the deployment target for this pipeline.
func PeakBytes() (uint64, error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, err
	}
	return uint64(ru.Maxrss) * 1024, nil
}
