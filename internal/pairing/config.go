package pairing

import "fmt"

// Config holds the tunables exposed on the command line (spec.md §6) plus
// the fixed per-target chaining parameters used by the query mapper
// (spec.md §4.5 step 6).
type Config struct {
	// Threads bounds the size of every fork-join worker pool used by the
	// pipeline.
	Threads int

	// AlphaP (α) is the length-ratio tolerance: pairs with
	// min(Lq,Lt)/max(Lq,Lt) < 1-AlphaP are dropped.
	AlphaP float64

	// BetaP (β) is the minimum per-read fractional span coverage required
	// for an overlap to be considered strong.
	BetaP float64

	// KmerLen is k, the minimizer k-mer length. 1 <= KmerLen <= 32.
	KmerLen uint32

	// WindowLen is w, the minimizer window length. WindowLen >= 1.
	WindowLen uint32

	// FilterFreq (f) is the fraction of most-frequent distinct k-mer
	// values excluded from matching by the frequency threshold.
	FilterFreq float64

	// IndexSizeCap bounds the number of bases indexed per batch (default
	// 1<<30, spec.md §4.6).
	IndexSizeCap uint64

	// MinChainLength and MaxChainGapLength are the mapper's fixed
	// chaining parameters (spec.md §4.5 step 6: 4 and 800).
	MinChainLength    uint32
	MaxChainGapLength uint32
}

// DefaultConfig mirrors the CLI defaults in spec.md §6.
func DefaultConfig() Config {
	return Config{
		Threads:           1,
		AlphaP:            0.10,
		BetaP:             0.90,
		KmerLen:           15,
		WindowLen:         5,
		FilterFreq:        0.0002,
		IndexSizeCap:      1 << 30,
		MinChainLength:    4,
		MaxChainGapLength: 800,
	}
}

// CheckConfig validates the fields a CLI caller can set, matching the
// Options-struct + validator idiom used throughout this pipeline's
// components.
func CheckConfig(cfg Config) error {
	if cfg.Threads < 1 {
		return fmt.Errorf("threads must be >= 1, got %d", cfg.Threads)
	}
	if cfg.KmerLen < 1 || cfg.KmerLen > 32 {
		return fmt.Errorf("k must satisfy 1 <= k <= 32, got %d", cfg.KmerLen)
	}
	if cfg.WindowLen < 1 {
		return fmt.Errorf("w must be >= 1, got %d", cfg.WindowLen)
	}
	if cfg.AlphaP < 0 || cfg.AlphaP > 1 {
		return fmt.Errorf("alpha must be in [0,1], got %v", cfg.AlphaP)
	}
	if cfg.BetaP < 0 || cfg.BetaP > 1 {
		return fmt.Errorf("beta must be in [0,1], got %v", cfg.BetaP)
	}
	if cfg.FilterFreq < 0 || cfg.FilterFreq > 1 {
		return fmt.Errorf("filter frequency must be in [0,1], got %v", cfg.FilterFreq)
	}
	if cfg.IndexSizeCap == 0 {
		return fmt.Errorf("index size cap must be > 0")
	}
	return nil
}

// ChainConfig is the contract parameter of the chainer (spec.md §4.3).
type ChainConfig struct {
	MinChainLength    uint32
	MaxChainGapLength uint32
	KmerLen           uint32
}

func (cfg Config) chainConfig() ChainConfig {
	return ChainConfig{
		MinChainLength:    cfg.MinChainLength,
		MaxChainGapLength: cfg.MaxChainGapLength,
		KmerLen:           cfg.KmerLen,
	}
}
