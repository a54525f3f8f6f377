package cmd

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bio-rcmatch/rcmatch/internal/pairing"
)

// fileDefaults mirrors the subset of pairing.Config a user may override
// through a TOML defaults file (spec.md §6's flags, minus the fixed
// chaining constants).
type fileDefaults struct {
	Threads    *int     `toml:"threads"`
	Alpha      *float64 `toml:"alpha"`
	Beta       *float64 `toml:"beta"`
	KmerLen    *int     `toml:"kmer-len"`
	WindowLen  *int     `toml:"window-len"`
	FilterFreq *float64 `toml:"filter-freq"`
}

func loadFileDefaults(path string) (*fileDefaults, error) {
	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return &fileDefaults{}, nil
		}
		candidate := filepath.Join(home, ".rcmatch.toml")
		if _, err := os.Stat(candidate); err != nil {
			return &fileDefaults{}, nil
		}
		path = candidate
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}

	var fd fileDefaults
	if err := toml.Unmarshal(data, &fd); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return &fd, nil
}

// configFromFlags builds a pairing.Config from a TOML defaults file
// overlaid with whatever flags the user actually set on the command
// line (explicit flags always win).
func configFromFlags(cmd *cobra.Command) (pairing.Config, error) {
	cfg := pairing.DefaultConfig()

	fd, err := loadFileDefaults(getFlagString(cmd, "config"))
	if err != nil {
		return cfg, err
	}
	if fd.Threads != nil {
		cfg.Threads = *fd.Threads
	}
	if fd.Alpha != nil {
		cfg.AlphaP = *fd.Alpha
	}
	if fd.Beta != nil {
		cfg.BetaP = *fd.Beta
	}
	if fd.KmerLen != nil {
		cfg.KmerLen = uint32(*fd.KmerLen)
	}
	if fd.WindowLen != nil {
		cfg.WindowLen = uint32(*fd.WindowLen)
	}
	if fd.FilterFreq != nil {
		cfg.FilterFreq = *fd.FilterFreq
	}

	flags := cmd.Flags()
	if flags.Changed("threads") {
		cfg.Threads = getFlagPositiveInt(cmd, "threads")
	}
	if flags.Changed("alpha") {
		cfg.AlphaP = getFlagFloat64(cmd, "alpha")
	}
	if flags.Changed("beta") {
		cfg.BetaP = getFlagFloat64(cmd, "beta")
	}
	if flags.Changed("kmer-len") {
		cfg.KmerLen = uint32(getFlagPositiveInt(cmd, "kmer-len"))
	}
	if flags.Changed("window-len") {
		cfg.WindowLen = uint32(getFlagPositiveInt(cmd, "window-len"))
	}
	if flags.Changed("filter-freq") {
		cfg.FilterFreq = getFlagFloat64(cmd, "filter-freq")
	}

	return cfg, nil
}
