package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bio-rcmatch/rcmatch/internal/pairing"
)

var statsCmd = &cobra.Command{
	Use:   "stats <pairs.csv> <reads path>",
	Short: "summarize overlap lengths and error ratios for a finished run",
	Long: `stats

Recomputes the overlap behind every pair in a name_a,name_b file
produced by 'rcmatch', and reports the mean and standard
deviation of overlap length and overlap error across the run
(the non-ground-truth half of the original prototype's eval harness).
`,
	Args: cobra.ExactArgs(2),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().String("histogram", "",
		formatFlagUsage("Write a PNG histogram of overlap error ratios to this path."))
}

func runStats(cmd *cobra.Command, args []string) error {
	pairsFile, readsPath := args[0], args[1]

	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	files, err := listReadFiles(readsPath, cfg.Threads)
	if err != nil {
		return err
	}
	reads, err := loadReads(files)
	if err != nil {
		return err
	}
	byName := make(map[string]*pairing.Read, len(reads))
	for _, r := range reads {
		byName[r.Name] = r
	}

	pairs, err := readPairsFile(pairsFile)
	if err != nil {
		return err
	}

	var lengths, errs []float64
	for _, p := range pairs {
		a, okA := byName[p.Lhs]
		b, okB := byName[p.Rhs]
		if !okA || !okB {
			log.Warningf("skipping pair (%s,%s): read not found in %s", p.Lhs, p.Rhs, readsPath)
			continue
		}
		ov, ok := recomputeOverlap(cfg, a, b)
		if !ok {
			continue
		}
		lengths = append(lengths, float64(pairing.OverlapLength(ov)))
		errs = append(errs, pairing.OverlapError(ov))
	}

	if len(lengths) == 0 {
		fmt.Fprintln(os.Stderr, "no pairs could be recomputed")
		return nil
	}

	lenMean, lenStd := stat.MeanStdDev(lengths, nil)
	errMean, errStd := stat.MeanStdDev(errs, nil)
	fmt.Fprintf(os.Stderr, "pairs: %d\n", len(lengths))
	fmt.Fprintf(os.Stderr, "overlap length: mean=%.1f stdev=%.1f\n", lenMean, lenStd)
	fmt.Fprintf(os.Stderr, "overlap error:  mean=%.4f stdev=%.4f\n", errMean, errStd)

	if histPath := getFlagString(cmd, "histogram"); histPath != "" {
		if err := writeHistogram(histPath, errs); err != nil {
			return errors.Wrap(err, "writing histogram")
		}
	}
	return nil
}

// recomputeOverlap builds an index over the reverse complements of both
// reads and maps a (id 0) against it; the identity guard leaves b (id 1)
// as a's only possible target. This mirrors the orchestrator's per-batch
// index/map step but scoped to one pair.
func recomputeOverlap(cfg pairing.Config, a, b *pairing.Read) (pairing.Overlap, bool) {
	a2 := pairing.NewRead(a.Name, a.Decode())
	b2 := pairing.NewRead(b.Name, b.Decode())
	a2.ID, b2.ID = 0, 1

	idx := pairing.BuildIndex(cfg, []*pairing.Read{a2, b2})
	threshold := pairing.FrequencyThreshold(idx, cfg.FilterFreq)
	overlaps := pairing.MapReads(cfg, []*pairing.Read{a2}, idx, threshold, []*pairing.Read{a2, b2})
	if len(overlaps) == 0 {
		return pairing.Overlap{}, false
	}
	return overlaps[0], true
}

func readPairsFile(path string) ([]pairing.Pair, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening pairs file %s", path)
	}
	defer fh.Close()

	var pairs []pairing.Pair
	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("malformed pairs line: %q", line)
		}
		pairs = append(pairs, pairing.Pair{Lhs: parts[0], Rhs: parts[1]})
	}
	return pairs, scanner.Err()
}

func writeHistogram(path string, errs []float64) error {
	values := make(plotter.Values, len(errs))
	copy(values, errs)

	p := plot.New()
	p.Title.Text = "overlap error ratio"
	p.X.Label.Text = "error"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(values, 20)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
