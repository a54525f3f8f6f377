package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seqio/fastx"
	logging "github.com/shenwei356/go-logging"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/bio-rcmatch/rcmatch/internal/pairing"
	"github.com/bio-rcmatch/rcmatch/internal/rss"
)

func runFind(cmd *cobra.Command, args []string) error {
	if getFlagBool(cmd, "version") {
		fmt.Printf("rcmatch %s\n", VERSION)
		return nil
	}
	if len(args) == 0 {
		return errors.New("missing required argument: <reads path>")
	}
	if len(args) > 1 {
		return errors.New("rcmatch accepts a single input path")
	}

	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	if err := pairing.CheckConfig(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	quiet := getFlagBool(cmd, "quiet")
	if logFile := getFlagString(cmd, "log"); logFile != "" {
		fh, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return errors.Wrapf(err, "opening log file %s", logFile)
		}
		defer fh.Close()
		logging.SetBackend(
			logging.NewLogBackend(colorable.NewColorableStderr(), "", 0),
			logging.NewLogBackend(fh, "", 0),
		)
	}

	files, err := listReadFiles(args[0], cfg.Threads)
	if err != nil {
		return err
	}

	start := time.Now()
	reads, err := loadReads(files)
	if err != nil {
		return err
	}
	if !quiet {
		log.Infof("loaded %d reads from %d file(s) in %s", len(reads), len(files), time.Since(start))
	}
	if len(reads) < 2 {
		return nil
	}

	var progress pairing.Progress
	var pb *barProgress
	if !quiet {
		pb = newBarProgress(len(reads))
		progress = pb
	}

	names := make([]string, len(reads))
	findStart := time.Now()
	best := pairing.Orchestrate(cfg, reads, progress)
	if pb != nil {
		pb.Close()
	}
	for _, r := range reads {
		names[r.ID] = r.Name
	}
	pairs := pairing.ResolvePairs(best, names)

	out, err := outWriter()
	if err != nil {
		return errors.Wrap(err, "opening output stream")
	}
	defer out.Close()
	for _, p := range pairs {
		fmt.Fprintf(out, "%s,%s\n", p.Lhs, p.Rhs)
	}

	if !quiet {
		log.Infof("found %d pair(s) in %s", len(pairs), time.Since(findStart))
		if peak, err := rss.PeakBytes(); err == nil {
			log.Infof("peak RSS: %.2f GiB", float64(peak)/(1<<30))
		}
	}
	return nil
}

// barProgress adapts an mpb progress bar to the pairing package's
// Progress collaborator interface, keeping internal/pairing free of any
// direct progress-bar dependency.
type barProgress struct {
	pbs       *mpb.Progress
	bar       *mpb.Bar
	last      time.Time
	seenBases uint64
}

func newBarProgress(totalReads int) *barProgress {
	pbs := mpb.New(mpb.WithWidth(40), mpb.WithOutput(os.Stderr))
	bar := pbs.AddBar(int64(totalReads),
		mpb.PrependDecorators(
			decor.Name("pairing reads: ", decor.WC{W: len("pairing reads: "), C: decor.DindentRight}),
			decor.Name("", decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.EwmaETA(decor.ET_STYLE_GO, 60),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &barProgress{pbs: pbs, bar: bar, last: time.Now()}
}

func (p *barProgress) BatchDone(batchBases uint64, batchReads int) {
	p.seenBases += batchBases
	now := time.Now()
	p.bar.EwmaIncrBy(batchReads, now.Sub(p.last))
	p.last = now
}

func (p *barProgress) Close() {
	p.pbs.Wait()
	log.Infof("indexed %d bases total", p.seenBases)
}

func loadReads(files []string) ([]*pairing.Read, error) {
	var reads []*pairing.Read
	var record *fastx.Record
	var err error

	for _, file := range files {
		fastxReader, ferr := fastx.NewReader(nil, file, "")
		if ferr != nil {
			return nil, errors.Wrapf(ferr, "opening %s", file)
		}

		for {
			record, err = fastxReader.Read()
			if err != nil {
				if err == io.EOF {
					break
				}
				return nil, errors.Wrapf(err, "reading %s", file)
			}

			seq := make([]byte, len(record.Seq.Seq))
			copy(seq, record.Seq.Seq)
			reads = append(reads, pairing.NewRead(string(record.ID), seq))
		}
	}
	return reads, nil
}
