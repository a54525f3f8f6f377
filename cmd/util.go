package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/iafan/cwalk"
	"github.com/pkg/errors"
	"github.com/shenwei356/util/pathutil"
	"github.com/shenwei356/xopen"
)

var seqFileSuffixes = []string{
	".fasta", ".fa", ".fna", ".fasta.gz", ".fa.gz", ".fna.gz",
	".fastq", ".fq", ".fastq.gz", ".fq.gz",
}

func hasSeqFileSuffix(path string) bool {
	lower := strings.ToLower(path)
	for _, suf := range seqFileSuffixes {
		if strings.HasSuffix(lower, suf) {
			return true
		}
	}
	return false
}

// listReadFiles expands a single positional argument into the list of
// sequence files to read. A plain file is returned as-is; a directory is
// walked in parallel and every matching file beneath it is collected
// (spec.md's supplemented directory-input mode).
func listReadFiles(path string, threads int) ([]string, error) {
	isDir, err := pathutil.IsDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, "checking input path %s", path)
	}
	if !isDir {
		return []string{path}, nil
	}

	files := make([]string, 0, 512)
	ch := make(chan string, threads)
	done := make(chan struct{})
	go func() {
		for f := range ch {
			files = append(files, f)
		}
		close(done)
	}()

	cwalk.NumWorkers = threads
	err = cwalk.WalkWithSymlinks(path, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		full := filepath.Join(path, p)
		if hasSeqFileSuffix(full) {
			ch <- full
		}
		return nil
	})
	close(ch)
	<-done
	if err != nil {
		return nil, errors.Wrapf(err, "walking directory %s", path)
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no sequence files found under %s", path)
	}
	return files, nil
}

// outWriter opens the process's standard output through xopen so output
// handling stays uniform with the rest of the pipeline's file I/O, even
// though rcmatch itself never compresses its output.
func outWriter() (*xopen.Writer, error) {
	return xopen.Wopen("-")
}
