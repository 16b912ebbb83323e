package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/klauspost/compress/zlib"
)

var ErrNotLossless = errors.New("engine: decompressed file differs from original")

type Row struct {
	File       string
	Size       int
	Compressed int
	Zip        int
	Entropy    float64
}

// Benchmark compresses and decompresses every file in a scratch directory,
// checks the round trip, and renders one table row per file to w.
func (e *Engine) Benchmark(files []string, w io.Writer) ([]Row, error) {
	dir, err := os.MkdirTemp("", "huffman-bench-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	bar := e.startBar(len(files))
	defer finishBar(bar)
	var rows []Row
	for i, file := range files {
		base := filepath.Join(dir, fmt.Sprintf("%d-%s", i, filepath.Base(file)))
		stats, err := e.CompressFile(file, base+"-comp")
		if err != nil {
			return rows, err
		}
		if err = e.DecompressFile(base+"-comp", base+"-decomp"); err != nil {
			return rows, err
		}
		same, err := SameContent(file, base+"-decomp")
		if err != nil {
			return rows, err
		}
		if !same {
			return rows, fmt.Errorf("%w: %s", ErrNotLossless, file)
		}
		content, err := os.ReadFile(file)
		if err != nil {
			return rows, err
		}
		zipSize, err := zlibSize(content)
		if err != nil {
			return rows, err
		}
		rows = append(rows, Row{
			File:       filepath.Base(file),
			Size:       stats.Original,
			Compressed: stats.Compressed,
			Zip:        zipSize,
			Entropy:    Entropy(content),
		})
		incrementBar(bar)
	}
	return rows, RenderTable(w, rows)
}

func zlibSize(content []byte) (int, error) {
	var b bytes.Buffer
	zw := zlib.NewWriter(&b)
	if _, err := zw.Write(content); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return b.Len(), nil
}

func RenderTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "File Name\tSize\tCompressed Size\tZip Size\tEntropy\t")
	fmt.Fprintln(tw, "=========\t====\t===============\t========\t=======\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.3f\t\n", r.File, r.Size, r.Compressed, r.Zip, r.Entropy)
	}
	return tw.Flush()
}
