package engine

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	pb "github.com/cheggaaa/pb/v3"

	"github.com/FitrahHaque/Huffman-Engine/compressor/container"
	"github.com/FitrahHaque/Huffman-Engine/compressor/huffman"
	"github.com/FitrahHaque/Huffman-Engine/logger"
)

const DefaultExtension = "huf"

type Engine struct {
	log logger.Logger
	// progress receives progress bars; nil disables them.
	progress io.Writer
}

func New(log logger.Logger, progress io.Writer) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{log: log, progress: progress}
}

type Stats struct {
	File       string
	Original   int
	Compressed int
}

// Ratio is the compressed size as a percentage of the original size.
func (s Stats) Ratio() float64 {
	if s.Original == 0 {
		return 0
	}
	return float64(s.Compressed) / float64(s.Original) * 100
}

func (e *Engine) CompressFile(filePath, outputFileName string) (Stats, error) {
	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		return Stats{}, err
	}
	var b bytes.Buffer
	w := huffman.NewCompressionWriter(&b)
	if _, err = w.Write(fileContent); err != nil {
		return Stats{}, err
	}
	if err = w.Close(); err != nil {
		return Stats{}, fmt.Errorf("compress %s: %w", filePath, err)
	}
	compressed := container.Wrap(fileContent, b.Bytes())
	if err = os.WriteFile(outputFileName, compressed, 0644); err != nil {
		return Stats{}, err
	}
	stats := Stats{File: filePath, Original: len(fileContent), Compressed: len(compressed)}
	e.log.Infof("compressed %s -> %s (%d -> %d bytes, %.2f%%)", filePath, outputFileName, stats.Original, stats.Compressed, stats.Ratio())
	return stats, nil
}

func (e *Engine) DecompressFile(filePath, outputFileName string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	payload, size, crc, err := container.Unwrap(data)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", filePath, err)
	}
	r, w := huffman.NewDecompressionReaderAndWriter()
	defer r.Close()
	if _, err = w.Write(payload); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("decompress %s: %w", filePath, err)
	}
	original, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err = container.Verify(original, size, crc); err != nil {
		return fmt.Errorf("decompress %s: %w", filePath, err)
	}
	if err = os.WriteFile(outputFileName, original, 0644); err != nil {
		return err
	}
	e.log.Infof("decompressed %s -> %s (%d bytes)", filePath, outputFileName, len(original))
	return nil
}

// CompressFiles writes file.ext next to every input file.
func (e *Engine) CompressFiles(files []string, fileExtension string) ([]Stats, error) {
	bar := e.startBar(len(files))
	defer finishBar(bar)
	var all []Stats
	for _, file := range files {
		stats, err := e.CompressFile(file, file+"."+fileExtension)
		if err != nil {
			return all, err
		}
		all = append(all, stats)
		incrementBar(bar)
	}
	return all, nil
}

// DecompressFiles strips .ext from every input file name to pick the output
// name, or appends .out when the name does not carry the extension.
func (e *Engine) DecompressFiles(files []string, fileExtension string) error {
	bar := e.startBar(len(files))
	defer finishBar(bar)
	for _, file := range files {
		if err := e.DecompressFile(file, DecompressedName(file, fileExtension)); err != nil {
			return err
		}
		incrementBar(bar)
	}
	return nil
}

func DecompressedName(file, fileExtension string) string {
	if trimmed, ok := strings.CutSuffix(file, "."+fileExtension); ok && trimmed != "" {
		return trimmed
	}
	return file + ".out"
}

func (e *Engine) startBar(total int) *pb.ProgressBar {
	if e.progress == nil || total < 2 {
		return nil
	}
	bar := pb.New(total)
	bar.SetWriter(e.progress)
	return bar.Start()
}

func incrementBar(bar *pb.ProgressBar) {
	if bar != nil {
		bar.Increment()
	}
}

func finishBar(bar *pb.ProgressBar) {
	if bar != nil {
		bar.Finish()
	}
}
