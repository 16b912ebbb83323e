package engine

import (
	"bytes"
	"math"
	"os"

	"github.com/FitrahHaque/Huffman-Engine/compressor/huffman"
)

// SameContent reports whether the two files hold identical bytes.
func SameContent(a, b string) (bool, error) {
	infoA, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	if infoA.Size() != infoB.Size() {
		return false, nil
	}
	contentA, err := os.ReadFile(a)
	if err != nil {
		return false, err
	}
	contentB, err := os.ReadFile(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(contentA, contentB), nil
}

// Entropy is the Shannon entropy of data in bits per byte.
func Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	total := float64(len(data))
	var h float64
	for _, count := range huffman.Counts(data) {
		p := float64(count) / total
		h -= p * math.Log2(p)
	}
	return math.Abs(h)
}
