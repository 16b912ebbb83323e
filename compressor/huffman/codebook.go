package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/icza/bitio"
)

// maxCodewordLen bounds the depth of a tree over a byte alphabet.
const maxCodewordLen = 255

// Codebook maps each symbol to its codeword.
type Codebook map[Symbol]BitString

// BuildCode derives the codebook for w. An empty w yields an empty codebook.
func BuildCode(w Weights) (Codebook, error) {
	t, err := BuildTree(w)
	if errors.Is(err, ErrEmptyAlphabet) {
		return Codebook{}, nil
	}
	if err != nil {
		return nil, err
	}
	return t.Codebook(), nil
}

// Codebook walks the tree from the root, extending the prefix by one bit per
// edge. A tree holding a single symbol assigns it the codeword "0".
func (t *Tree) Codebook() Codebook {
	symbolEnc := make(Codebook, t.leaves)
	if leaf, ok := t.root.(huffmanLeaf); ok {
		symbolEnc[leaf.symbol] = "0"
		return symbolEnc
	}
	getSymbolEncoding(t.root, symbolEnc, nil)
	return symbolEnc
}

func getSymbolEncoding(tree huffmanTree, symbolEnc Codebook, currentPrefix []byte) {
	switch i := tree.(type) {
	case huffmanLeaf:
		symbolEnc[i.symbol] = BitString(currentPrefix)
	case huffmanNode:
		getSymbolEncoding(i.left, symbolEnc, append(currentPrefix, '0'))
		getSymbolEncoding(i.right, symbolEnc, append(currentPrefix, '1'))
	}
}

// Symbols returns the symbols of cb in ascending order.
func (cb Codebook) Symbols() []Symbol {
	keys := make([]Symbol, 0, len(cb))
	for sym := range cb {
		keys = append(keys, sym)
	}
	slices.Sort(keys)
	return keys
}

func (cb Codebook) MaxLen() int {
	n := 0
	for _, code := range cb {
		n = max(n, len(code))
	}
	return n
}

// IsPrefixFree reports whether every codeword is non-empty and no codeword
// is a prefix of another.
func (cb Codebook) IsPrefixFree() bool {
	codes := make([]string, 0, len(cb))
	for _, code := range cb {
		if code == "" {
			return false
		}
		codes = append(codes, string(code))
	}
	// After sorting, a prefix is always immediately followed by an extension
	// of itself.
	slices.Sort(codes)
	for i := 1; i < len(codes); i++ {
		if strings.HasPrefix(codes[i], codes[i-1]) {
			return false
		}
	}
	return true
}

// Dump writes a programmer-readable listing of cb to w.
func (cb Codebook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codebook{\n")
	fmt.Fprintf(&buf, "\tMaxLen() = %d\n", cb.MaxLen())
	for _, sym := range cb.Symbols() {
		fmt.Fprintf(&buf, "\t%q = %q\n", sym, string(cb[sym]))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalBinary writes a big-endian uint16 entry count followed by one
// entry per symbol in ascending order: the symbol byte, the codeword length
// as a big-endian uint16 and the codeword bits packed MSB-first.
func (cb Codebook) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.BigEndian, uint16(len(cb))); err != nil {
		return nil, err
	}
	for _, sym := range cb.Symbols() {
		code := cb[sym]
		if len(code) == 0 || len(code) > maxCodewordLen {
			return nil, fmt.Errorf("%w: symbol %q has a codeword of %d bits", ErrMalformedCodebook, sym, len(code))
		}
		if err := code.Validate(); err != nil {
			return nil, err
		}
		buf.WriteByte(sym)
		if err := binary.Write(&buf, binary.BigEndian, uint16(len(code))); err != nil {
			return nil, err
		}
		w := bitio.NewWriter(&buf)
		if err := writeBitString(w, code); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// UnmarshalCodebook reads one serialized codebook from r and leaves r
// positioned after it.
func UnmarshalCodebook(r io.Reader) (Codebook, error) {
	var count uint16
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: reading entry count: %v", ErrMalformedCodebook, err)
	}
	if count > 256 {
		return nil, fmt.Errorf("%w: %d entries for a byte alphabet", ErrMalformedCodebook, count)
	}
	cb := make(Codebook, count)
	var header [3]byte
	for i := 0; i < int(count); i++ {
		if _, err := io.ReadFull(r, header[:]); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformedCodebook, i, err)
		}
		sym := header[0]
		size := int(binary.BigEndian.Uint16(header[1:]))
		if size == 0 || size > maxCodewordLen {
			return nil, fmt.Errorf("%w: symbol %q has a codeword of %d bits", ErrMalformedCodebook, sym, size)
		}
		if _, dup := cb[sym]; dup {
			return nil, fmt.Errorf("%w: symbol %q listed twice", ErrMalformedCodebook, sym)
		}
		packed := make([]byte, (size+7)/8)
		if _, err := io.ReadFull(r, packed); err != nil {
			return nil, fmt.Errorf("%w: codeword of symbol %q: %v", ErrMalformedCodebook, sym, err)
		}
		code, err := readBitString(bitio.NewReader(bytes.NewReader(packed)), size)
		if err != nil {
			return nil, fmt.Errorf("%w: codeword of symbol %q: %v", ErrMalformedCodebook, sym, err)
		}
		cb[sym] = code
	}
	if !cb.IsPrefixFree() {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCodebook, ErrNotPrefixFree)
	}
	return cb, nil
}
