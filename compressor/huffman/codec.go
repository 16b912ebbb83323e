package huffman

import (
	"fmt"
	"strings"
)

// Encode concatenates the codeword of every symbol in seq.
func Encode(seq []byte, cb Codebook) (BitString, error) {
	var output strings.Builder
	for i, symbol := range seq {
		code, ok := cb[symbol]
		if !ok {
			return "", fmt.Errorf("%w: %q at offset %d", ErrUnknownSymbol, symbol, i)
		}
		output.WriteString(string(code))
	}
	return BitString(output.String()), nil
}

type trieNode struct {
	children [2]*trieNode
	symbol   Symbol
	leaf     bool
}

func newDecodeTrie(cb Codebook) (*trieNode, error) {
	root := new(trieNode)
	for _, sym := range cb.Symbols() {
		code := cb[sym]
		if code == "" {
			return nil, fmt.Errorf("%w: symbol %q has an empty codeword", ErrNotPrefixFree, sym)
		}
		if err := code.Validate(); err != nil {
			return nil, err
		}
		node := root
		for i := 0; i < len(code); i++ {
			if node.leaf {
				return nil, fmt.Errorf("%w: codeword %q of %q extends codeword of %q", ErrNotPrefixFree, code, sym, node.symbol)
			}
			bit := code[i] - '0'
			if node.children[bit] == nil {
				node.children[bit] = new(trieNode)
			}
			node = node.children[bit]
		}
		if node.leaf || node.children[0] != nil || node.children[1] != nil {
			return nil, fmt.Errorf("%w: codeword %q of %q collides with another codeword", ErrNotPrefixFree, code, sym)
		}
		node.leaf = true
		node.symbol = sym
	}
	return root, nil
}

// Decode walks bits through the prefix trie of cb, emitting a symbol and
// returning to the root each time a leaf is reached.
func Decode(bits BitString, cb Codebook) ([]byte, error) {
	if err := bits.Validate(); err != nil {
		return nil, err
	}
	root, err := newDecodeTrie(cb)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(bits)/max(1, cb.MaxLen()))
	node, start := root, 0
	for i := 0; i < len(bits); i++ {
		next := node.children[bits[i]-'0']
		if next == nil {
			return nil, fmt.Errorf("%w: %q at bit %d", ErrUnknownCodeword, bits[start:i+1], start)
		}
		if next.leaf {
			out = append(out, next.symbol)
			node, start = root, i+1
			continue
		}
		node = next
	}
	if node != root {
		return nil, fmt.Errorf("%w: %d dangling bits %q", ErrTruncatedStream, len(bits)-start, bits[start:])
	}
	return out, nil
}
