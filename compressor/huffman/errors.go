package huffman

import "errors"

var (
	ErrEmptyAlphabet       = errors.New("huffman: empty alphabet")
	ErrNegativeWeight      = errors.New("huffman: weight must be a non-negative number")
	ErrUnknownSymbol       = errors.New("huffman: symbol has no codeword")
	ErrUnknownCodeword     = errors.New("huffman: bit sequence matches no codeword")
	ErrTruncatedStream     = errors.New("huffman: bitstream ends inside a codeword")
	ErrMalformedPackHeader = errors.New("huffman: malformed pack header")
	ErrMalformedCodebook   = errors.New("huffman: malformed codebook")
	ErrNotPrefixFree       = errors.New("huffman: codebook is not prefix-free")
	ErrInvalidBit          = errors.New("huffman: bit string contains a character other than 0 or 1")
	ErrWriterClosed        = errors.New("huffman: write after close")
	ErrInputNotClosed      = errors.New("huffman: input buffer not closed")
)
