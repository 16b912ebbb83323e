package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// BitString is a sequence of bits spelled with the characters '0' and '1'.
type BitString string

func (b BitString) Validate() error {
	for i := 0; i < len(b); i++ {
		if b[i] != '0' && b[i] != '1' {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, b[i], i)
		}
	}
	return nil
}

// Pack appends 8 - len(b)%8 zero bits to b, so a byte-aligned input still
// gains a full byte, and prefixes the packed bytes with that pad count.
func Pack(b BitString) ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	pad := 8 - len(b)%8
	var buf bytes.Buffer
	buf.Grow(1 + (len(b)+pad)/8)
	buf.WriteByte(byte(pad))
	w := bitio.NewWriter(&buf)
	if err := writeBitString(w, b); err != nil {
		return nil, err
	}
	if err := w.WriteBits(0, uint8(pad)); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack reverses Pack.
func Unpack(data []byte) (BitString, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: missing pad byte", ErrMalformedPackHeader)
	}
	pad := int(data[0])
	if pad < 1 || pad > 8 {
		return "", fmt.Errorf("%w: pad length %d outside 1..8", ErrMalformedPackHeader, pad)
	}
	body := data[1:]
	if len(body)*8 < pad {
		return "", fmt.Errorf("%w: pad length %d exceeds %d data bits", ErrMalformedPackHeader, pad, len(body)*8)
	}
	return readBitString(bitio.NewReader(bytes.NewReader(body)), len(body)*8-pad)
}

func writeBitString(w *bitio.Writer, b BitString) error {
	for i := 0; i < len(b); i++ {
		if err := w.WriteBool(b[i] == '1'); err != nil {
			return err
		}
	}
	return nil
}

func readBitString(r *bitio.Reader, n int) (BitString, error) {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return BitString(sb.String()), nil
}
