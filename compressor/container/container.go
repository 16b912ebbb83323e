// Package container frames a compressed payload for storage: a magic
// header and the original length up front, a CRC-32 of the original bytes at
// the end.
package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

var Magic = [4]byte{'H', 'U', 'F', '1'}

const (
	headerSize  = len(Magic) + 8
	trailerSize = 4
)

var (
	ErrBadMagic       = errors.New("container: bad magic")
	ErrShortContainer = errors.New("container: data too short")
	ErrChecksum       = errors.New("container: crc did not match")
	ErrSizeMismatch   = errors.New("container: size did not match")
)

func Wrap(original, payload []byte) []byte {
	out := make([]byte, 0, headerSize+len(payload)+trailerSize)
	out = append(out, Magic[:]...)
	out = binary.BigEndian.AppendUint64(out, uint64(len(original)))
	out = append(out, payload...)
	out = binary.BigEndian.AppendUint32(out, crc32.ChecksumIEEE(original))
	return out
}

// Unwrap splits data into the payload and the recorded size and checksum of
// the original bytes.
func Unwrap(data []byte) (payload []byte, size uint64, crc uint32, err error) {
	if len(data) < headerSize+trailerSize {
		return nil, 0, 0, fmt.Errorf("%w: %d bytes", ErrShortContainer, len(data))
	}
	if !bytes.Equal(data[:len(Magic)], Magic[:]) {
		return nil, 0, 0, fmt.Errorf("%w: %q", ErrBadMagic, data[:len(Magic)])
	}
	size = binary.BigEndian.Uint64(data[len(Magic):headerSize])
	crc = binary.BigEndian.Uint32(data[len(data)-trailerSize:])
	return data[headerSize : len(data)-trailerSize], size, crc, nil
}

func Verify(original []byte, size uint64, crc uint32) error {
	if uint64(len(original)) != size {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(original), size)
	}
	if got := crc32.ChecksumIEEE(original); got != crc {
		return fmt.Errorf("%w: got %08x, want %08x", ErrChecksum, got, crc)
	}
	return nil
}
