package huffman

import (
	"bytes"
	"errors"
	"io"
	"runtime"
	"sync"
)

// parallelCountThreshold is the input size above which symbol counting is
// split across CPUs.
const parallelCountThreshold = 1 << 20

// Compress returns the serialized codebook of content followed by the packed
// encoding of content.
func Compress(content []byte) ([]byte, error) {
	var counts map[Symbol]int
	if len(content) >= parallelCountThreshold {
		counts = CountsParallel(content, runtime.NumCPU())
	} else {
		counts = Counts(content)
	}
	codebook, err := BuildCode(WeightsFromCounts(counts))
	if err != nil {
		return nil, err
	}
	header, err := codebook.MarshalBinary()
	if err != nil {
		return nil, err
	}
	bits, err := Encode(content, codebook)
	if err != nil {
		return nil, err
	}
	packed, err := Pack(bits)
	if err != nil {
		return nil, err
	}
	return append(header, packed...), nil
}

// Decompress reverses Compress.
func Decompress(content []byte) ([]byte, error) {
	r := bytes.NewReader(content)
	codebook, err := UnmarshalCodebook(r)
	if err != nil {
		return nil, err
	}
	bits, err := Unpack(content[len(content)-r.Len():])
	if err != nil {
		return nil, err
	}
	return Decode(bits, codebook)
}

type CompressionWriter struct {
	w        io.Writer
	inputBuf bytes.Buffer
	closed   bool
}

// Write buffers data; nothing reaches the underlying writer until Close.
func (cw *CompressionWriter) Write(data []byte) (int, error) {
	if cw.closed {
		return 0, ErrWriterClosed
	}
	return cw.inputBuf.Write(data)
}

func (cw *CompressionWriter) Close() error {
	if cw.closed {
		return nil
	}
	cw.closed = true
	compressed, err := Compress(cw.inputBuf.Bytes())
	if err != nil {
		return err
	}
	cw.inputBuf.Reset()
	_, err = cw.w.Write(compressed)
	return err
}

func NewCompressionWriter(writer io.Writer) io.WriteCloser {
	newCW := new(CompressionWriter)
	newCW.w = writer
	return newCW
}

type decompressionCore struct {
	isInputBufferClosed bool
	lock                sync.Mutex
	inputBuffer         io.ReadWriter
	outputBuffer        io.ReadWriter
}

type DecompressionWriter struct {
	core *decompressionCore
}

type DecompressionReader struct {
	core *decompressionCore
}

func (dr *DecompressionReader) Read(data []byte) (int, error) {
	dr.core.lock.Lock()
	defer dr.core.lock.Unlock()
	if !dr.core.isInputBufferClosed {
		return 0, ErrInputNotClosed
	}
	return dr.core.outputBuffer.Read(data)
}

func (dr *DecompressionReader) Close() error {
	dr.core.lock.Lock()
	defer dr.core.lock.Unlock()
	if buf, ok := dr.core.outputBuffer.(*bytes.Buffer); ok {
		buf.Reset()
		return nil
	}
	return errors.New("underlying io.ReadWriter is not *bytes.Buffer. Type assertion failed")
}

func (dw *DecompressionWriter) Write(data []byte) (int, error) {
	dw.core.lock.Lock()
	defer dw.core.lock.Unlock()
	if dw.core.isInputBufferClosed {
		return 0, ErrWriterClosed
	}
	return dw.core.inputBuffer.Write(data)
}

// Close decodes everything written so far and makes it available to the
// paired reader.
func (dw *DecompressionWriter) Close() error {
	dw.core.lock.Lock()
	defer dw.core.lock.Unlock()
	if dw.core.isInputBufferClosed {
		return nil
	}
	dw.core.isInputBufferClosed = true
	compressedData, err := io.ReadAll(dw.core.inputBuffer)
	if err != nil {
		return err
	}
	decompressedData, err := Decompress(compressedData)
	if err != nil {
		return err
	}
	_, err = dw.core.outputBuffer.Write(decompressedData)
	return err
}

func NewDecompressionReaderAndWriter() (io.ReadCloser, io.WriteCloser) {
	newDecompressionCore := new(decompressionCore)
	newDecompressionCore.inputBuffer, newDecompressionCore.outputBuffer = new(bytes.Buffer), new(bytes.Buffer)
	newDecompressionReader, newDecompressionWriter := new(DecompressionReader), new(DecompressionWriter)
	newDecompressionReader.core, newDecompressionWriter.core = newDecompressionCore, newDecompressionCore
	return newDecompressionReader, newDecompressionWriter
}
