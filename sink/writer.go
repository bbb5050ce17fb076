// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

package sink

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/binary"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression of a prime stream.
type Compression int

const (
	None Compression = iota
	Zstd
	LZ4
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	}
	return fmt.Sprintf("Compression(%d)", int(c))
}

var ErrCompression = errors.New("sink: unknown compression")

// ParseCompression is the inverse of String.
func ParseCompression(s string) (Compression, error) {
	switch s {
	case "none", "":
		return None, nil
	case "zstd":
		return Zstd, nil
	case "lz4":
		return LZ4, nil
	}
	return None, fmt.Errorf("%w %q", ErrCompression, s)
}

const bufSize = 64 << 10

// Writer writes each prime as 8 little-endian bytes, optionally
// compressed. Consume cannot fail, the first error is kept and returned
// by Err and Close.
type Writer struct {
	enc *binary.Encoder
	bw  *bufio.Writer
	zw  io.WriteCloser // compressor, nil for None
	N   uint64         // primes written
	err error
}

func NewWriter(w io.Writer, c Compression) (*Writer, error) {
	wr := &Writer{}
	switch c {
	case None:
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		wr.zw, w = zw, zw
	case LZ4:
		zw := lz4.NewWriter(w)
		wr.zw, w = zw, zw
	default:
		return nil, fmt.Errorf("%w %d", ErrCompression, int(c))
	}
	wr.bw = bufio.NewWriterSize(w, bufSize)
	wr.enc = binary.NewEncoder(wr.bw)
	return wr, nil
}

func (w *Writer) Consume(p uint64) {
	if w.err != nil {
		return
	}
	if err := w.enc.Encode(p); err != nil {
		w.err = err
		return
	}
	w.N++
}

// Err returns the first write error.
func (w *Writer) Err() error { return w.err }

// Close flushes the stream and the compressor. It does not close the
// underlying io.Writer.
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil && w.err == nil {
		w.err = err
	}
	if w.zw != nil {
		if err := w.zw.Close(); err != nil && w.err == nil {
			w.err = err
		}
	}
	return w.err
}

// Reader reads a stream written by Writer.
type Reader struct {
	dec   *binary.Decoder
	close func()
}

func NewReader(r io.Reader, c Compression) (*Reader, error) {
	rd := &Reader{close: func() {}}
	switch c {
	case None:
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		rd.close = zr.Close
		r = zr
	case LZ4:
		r = lz4.NewReader(r)
	default:
		return nil, fmt.Errorf("%w %d", ErrCompression, int(c))
	}
	rd.dec = binary.NewDecoder(bufio.NewReaderSize(r, bufSize))
	return rd, nil
}

// Next returns the next prime, io.EOF at the end of the stream.
func (r *Reader) Next() (uint64, error) {
	var p uint64
	if err := r.dec.Decode(&p); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("sink: truncated stream: %w", err)
		}
		return 0, err
	}
	return p, nil
}

func (r *Reader) Close() { r.close() }

// ReadAll reads every prime of a stream written by Writer.
func ReadAll(r io.Reader, c Compression) ([]uint64, error) {
	rd, err := NewReader(r, c)
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	var ps []uint64
	for {
		p, err := rd.Next()
		if err == io.EOF {
			return ps, nil
		}
		if err != nil {
			return ps, err
		}
		ps = append(ps, p)
	}
}
