package xor

import (
	"io"
)

var _ io.Reader = (*Reader)(nil)

// Reader screens every byte read from its source.
type Reader struct {
	source io.Reader
	scr    *xorScreen
}

// NewReader returns a Reader that screens bytes from r using key, starting at offset.
func NewReader(r io.Reader, key []byte, offset ...int) (*Reader, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &Reader{source: r, scr: scr}, nil
}

func (r *Reader) Read(out []byte) (int, error) {
	n, err := r.source.Read(out)
	for i := 0; i < n; i++ {
		out[i] = r.scr.screen(out[i])
	}
	return n, err
}

var _ io.Writer = (*Writer)(nil)

// Writer screens every byte before passing it to its target.
// The key position carries over between calls to Write.
type Writer struct {
	target io.Writer
	scr    *xorScreen
}

// NewWriter returns a Writer that screens bytes with key, starting at offset, before writing them to target.
func NewWriter(target io.Writer, key []byte, offset ...int) (*Writer, error) {
	scr, err := newXorScreen(key, offset...)
	if err != nil {
		return nil, err
	}
	return &Writer{target: target, scr: scr}, nil
}

func (w *Writer) Write(in []byte) (int, error) {
	screened := make([]byte, len(in))
	for i, b := range in {
		screened[i] = w.scr.screen(b)
	}
	return w.target.Write(screened)
}
