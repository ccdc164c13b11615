package logging

import (
	"bytes"
	"io"
)

// PrefixWriter writes prefix before every complete line it forwards.
// Partial lines are held until their newline arrives or Flush is called.
type PrefixWriter struct {
	prefix []byte
	writer io.Writer
	buffer bytes.Buffer
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	if _, err := pw.buffer.Write(p); err != nil {
		return 0, err
	}

	for {
		i := bytes.IndexByte(pw.buffer.Bytes(), '\n')
		if i < 0 {
			break
		}
		if err := pw.emit(pw.buffer.Next(i + 1)); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}

// Flush writes any buffered partial line, prefixed and without a newline.
func (pw *PrefixWriter) Flush() error {
	if pw.buffer.Len() == 0 {
		return nil
	}
	return pw.emit(pw.buffer.Next(pw.buffer.Len()))
}

func (pw *PrefixWriter) emit(line []byte) error {
	out := make([]byte, 0, len(pw.prefix)+len(line))
	out = append(out, pw.prefix...)
	out = append(out, line...)
	_, err := pw.writer.Write(out)
	return err
}
