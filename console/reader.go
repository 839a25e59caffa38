package console

import (
	"io"

	"pinshell-go/errcode"
)

// MaxLineLen is the line buffer capacity in bytes.
const MaxLineLen = 32

// LineReader accumulates bytes from a blocking byte source into a bounded
// line buffer. The byte read is the program's only suspension point.
type LineReader struct {
	r   io.ByteReader
	buf [MaxLineLen]byte
}

func NewLineReader(r io.ByteReader) *LineReader {
	return &LineReader{r: r}
}

// ReadLine blocks until a '\n' arrives and returns the line without the
// terminator. '\r' is dropped, so CRLF terminals work unchanged. If the
// line exceeds MaxLineLen bytes the rest of it is consumed and discarded
// and ReadLine fails with errcode.BufferOverflow. Errors from the
// underlying source propagate unchanged.
func (lr *LineReader) ReadLine() (string, error) {
	n := 0
	for {
		b, err := lr.r.ReadByte()
		if err != nil {
			return "", err
		}
		switch b {
		case '\n':
			return string(lr.buf[:n]), nil
		case '\r':
			// ignore
		default:
			if n == len(lr.buf) {
				return "", lr.drain()
			}
			lr.buf[n] = b
			n++
		}
	}
}

// drain consumes the remainder of an overlong line through its newline so
// the next iteration starts on a fresh line.
func (lr *LineReader) drain() error {
	for {
		b, err := lr.r.ReadByte()
		if err != nil {
			return err
		}
		if b == '\n' {
			return errcode.BufferOverflow
		}
	}
}
