package console

import (
	"io"
	"strings"
	"testing"

	"pinshell-go/errcode"
)

func TestReadLine(t *testing.T) {
	lr := NewLineReader(strings.NewReader("led on\nget 2\n"))
	line, err := lr.ReadLine()
	if err != nil || line != "led on" {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}
	line, err = lr.ReadLine()
	if err != nil || line != "get 2" {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}
	if _, err = lr.ReadLine(); err != io.EOF {
		t.Fatalf("ReadLine at end = %v, want io.EOF", err)
	}
}

func TestReadLineDropsCR(t *testing.T) {
	lr := NewLineReader(strings.NewReader("help\r\n"))
	line, err := lr.ReadLine()
	if err != nil || line != "help" {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}
}

func TestReadLineEmpty(t *testing.T) {
	lr := NewLineReader(strings.NewReader("\n"))
	line, err := lr.ReadLine()
	if err != nil || line != "" {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}
}

func TestReadLineAtCapacity(t *testing.T) {
	exact := strings.Repeat("x", MaxLineLen)
	lr := NewLineReader(strings.NewReader(exact + "\n"))
	line, err := lr.ReadLine()
	if err != nil || line != exact {
		t.Fatalf("ReadLine = %q, %v", line, err)
	}
}

func TestReadLineOverflowDiscardsWholeLine(t *testing.T) {
	over := strings.Repeat("x", MaxLineLen+1)
	lr := NewLineReader(strings.NewReader(over + "\nhelp\n"))
	_, err := lr.ReadLine()
	if errcode.Of(err) != errcode.BufferOverflow {
		t.Fatalf("ReadLine error = %v, want %v", err, errcode.BufferOverflow)
	}
	// The overlong line is drained through its newline; the next read
	// starts on the following line.
	line, err := lr.ReadLine()
	if err != nil || line != "help" {
		t.Fatalf("ReadLine after overflow = %q, %v", line, err)
	}
}

func TestReadLineErrorDuringDrain(t *testing.T) {
	over := strings.Repeat("x", MaxLineLen+5) // no newline before EOF
	lr := NewLineReader(strings.NewReader(over))
	if _, err := lr.ReadLine(); err != io.EOF {
		t.Fatalf("ReadLine = %v, want io.EOF", err)
	}
}

func TestReadLineNoNewlineBeforeEOF(t *testing.T) {
	lr := NewLineReader(strings.NewReader("help"))
	if _, err := lr.ReadLine(); err != io.EOF {
		t.Fatalf("ReadLine = %v, want io.EOF", err)
	}
}
