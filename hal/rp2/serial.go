//go:build rp2040

package rp2

import (
	"context"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

const consoleBaud = 115200

// ConsolePort adapts UART0 to the console's byte reader / writer contract.
type ConsolePort struct {
	u *uartx.UART
}

func NewConsolePort() (*ConsolePort, error) {
	u := uartx.UART0
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: consoleBaud,
		TX:       uartx.UART0_TX_PIN,
		RX:       uartx.UART0_RX_PIN,
	}); err != nil {
		return nil, err
	}
	return &ConsolePort{u: u}, nil
}

// ReadByte blocks until one byte arrives. This is the program's only
// suspension point.
func (p *ConsolePort) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := p.u.RecvSomeContext(context.Background(), buf[:])
		if n > 0 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (p *ConsolePort) Write(b []byte) (int, error) {
	return p.u.Write(b)
}
