// Command host-console runs the pin console against the simulated board on
// stdin/stdout, for exercising the protocol without hardware.
package main

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"

	"pinshell-go/console"
	"pinshell-go/hal"
	"pinshell-go/hal/hostsim"
)

func main() {
	board := hostsim.NewBoard()
	// Plausible idle readings for a bare simulated board.
	board.ADC.Temp = 0x0130
	board.Env.DeciC = 215
	board.Env.DeciRH = 430

	pins, err := hal.NewRegistry(board)
	if err != nil {
		log.Fatalf("pin registry: %v", err)
	}

	c := console.New(console.Config{
		Input:  bufio.NewReader(os.Stdin),
		Output: os.Stdout,
		LED:    board.LED(),
		PWM:    board.PWM,
		ADC:    board.ADC,
		Pins:   pins,
		Env:    board.Env,
	})
	if err := c.Run(); err != nil && !errors.Is(err, io.EOF) {
		log.Fatalf("console: %v", err)
	}
}
