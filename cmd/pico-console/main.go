//go:build rp2040

package main

import (
	"time"

	"pinshell-go/console"
	"pinshell-go/hal"
	"pinshell-go/hal/rp2"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	board, err := rp2.NewBoard()
	if err != nil {
		halt("board bring-up failed: ", err)
	}
	pins, err := hal.NewRegistry(board)
	if err != nil {
		halt("pin registry failed: ", err)
	}
	port, err := rp2.NewConsolePort()
	if err != nil {
		halt("uart configure failed: ", err)
	}

	c := console.New(console.Config{
		Input:  port,
		Output: port,
		LED:    board.LED(),
		PWM:    board.PWM(),
		ADC:    board.ADC(),
		Pins:   pins,
		Env:    rp2.NewEnvSensor(),
	})

	// The UART has no EOF; Run only returns on a read fault, in which case
	// we start a fresh loop rather than halt the device.
	for {
		if err := c.Run(); err != nil {
			println("console read error:", err.Error())
		}
	}
}

func halt(msg string, err error) {
	for {
		println(msg, err.Error())
		time.Sleep(5 * time.Second)
	}
}
