//go:build rp2040

// Package rp2 provides the RP2040 hardware behind the console's board
// interfaces: machine GPIO pin roles, a PWM slice for the dedicated output,
// the ADC mux including the on-die temperature sensor, the uartx console
// port and the optional AHT20 environment sensor.
package rp2

import (
	"machine"

	"pinshell-go/hal"
)

// maxGPIO is the highest GPIO number on the RP2040.
const maxGPIO = 28

// Board owns the fixed-function peripherals.
type Board struct {
	led machine.Pin
	pwm *PWM
	adc *ADC
}

func NewBoard() (*Board, error) {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	pwm, err := NewPWM(pwmPin)
	if err != nil {
		return nil, err
	}
	return &Board{led: led, pwm: pwm, adc: NewADC()}, nil
}

func (b *Board) LED() hal.OutputPin    { return outputPin{p: b.led} }
func (b *Board) PWM() hal.PWMOutput    { return b.pwm }
func (b *Board) ADC() hal.AnalogReader { return b.adc }

// InputPin implements hal.PinProvider. Console pin numbers map directly to
// GPIO numbers; the handle starts in floating input mode.
func (b *Board) InputPin(num uint8) (hal.InputPin, bool) {
	if num > maxGPIO {
		return nil, false
	}
	p := machine.Pin(num)
	p.Configure(machine.PinConfig{Mode: machine.PinInput})
	return inputPin{p: p}, true
}

type inputPin struct{ p machine.Pin }

func (i inputPin) IsHigh() bool { return i.p.Get() }
func (i inputPin) IntoOutput() hal.OutputPin {
	i.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	i.p.Low()
	return outputPin{p: i.p}
}

type outputPin struct{ p machine.Pin }

func (o outputPin) SetHigh()        { o.p.High() }
func (o outputPin) SetLow()         { o.p.Low() }
func (o outputPin) IsSetHigh() bool { return o.p.Get() }
func (o outputPin) IntoInput() hal.InputPin {
	o.p.Configure(machine.PinConfig{Mode: machine.PinInput})
	return inputPin{p: o.p}
}
