// Package console implements the serial command console: a bounded line
// reader, the command grammar, and the dispatch loop that binds parsed
// commands to board operations.
package console

import (
	"io"

	"pinshell-go/errcode"
	"pinshell-go/hal"
	"pinshell-go/x/conv"
)

// Help is the fixed help line listing every command. It never varies with
// device state.
const Help = "commands: help, led on|off, get <pin>, set <pin> high|low, pwm <0-255>, adc <0-5>, temp, env"

const prompt = "> "

const maxADCChannel = 5

// Config wires the console to its transport and board peripherals.
type Config struct {
	Input  io.ByteReader
	Output io.Writer

	LED  hal.OutputPin
	PWM  hal.PWMOutput
	ADC  hal.AnalogReader
	Pins *hal.Registry
	Env  hal.EnvSensor // optional; nil when no sensor is fitted
}

// Console runs the request/response loop. It exclusively owns every
// hardware handle it is configured with for the life of the program.
type Console struct {
	rd   *LineReader
	w    io.Writer
	led  hal.OutputPin
	pwm  hal.PWMOutput
	adc  hal.AnalogReader
	pins *hal.Registry
	env  hal.EnvSensor

	scratch [64]byte
}

func New(cfg Config) *Console {
	return &Console{
		rd:   NewLineReader(cfg.Input),
		w:    cfg.Output,
		led:  cfg.LED,
		pwm:  cfg.PWM,
		adc:  cfg.ADC,
		pins: cfg.Pins,
		env:  cfg.Env,
	}
}

// Run loops forever: prompt, read, parse, dispatch. Every protocol error is
// handled within its iteration; Run returns only when the byte source
// itself fails, which on a UART never happens.
func (c *Console) Run() error {
	for {
		c.print(prompt)
		line, err := c.rd.ReadLine()
		if err != nil {
			if errcode.Of(err) == errcode.BufferOverflow {
				// Overlong line: discard silently, do not echo garbage.
				continue
			}
			return err
		}
		cmd, err := Parse(line)
		if err != nil {
			c.print("invalid command: ")
			c.println(line)
			c.println(Help)
			continue
		}
		c.dispatch(cmd)
	}
}

func (c *Console) dispatch(cmd Command) {
	switch cmd.Kind {
	case KindHelp:
		c.println(Help)

	case KindLed:
		if cmd.On {
			c.led.SetHigh()
		} else {
			c.led.SetLow()
		}

	case KindGetPin:
		pin, ok := c.pins.Lookup(cmd.Pin)
		if !ok {
			c.unknownPin(cmd.Pin)
			return
		}
		b := append(c.scratch[:0], 'd')
		b = conv.AppendUint(b, uint64(cmd.Pin))
		b = append(b, ": "...)
		b = conv.AppendBool(b, pin.ReadLevel())
		c.emit(b)

	case KindSetPin:
		pin, ok := c.pins.Lookup(cmd.Pin)
		if !ok {
			c.unknownPin(cmd.Pin)
			return
		}
		if cmd.Level {
			pin.DriveHigh()
		} else {
			pin.DriveLow()
		}
		// No output on success.

	case KindPwm:
		c.pwm.SetDuty(cmd.Duty)
		c.pwm.Enable()

	case KindAdc:
		if cmd.Channel > maxADCChannel {
			b := append(c.scratch[:0], "unknown channel: "...)
			b = conv.AppendUint(b, uint64(cmd.Channel))
			b = append(b, ", valid channels are 0-5"...)
			c.emit(b)
			return
		}
		v := c.adc.ReadChannel(cmd.Channel)
		b := append(c.scratch[:0], 'a')
		b = conv.AppendUint(b, uint64(cmd.Channel))
		b = append(b, ": "...)
		b = conv.AppendUint(b, uint64(v))
		c.emit(b)

	case KindTemp:
		v := c.adc.ReadTemp()
		b := append(c.scratch[:0], "temp: 0x"...)
		b = conv.AppendU16Hex(b, v)
		c.emit(b)

	case KindEnv:
		if c.env == nil {
			c.println("env: not available")
			return
		}
		t, rh, err := c.env.ReadEnv()
		if err != nil {
			c.println("env: read failed")
			return
		}
		b := append(c.scratch[:0], "env: "...)
		b = conv.AppendDeci(b, t)
		b = append(b, "C "...)
		b = conv.AppendDeci(b, rh)
		b = append(b, '%')
		c.emit(b)
	}
}

func (c *Console) unknownPin(n uint8) {
	b := append(c.scratch[:0], "unknown pin: "...)
	b = conv.AppendUint(b, uint64(n))
	b = append(b, ", valid pins are 2-4, 6-12"...)
	c.emit(b)
}

// emit writes one response line. Write errors are ignored: the serial sink
// has no useful failure mode and the loop must not stall on it.
func (c *Console) emit(line []byte) {
	line = append(line, '\n')
	_, _ = c.w.Write(line)
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.w, s)
}

func (c *Console) println(s string) {
	c.print(s)
	c.print("\n")
}
