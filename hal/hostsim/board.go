// Package hostsim is a host-side stand-in for the board hardware, used by
// tests and cmd/host-console. State is plain fields: the console loop is
// single-threaded, so no locking discipline is needed.
package hostsim

import "pinshell-go/hal"

// Pin models one physical pin. Role views (input/output) share this state
// the way reconfiguring a real pin preserves the pad.
type Pin struct {
	Num         uint8
	Output      bool
	Level       bool
	Transitions int
}

// SetExternalLevel simulates an external voltage applied to the pin.
// Meaningful while the pin is in input role.
func (p *Pin) SetExternalLevel(level bool) { p.Level = level }

type inputView struct{ p *Pin }

func (v inputView) IsHigh() bool { return v.p.Level }
func (v inputView) IntoOutput() hal.OutputPin {
	v.p.Output = true
	v.p.Level = false
	v.p.Transitions++
	return outputView{p: v.p}
}

type outputView struct{ p *Pin }

func (v outputView) SetHigh()        { v.p.Level = true }
func (v outputView) SetLow()         { v.p.Level = false }
func (v outputView) IsSetHigh() bool { return v.p.Level }
func (v outputView) IntoInput() hal.InputPin {
	v.p.Output = false
	v.p.Transitions++
	return inputView{p: v.p}
}

// PWM records duty/enable calls.
type PWM struct {
	Duty     uint8
	Enabled  bool
	SetCalls int
}

func (p *PWM) SetDuty(duty uint8) { p.Duty = duty; p.SetCalls++ }
func (p *PWM) Enable()            { p.Enabled = true }

// ADC returns programmable readings.
type ADC struct {
	Channels [6]uint16
	Temp     uint16
}

func (a *ADC) ReadChannel(ch uint8) uint16 {
	if int(ch) >= len(a.Channels) {
		return 0
	}
	return a.Channels[ch]
}

func (a *ADC) ReadTemp() uint16 { return a.Temp }

// Env is a programmable environment sensor.
type Env struct {
	DeciC  int32
	DeciRH int32
	Err    error
}

func (e *Env) ReadEnv() (int32, int32, error) { return e.DeciC, e.DeciRH, e.Err }

// Board aggregates the simulated peripherals.
type Board struct {
	pins map[uint8]*Pin
	led  *Pin

	PWM *PWM
	ADC *ADC
	Env *Env
}

// NewBoard creates a board with all supported digital pins, the LED, PWM,
// ADC and an environment sensor.
func NewBoard() *Board {
	b := &Board{
		pins: map[uint8]*Pin{},
		led:  &Pin{Num: 13, Output: true},
		PWM:  &PWM{},
		ADC:  &ADC{},
		Env:  &Env{},
	}
	for _, n := range hal.SupportedPins {
		b.pins[n] = &Pin{Num: n}
	}
	return b
}

// InputPin implements hal.PinProvider.
func (b *Board) InputPin(num uint8) (hal.InputPin, bool) {
	p, ok := b.pins[num]
	if !ok {
		return nil, false
	}
	return inputView{p: p}, true
}

// Pin exposes the underlying state for tests (e.g. to sense driven levels).
func (b *Board) Pin(num uint8) (*Pin, bool) {
	p, ok := b.pins[num]
	return p, ok
}

// LED returns the fixed onboard LED as an output handle.
func (b *Board) LED() hal.OutputPin { return outputView{p: b.led} }

// LEDState exposes the LED pin state for tests.
func (b *Board) LEDState() *Pin { return b.led }
