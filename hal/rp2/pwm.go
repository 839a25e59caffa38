//go:build rp2040

package rp2

import (
	"machine"
	"time"

	"pinshell-go/errcode"
)

// pwmPin is the dedicated PWM output (GP5).
const pwmPin = 5

// pwmFreqHz keeps the classic ~490 Hz analog-write frequency.
const pwmFreqHz = 490

// pwmCtrl avoids depending on the unexported concrete controller type in
// machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Top() uint32
	Set(channel uint8, value uint32)
}

func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// PWM drives the dedicated output with an 8-bit duty cycle, scaled to the
// slice's hardware top.
type PWM struct {
	ctrl    pwmCtrl
	chIdx   uint8 // channel within the slice: even pin => A(0), odd => B(1)
	duty    uint8
	enabled bool
}

func NewPWM(pin int) (*PWM, error) {
	slice, err := machine.PWMPeripheral(machine.Pin(pin))
	if err != nil {
		return nil, errcode.Unsupported
	}
	ctrl := pwmGroupBySlice(slice)
	if err := ctrl.Configure(machine.PWMConfig{Period: uint64(time.Second) / pwmFreqHz}); err != nil {
		return nil, err
	}
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinPWM})
	return &PWM{ctrl: ctrl, chIdx: uint8(pin & 1)}, nil
}

func (p *PWM) SetDuty(duty uint8) {
	p.duty = duty
	if p.enabled {
		p.apply()
	}
}

func (p *PWM) Enable() {
	p.enabled = true
	p.apply()
}

func (p *PWM) apply() {
	hw := uint32(p.duty) * p.ctrl.Top() / 255
	p.ctrl.Set(p.chIdx, hw)
}
