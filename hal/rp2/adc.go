//go:build rp2040

package rp2

import (
	"device/rp"
	"machine"
)

// ADC samples the external analog channels and the on-die temperature
// sensor. The RP2040 has four analog pads (GP26-GP29); protocol channels
// 4 and 5 have no pad here and read as 0.
type ADC struct {
	channels [4]machine.ADC
}

func NewADC() *ADC {
	machine.InitADC()
	a := &ADC{channels: [4]machine.ADC{
		{Pin: machine.ADC0},
		{Pin: machine.ADC1},
		{Pin: machine.ADC2},
		{Pin: machine.ADC3},
	}}
	for i := range a.channels {
		_ = a.channels[i].Configure(machine.ADCConfig{})
	}
	return a
}

func (a *ADC) ReadChannel(ch uint8) uint16 {
	if int(ch) >= len(a.channels) {
		return 0
	}
	return a.channels[ch].Get()
}

// ReadTemp returns the raw 12-bit conversion from the internal temperature
// sensor, ADC mux input 4.
func (a *ADC) ReadTemp() uint16 {
	rp.ADC.CS.SetBits(rp.ADC_CS_TS_EN)

	const tempInput = 4
	rp.ADC.CS.ReplaceBits(
		uint32(tempInput)<<rp.ADC_CS_AINSEL_Pos,
		rp.ADC_CS_AINSEL_Msk,
		0,
	)

	rp.ADC.CS.SetBits(rp.ADC_CS_START_ONCE)
	for !rp.ADC.CS.HasBits(rp.ADC_CS_READY) {
	}
	return uint16(rp.ADC.RESULT.Get())
}
