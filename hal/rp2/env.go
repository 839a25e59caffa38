//go:build rp2040

package rp2

import (
	"machine"

	"pinshell-go/hal"
)

// NewEnvSensor brings up the optional AHT20 on I2C0. Returns nil when the
// bus cannot be configured; the console then reports env as unavailable.
func NewEnvSensor() hal.EnvSensor {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		SDA: machine.I2C0_SDA_PIN,
		SCL: machine.I2C0_SCL_PIN,
	}); err != nil {
		return nil
	}
	return hal.NewAHT20Env(i2c)
}
