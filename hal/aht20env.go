package hal

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/aht20"
)

// AHT20Env adapts the AHT20 temperature/humidity driver to EnvSensor.
// The sensor is optional board hardware; mains pass nil EnvSensor when it
// is not fitted.
type AHT20Env struct {
	dev aht20.Device
}

var _ EnvSensor = (*AHT20Env)(nil)

// NewAHT20Env initialises an AHT20 on the given I²C bus.
func NewAHT20Env(bus drivers.I2C) *AHT20Env {
	e := &AHT20Env{dev: aht20.New(bus)}
	e.dev.Configure()
	return e
}

func (e *AHT20Env) ReadEnv() (deciC, deciRH int32, err error) {
	if err := e.dev.Read(); err != nil {
		return 0, 0, err
	}
	return e.dev.DeciCelsius(), e.dev.DeciRelHumidity(), nil
}
