package hal

// Narrow interfaces for the fixed-function peripherals the dispatch loop
// drives. Providers implement these next to their PinProvider.

// PWMOutput is the dedicated PWM pin's driver.
type PWMOutput interface {
	// SetDuty sets the duty cycle, 0 (off) to 255 (fully on).
	SetDuty(duty uint8)
	// Enable starts driving the output at the configured duty cycle.
	Enable()
}

// AnalogReader samples the board's analog inputs and the fixed internal
// temperature channel.
type AnalogReader interface {
	// ReadChannel samples analog channel ch. Channel validity (0-5) is the
	// dispatch loop's responsibility.
	ReadChannel(ch uint8) uint16
	// ReadTemp samples the onboard temperature sensor, raw reading.
	ReadTemp() uint16
}

// EnvSensor reads the optional external temperature/humidity sensor.
type EnvSensor interface {
	// ReadEnv returns temperature in deci-celsius and relative humidity in
	// deci-percent.
	ReadEnv() (deciC, deciRH int32, err error)
}
