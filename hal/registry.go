package hal

import "pinshell-go/errcode"

// SupportedPins lists the digital pin numbers the console may address.
// Pin 5 is the dedicated PWM output and 13 the onboard LED; neither is
// addressable through get/set.
var SupportedPins = [...]uint8{2, 3, 4, 6, 7, 8, 9, 10, 11, 12}

// PinProvider hands out input-role handles by pin number.
// Providers: hostsim (host tests and demos) and rp2 (rp2040 builds).
type PinProvider interface {
	InputPin(num uint8) (InputPin, bool)
}

// Registry is the fixed mapping from pin number to its DynamicPin.
// Built once at startup, never resized.
type Registry struct {
	pins map[uint8]*DynamicPin
}

// NewRegistry claims every supported pin from the provider, in input role.
func NewRegistry(prov PinProvider) (*Registry, error) {
	pins := make(map[uint8]*DynamicPin, len(SupportedPins))
	for _, n := range SupportedPins {
		in, ok := prov.InputPin(n)
		if !ok {
			return nil, errcode.UnknownPin
		}
		pins[n] = NewDynamicPin(n, in)
	}
	return &Registry{pins: pins}, nil
}

// Lookup returns the DynamicPin for n, or false for unsupported numbers.
func (r *Registry) Lookup(n uint8) (*DynamicPin, bool) {
	p, ok := r.pins[n]
	return p, ok
}
