package hal

// Role-specific pin handles. A physical pin is represented by exactly one
// handle at a time; the Into* conversions CONSUME the receiver and hand back
// the same physical pin under the other role. Callers must not touch a
// handle after converting it. DynamicPin is the only intended caller and
// enforces this by dropping its old reference in the same step.

// InputPin is a pin handle configured to read an external voltage level.
type InputPin interface {
	// IsHigh reports the sensed logic level.
	IsHigh() bool
	// IntoOutput reconfigures the pin as an output and consumes this handle.
	// The new output drives low until told otherwise.
	IntoOutput() OutputPin
}

// OutputPin is a pin handle configured to drive a voltage level.
type OutputPin interface {
	SetHigh()
	SetLow()
	// IsSetHigh reports the level currently being driven.
	IsSetHigh() bool
	// IntoInput reconfigures the pin as a floating input and consumes this handle.
	IntoInput() InputPin
}

// DynamicPin owns one controllable digital pin whose role can change at
// runtime. Exactly one of in/out is non-nil at any observable instant; a
// role transition moves the old handle out and the new handle in within a
// single call. The dispatch loop is the sole owner, so the swap cannot be
// observed half-done.
type DynamicPin struct {
	num uint8
	in  InputPin
	out OutputPin
}

// NewDynamicPin wraps an input-role handle. Pins start life as inputs.
func NewDynamicPin(num uint8, in InputPin) *DynamicPin {
	return &DynamicPin{num: num, in: in}
}

func (p *DynamicPin) Number() uint8 { return p.num }

// ReadLevel returns the current logic level: the sensed level in input role,
// the driven level in output role. It never changes the role.
func (p *DynamicPin) ReadLevel() bool {
	if p.out != nil {
		return p.out.IsSetHigh()
	}
	return p.in.IsHigh()
}

// DriveHigh forces the pin into output role and drives it high.
func (p *DynamicPin) DriveHigh() {
	p.asOutput()
	p.out.SetHigh()
}

// DriveLow forces the pin into output role and drives it low.
func (p *DynamicPin) DriveLow() {
	p.asOutput()
	p.out.SetLow()
}

func (p *DynamicPin) asOutput() {
	if p.out != nil {
		return
	}
	in := p.in
	p.in = nil
	p.out = in.IntoOutput()
}

func (p *DynamicPin) asInput() {
	if p.in != nil {
		return
	}
	out := p.out
	p.out = nil
	p.in = out.IntoInput()
}
