package console

// Kind tags the command variant.
type Kind uint8

const (
	KindHelp Kind = iota
	KindLed
	KindGetPin
	KindSetPin
	KindPwm
	KindAdc
	KindTemp
	KindEnv
)

// Command is one parsed input line. It is syntactically complete (keyword,
// field count, numeric width) but NOT semantically validated: pin and
// channel ranges are checked at dispatch. Constructed by Parse, consumed by
// the dispatch loop, then discarded.
type Command struct {
	Kind Kind

	On      bool  // KindLed
	Pin     uint8 // KindGetPin, KindSetPin
	Level   bool  // KindSetPin
	Duty    uint8 // KindPwm
	Channel uint8 // KindAdc
}
