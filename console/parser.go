package console

import (
	"strings"

	"pinshell-go/errcode"
)

// Parse converts one complete line (no trailing newline) into a Command.
//
// Grammar, whitespace-sensitive (single space separators), case-sensitive:
//
//	command := "help"
//	         | "led" " " ("on" | "off")
//	         | "get" " " number
//	         | "set" " " number " " ("high" | "low")
//	         | "pwm" " " number
//	         | "adc" " " number
//	         | "temp"
//	         | "env"
//	number  := digit+
//
// The whole line must be consumed. Numbers must fit in 8 bits; a digit
// sequence above 255 fails the parse the same way malformed input does.
// On failure the returned error is errcode.ParseError and carries nothing
// else: the caller reports the offending line back to the operator.
func Parse(line string) (Command, error) {
	switch line {
	case "help":
		return Command{Kind: KindHelp}, nil
	case "temp":
		return Command{Kind: KindTemp}, nil
	case "env":
		return Command{Kind: KindEnv}, nil
	}

	if arg, ok := strings.CutPrefix(line, "led "); ok {
		switch arg {
		case "on":
			return Command{Kind: KindLed, On: true}, nil
		case "off":
			return Command{Kind: KindLed, On: false}, nil
		}
		return Command{}, errcode.ParseError
	}

	if arg, ok := strings.CutPrefix(line, "get "); ok {
		pin, ok := parseU8(arg)
		if !ok {
			return Command{}, errcode.ParseError
		}
		return Command{Kind: KindGetPin, Pin: pin}, nil
	}

	if arg, ok := strings.CutPrefix(line, "set "); ok {
		num, level, found := strings.Cut(arg, " ")
		if !found {
			return Command{}, errcode.ParseError
		}
		pin, ok := parseU8(num)
		if !ok {
			return Command{}, errcode.ParseError
		}
		switch level {
		case "high":
			return Command{Kind: KindSetPin, Pin: pin, Level: true}, nil
		case "low":
			return Command{Kind: KindSetPin, Pin: pin, Level: false}, nil
		}
		return Command{}, errcode.ParseError
	}

	if arg, ok := strings.CutPrefix(line, "pwm "); ok {
		duty, ok := parseU8(arg)
		if !ok {
			return Command{}, errcode.ParseError
		}
		return Command{Kind: KindPwm, Duty: duty}, nil
	}

	if arg, ok := strings.CutPrefix(line, "adc "); ok {
		ch, ok := parseU8(arg)
		if !ok {
			return Command{}, errcode.ParseError
		}
		return Command{Kind: KindAdc, Channel: ch}, nil
	}

	return Command{}, errcode.ParseError
}

// parseU8 decodes digit+ into 0..255. Leading zeros are accepted.
func parseU8(s string) (uint8, bool) {
	if len(s) == 0 {
		return 0, false
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
		if v > 255 {
			return 0, false
		}
	}
	return uint8(v), true
}
