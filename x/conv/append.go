// Package conv holds allocation-free append formatters for reply text.
// No fmt/strconv dependency so the same code runs on MCU builds.
package conv

// AppendUint appends the base-10 representation of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	if n == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// AppendBool appends "true" or "false".
func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, "true"...)
	}
	return append(dst, "false"...)
}

// AppendU16Hex appends 4-digit uppercase hex without 0x, zero-padded.
func AppendU16Hex(dst []byte, n uint16) []byte {
	const hexd = "0123456789ABCDEF"
	return append(dst,
		hexd[n>>12&0xF],
		hexd[n>>8&0xF],
		hexd[n>>4&0xF],
		hexd[n&0xF],
	)
}

// AppendDeci appends n tenths as a signed decimal with one fractional
// digit, e.g. 234 -> "23.4", -5 -> "-0.5".
func AppendDeci(dst []byte, n int32) []byte {
	u := uint64(n)
	if n < 0 {
		dst = append(dst, '-')
		u = uint64(-int64(n))
	}
	dst = AppendUint(dst, u/10)
	dst = append(dst, '.')
	return append(dst, byte('0'+u%10))
}
