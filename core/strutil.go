package core

// Itoa converts an integer to a string without using fmt package
// This is a lightweight alternative for embedded systems
func Itoa(n int) string {
	var buf [20]byte
	return string(AppendInt(buf[:0], n))
}

// AppendInt appends the decimal form of n to buf
func AppendInt(buf []byte, n int) []byte {
	if n == 0 {
		return append(buf, '0')
	}

	var tmp [20]byte
	pos := len(tmp)

	// Work on the negative value so math.MinInt does not overflow
	negative := n < 0
	if !negative {
		n = -n
	}
	for n < 0 {
		pos--
		tmp[pos] = byte('0' - n%10)
		n /= 10
	}
	if negative {
		pos--
		tmp[pos] = '-'
	}

	return append(buf, tmp[pos:]...)
}

// AppendIntLeft appends n left-justified in a field of width columns,
// padded with spaces on the right (printf "%-Nd")
func AppendIntLeft(buf []byte, n int, width int) []byte {
	start := len(buf)
	buf = AppendInt(buf, n)
	for len(buf)-start < width {
		buf = append(buf, ' ')
	}
	return buf
}

// AppendZeroPad appends n (expected >= 0) with at least width digits,
// padded with leading zeros (printf "%0Nd")
func AppendZeroPad(buf []byte, n int, width int) []byte {
	digits := 1
	for v := n; v >= 10; v /= 10 {
		digits++
	}
	for ; digits < width; digits++ {
		buf = append(buf, '0')
	}
	return AppendInt(buf, n)
}

// AppendStringLeft appends s left-justified in a field of width columns
// (printf "%-Ns"). Longer strings are not truncated.
func AppendStringLeft(buf []byte, s string, width int) []byte {
	buf = append(buf, s...)
	for i := len(s); i < width; i++ {
		buf = append(buf, ' ')
	}
	return buf
}
