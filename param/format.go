package param

import "siggen/core"

// hundredthsSlack absorbs binary representation error (0.29 is stored as
// 0.28999...) without turning truncation into rounding.
const hundredthsSlack = 1e-6

// appendFixed renders v as whole.hh, truncating past the hundredths.
// Integer decomposition only: no float formatting support is assumed.
func appendFixed(buf []byte, v float64) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}

	whole := int(v)
	hundredths := int((v-float64(whole))*100 + hundredthsSlack)
	if hundredths > 99 {
		hundredths = 99
	}

	buf = core.AppendInt(buf, whole)
	buf = append(buf, '.')
	return core.AppendZeroPad(buf, hundredths, 2)
}

// appendName renders the name field: left-justified in width columns, then a colon
func appendName(buf []byte, name string, width int) []byte {
	buf = core.AppendStringLeft(buf, name, width)
	return append(buf, ':')
}
