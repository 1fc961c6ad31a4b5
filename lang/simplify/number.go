package simplify

import (
	"strconv"
	"strings"
)

// CanonicalNumber returns the shortest decimal form of text: trailing
// fractional zeros are removed, then a trailing decimal point.
//
//	"6.000"        -> "6"
//	"-10.00010000" -> "-10.0001"
//	"1.5e3"        -> "1500"
//
// The second result is false if text is not a decimal number.
func CanonicalNumber(text string) (string, bool) {
	text = strings.TrimSpace(text)

	if text == "" || strings.TrimLeft(text, "+-0123456789.eE") != "" {
		return text, false
	}

	if _, err := strconv.ParseInt(text, 10, 64); err == nil {
		return trimLeadingZeros(text), true
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text, false
	}

	// Plain decimals keep their written digits.
	if !strings.ContainsAny(text, "eE") && strings.IndexByte(text, '.') >= 0 {
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ".")

		return trimLeadingZeros(text), true
	}

	return strconv.FormatFloat(f, 'f', -1, 64), true
}

// trimLeadingZeros removes a leading '+' and redundant leading zeros from
// the integer part of a decimal.
func trimLeadingZeros(text string) string {
	sign := ""

	switch {
	case strings.HasPrefix(text, "-"):
		sign, text = "-", text[1:]
	case strings.HasPrefix(text, "+"):
		text = text[1:]
	}

	text = strings.TrimLeft(text, "0")
	if text == "" || text[0] == '.' {
		text = "0" + text
	}

	if text == "0" {
		sign = ""
	}

	return sign + text
}
