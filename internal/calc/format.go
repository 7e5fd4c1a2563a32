package calc

import (
	"math"
	"strconv"
	"strings"
)

// Dollars formats v rounded to whole dollars with thousands separators: $1,500
func Dollars(v float64) string {
	v = math.Round(finite(v))
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + group(strconv.FormatFloat(v, 'f', 0, 64))
}

// Cents formats v with two decimals: $12.34
func Cents(v float64) string {
	v = finite(v)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")
	return sign + "$" + group(whole) + "." + frac
}

// Percent formats a 0..1 ratio as a whole percentage
func Percent(ratio float64) string {
	return strconv.Itoa(int(math.Round(finite(ratio)*100))) + "%"
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
