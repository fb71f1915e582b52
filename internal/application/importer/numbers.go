package importer

import (
	"strconv"
	"strings"
)

var numberCleaner = strings.NewReplacer(
	"٬", "", // Arabic thousands separator
	",", "",
	"٫", ".", // Arabic decimal separator
	"\u00a0", "",
	" ", "",
)

var percentSign = strings.NewReplacer("%", "", "٪", "")

// normalizeDigits maps Arabic-Indic and Eastern Arabic-Indic digits to ASCII.
func normalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		}
		return r
	}, s)
}

// ParseNumber reads spreadsheet numbers such as "١٬٤٢٠٬٠٠٠", "1,420,000" or "٦٫٠٠".
// ok is false for blank or unparseable cells, which are stored as NULL.
func ParseNumber(s string) (v float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = numberCleaner.Replace(normalizeDigits(s))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseInt is ParseNumber truncated toward zero.
func ParseInt(s string) (int, bool) {
	v, ok := ParseNumber(s)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// ParsePercent is ParseNumber with "%" and "٪" removed.
func ParsePercent(s string) (float64, bool) {
	return ParseNumber(percentSign.Replace(s))
}
