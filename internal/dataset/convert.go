package dataset

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Pre-compiled regex for numeric validation (avoids recompilation on each call)
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Layouts accepted for date and datetime cells, tried in order.
var dateTimeLayouts = []string{
	DateTimeFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006 15:04",
	"1/2/2006",
	"01/02/2006",
	"02.01.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"20060102",
}

// DateTimeFormat is the canonical timezone-naive layout used for cleaned
// and exported timestamps.
const DateTimeFormat = "2006-01-02 15:04:05"

// Number is a decimal value that may be invalid.
type Number struct {
	Dec   decimal.Decimal
	Valid bool
}

// Integer is an int value that may be invalid.
type Integer struct {
	Int   int
	Valid bool
}

// DateTime is a timestamp that may be invalid.
type DateTime struct {
	Time  time.Time
	Valid bool
}

// ToNumber coerces a cell to a decimal. Currency symbols, thousands
// separators and the accounting negative form "(123.45)" are accepted.
func ToNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}
	}

	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "")
	s = strings.ReplaceAll(s, "£", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return Number{}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}
	}
	return Number{Dec: d, Valid: true}
}

// ToInteger coerces a cell to an int. Decimal forms with a zero fraction
// ("12.0") are accepted, since spreadsheets routinely render whole numbers
// that way.
func ToInteger(s string) Integer {
	n := ToNumber(s)
	if !n.Valid || !n.Dec.IsInteger() {
		return Integer{}
	}
	i, err := strconv.Atoi(n.Dec.String())
	if err != nil {
		return Integer{}
	}
	return Integer{Int: i, Valid: true}
}

// ToDateTime coerces a cell to a timestamp by trying each known layout.
func ToDateTime(s string) DateTime {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateTime{}
	}
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return DateTime{Time: t, Valid: true}
		}
	}
	return DateTime{}
}
