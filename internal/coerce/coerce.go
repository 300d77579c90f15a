package coerce

import (
	"strconv"
	"strings"

	"adqa/domain/table"
)

// currency markers stripped before numeric parsing
var currencySymbols = []string{"$", "€", "£", "¥", "USD", "EUR", "GBP", "JPY"}

// Cell deterministically converts a raw spreadsheet string into a typed
// cell. Empty or whitespace-only input becomes a missing cell. Numeric
// parsing tolerates thousands separators, currency symbols, a trailing
// percent sign, and parenthesized negatives.
func Cell(raw string) table.Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return table.NewMissingCell()
	}

	if n, ok := tryNumeric(s); ok {
		return table.NewNumberCell(n)
	}
	if b, ok := tryBoolean(s); ok {
		return table.NewBooleanCell(b)
	}
	return table.NewTextCell(s)
}

func tryNumeric(s string) (float64, bool) {
	clean := s

	// Parenthesized accounting negatives: (123) -> -123
	negative := false
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		clean = strings.TrimSuffix(strings.TrimPrefix(clean, "("), ")")
		negative = true
	}

	for _, symbol := range currencySymbols {
		clean = strings.ReplaceAll(clean, symbol, "")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "%")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}

func tryBoolean(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}
