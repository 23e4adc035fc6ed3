package symbols

import "fmt"

// ValidateFormat reports whether symbol is uppercase ASCII alphanumeric and
// within [minLen, maxLen] characters. The bound differs by call site: the
// config resolver uses a tighter bound than the upstream ingress parser.
func ValidateFormat(symbol string, minLen, maxLen int) error {
	if len(symbol) < minLen || len(symbol) > maxLen {
		return fmt.Errorf("symbol %q: length %d outside [%d, %d]", symbol, len(symbol), minLen, maxLen)
	}
	for _, r := range symbol {
		isUpper := r >= 'A' && r <= 'Z'
		isDigit := r >= '0' && r <= '9'
		if !isUpper && !isDigit {
			return fmt.Errorf("symbol %q: invalid character %q, want uppercase alphanumeric", symbol, r)
		}
	}
	return nil
}
