package iban

import (
	"fmt"
	"regexp"
	"strings"
)

var shapeRe = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]{4,30}$`)

// Validate checks the IBAN shape and its MOD-97 checksum.
// The country code and check digits are moved to the end, letters are
// mapped to 10..35, and the resulting number modulo 97 must equal 1.
func Validate(value string) error {
	normalized := strings.ToUpper(strings.ReplaceAll(value, " ", ""))
	if !shapeRe.MatchString(normalized) {
		return fmt.Errorf("format IBAN invalide")
	}

	rearranged := normalized[4:] + normalized[:4]
	remainder := 0
	for _, r := range rearranged {
		var digits string
		switch {
		case r >= '0' && r <= '9':
			digits = string(r)
		case r >= 'A' && r <= 'Z':
			digits = fmt.Sprintf("%d", int(r)-55)
		default:
			return fmt.Errorf("format IBAN invalide")
		}
		for _, d := range digits {
			remainder = (remainder*10 + int(d-'0')) % 97
		}
	}

	if remainder != 1 {
		return fmt.Errorf("IBAN invalide (somme de contrôle)")
	}
	return nil
}
