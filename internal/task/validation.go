package task

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ValidateTitle returns the trimmed, NFC-normalised title.
func ValidateTitle(title string) (string, error) {
	trimmed := norm.NFC.String(strings.TrimSpace(title))
	if trimmed == "" {
		return "", ErrInvalidTitle
	}
	return trimmed, nil
}
