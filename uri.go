package lumina

import (
	"fmt"
	"net/url"
	"strings"
)

// uriExcluded are the characters the URI grammar excludes on top of the
// control range; url.Parse accepts most of them in opaque positions, so
// they are rejected here explicitly.
const uriExcluded = " <>\"{}|\\^`"

// parseURI is a strict url.Parse: any control character or excluded
// character makes the candidate a non-URI. The empty string parses as an
// empty relative reference.
func parseURI(s string) (*url.URL, error) {
	for _, r := range s {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(uriExcluded, r) {
			return nil, fmt.Errorf("invalid character %q in URI %q", r, s)
		}
	}
	return url.Parse(s)
}

func validateName(name, value string) error {
	if value == "" {
		return &ValidationError{Name: name, Value: value, Message: "may not be empty"}
	}
	if strings.TrimSpace(value) != value {
		return &ValidationError{Name: name, Value: value, Message: "may not contain leading or trailing whitespace"}
	}
	return nil
}
