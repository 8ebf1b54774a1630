package validator

import (
	"net/mail"
	"strings"
)

// Email accepts a bare address such as "jane@example.com". Display-name
// forms ("Jane <jane@example.com>") are rejected, and the domain must have
// at least two non-empty labels.
func Email() Check[string] {
	return Check[string]{
		Fn: isEmail,
		Error: ValidationError{
			Kind:           KindFormat,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
		},
	}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || addr.Name != "" {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}
