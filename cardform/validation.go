package cardform

import (
	"unicode"
	"unicode/utf8"
)

// HasSpace reports whether value contains any whitespace.
func HasSpace(value string) bool {
	for _, r := range value {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// IsNotNumber reports whether value contains anything other than the digits
// 0-9. The empty string is a number so that a field can be cleared.
func IsNotNumber(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false
}

// IsLengthBelow reports whether value has fewer than length characters.
func IsLengthBelow(value string, length int) bool {
	return utf8.RuneCountInString(value) < length
}

// IsLengthOver reports whether value has more than length characters.
func IsLengthOver(value string, length int) bool {
	return utf8.RuneCountInString(value) > length
}

// IsNumberInRange reports whether value is acceptable for a numeric field of
// at most maxLength digits.
func IsNumberInRange(value string, maxLength int) bool {
	if HasSpace(value) {
		return false
	}

	if IsNotNumber(value) {
		return false
	}

	if IsLengthOver(value, maxLength) {
		return false
	}

	return true
}

// IsAlphabetOrSpace reports whether value holds only ASCII letters and
// spaces.
func IsAlphabetOrSpace(value string) bool {
	for _, r := range value {
		if r == ' ' {
			continue
		}
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// IsNameInRange reports whether value is acceptable for an alphabetic field
// of at most maxLength characters.
func IsNameInRange(value string, maxLength int) bool {
	if !IsAlphabetOrSpace(value) {
		return false
	}

	if IsLengthOver(value, maxLength) {
		return false
	}

	return true
}
