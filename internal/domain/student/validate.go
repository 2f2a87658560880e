package student

import (
	"strings"

	"github.com/Kunalv272/StudentTracker/internal/domain/shared"
)

// Historical fixed-buffer capacities, kept as a documented contract on the
// entity-creation boundary. The limit counts a terminator slot, so the longest
// admissible value is one byte shorter than the capacity.
const (
	NameMax = 64
	RollMax = 32
)

// isValidNameChar reports whether c may appear anywhere in a display name.
func isValidNameChar(c rune) bool {
	return isLetter(c) || c == ' ' || c == '-'
}

// isValidRollChar reports whether c may appear in a roll number.
func isValidRollChar(c rune) bool {
	return isLetter(c) || isDigit(c) || c == '/' || c == '-'
}

func isLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// ValidateRoll checks a roll number against the admission rules: non-empty,
// and every character alphanumeric or one of '/' and '-'.
func ValidateRoll(roll string) error {
	if roll == "" {
		return shared.ErrEmptyRoll
	}
	for _, c := range roll {
		if !isValidRollChar(c) {
			return shared.ErrInvalidRollChar
		}
	}
	return nil
}

// ValidateName checks a display name: non-empty, at least two
// whitespace-separated tokens, every character a letter, space, or hyphen,
// and the second token free of anything but letters and hyphens.
// An invalid character anywhere is reported before a missing second token.
func ValidateName(name string) error {
	if name == "" {
		return shared.ErrEmptyName
	}
	for _, c := range name {
		if !isValidNameChar(c) {
			return shared.ErrInvalidNameChar
		}
	}

	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return shared.ErrNoSecondName
	}

	for _, c := range tokens[1] {
		if !isLetter(c) && c != '-' {
			return shared.ErrInvalidSecondName
		}
	}
	return nil
}

// boundedCopy applies the fixed-capacity contract to src: the copy fails when
// src would not fit a buffer of the given capacity with its terminator.
func boundedCopy(capacity int, src string) (string, error) {
	if len(src) >= capacity {
		return "", shared.ErrOverflow
	}
	return src, nil
}
