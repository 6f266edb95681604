// Package dotcode normalizes Dictionary of Occupational Titles codes between
// the formatted XXX.XXX-XXX form and the 9-digit numeric Ncode.
package dotcode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	formattedPattern = regexp.MustCompile(`^(\d{3})\.(\d{3})-(\d{3})$`)
	digitsPattern    = regexp.MustCompile(`^\d{1,9}$`)
)

// Code is a DOT code in both representations.
type Code struct {
	Ncode     int    `json:"ncode"`
	Formatted string `json:"formatted"`
}

// Digits returns the zero-padded 9-digit form, e.g. "001061010".
func (c Code) Digits() string {
	return fmt.Sprintf("%09d", c.Ncode)
}

// InvalidCodeError reports a code in an unrecognized format.
type InvalidCodeError struct {
	Input   string
	Message string
}

func (e *InvalidCodeError) Error() string {
	return fmt.Sprintf("invalid DOT code %q: %s", e.Input, e.Message)
}

// Clean accepts "001.061-010", "001061010" or "1061010" and returns both forms.
func Clean(input string) (Code, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Code{}, &InvalidCodeError{Input: input, Message: "DOT code must be a non-empty string"}
	}

	if m := formattedPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1] + m[2] + m[3])
		if err != nil {
			return Code{}, &InvalidCodeError{Input: input, Message: "failed to convert to numeric format"}
		}
		return Code{Ncode: n, Formatted: s}, nil
	}

	if digitsPattern.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Code{}, &InvalidCodeError{Input: input, Message: "failed to convert to standard format"}
		}
		return Code{Ncode: n, Formatted: Format(n)}, nil
	}

	return Code{}, &InvalidCodeError{Input: input, Message: "DOT code must be in XXX.XXX-XXX format or all digits"}
}

// Format renders a numeric Ncode as XXX.XXX-XXX. Values outside 0-999999999
// yield "".
func Format(ncode int) string {
	if ncode < 0 || ncode > 999999999 {
		return ""
	}
	s := fmt.Sprintf("%09d", ncode)
	return s[0:3] + "." + s[3:6] + "-" + s[6:9]
}

// Validation is the outcome of Validate.
type Validation struct {
	Original  string   `json:"original"`
	Valid     bool     `json:"valid"`
	Formatted string   `json:"formatted,omitempty"`
	Ncode     *int     `json:"ncode,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// Validate reports whether input is a well-formed DOT code.
func Validate(input string) Validation {
	result := Validation{Original: input}
	code, err := Clean(input)
	if err != nil {
		var invalid *InvalidCodeError
		if errors.As(err, &invalid) {
			result.Errors = append(result.Errors, invalid.Message)
		} else {
			result.Errors = append(result.Errors, err.Error())
		}
		return result
	}
	result.Valid = true
	result.Formatted = code.Formatted
	n := code.Ncode
	result.Ncode = &n
	return result
}
