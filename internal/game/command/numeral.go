package command

import (
	"strconv"
	"strings"
)

var units = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "seven": 7,
	"eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
	"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19,
}

var tens = map[string]int{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// ParseNumeral converts a digit string or a number word ("one" to
// "ninety-nine", hyphenated compounds) to a positive integer.
//
// Postcondition: ok is false for zero, negatives and non-numerals.
func ParseNumeral(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	if s[0] >= '0' && s[0] <= '9' {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return 0, false
		}
		return n, true
	}
	if n, ok := units[s]; ok {
		return n, true
	}
	if n, ok := tens[s]; ok {
		return n, true
	}
	head, tail, found := strings.Cut(s, "-")
	if !found {
		return 0, false
	}
	t, ok := tens[head]
	if !ok {
		return 0, false
	}
	u, ok := units[tail]
	if !ok || u > 9 {
		return 0, false
	}
	return t + u, true
}
