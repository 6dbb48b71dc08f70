package passcheck

import (
	"regexp"
	"strings"
)

// keyboardRows are the key rows scanned for adjacency sequences.
var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1234567890",
}

// sequenceWindow is the minimum run length treated as a sequence.
const sequenceWindow = 4

// hasKeyboardSequence reports whether any contiguous sequenceWindow-character
// chunk of a keyboard row, or its reverse, appears in the lower-cased password.
// Rows are scanned in fixed order, chunks left to right.
func hasKeyboardSequence(lower string) bool {
	for _, row := range keyboardRows {
		for i := 0; i+sequenceWindow <= len(row); i++ {
			chunk := row[i : i+sequenceWindow]
			if strings.Contains(lower, chunk) || strings.Contains(lower, reverse(chunk)) {
				return true
			}
		}
	}
	return false
}

// hasMonotonicSequence reports whether any sequenceWindow-length window of the
// password is a strictly +1 or strictly -1 run of character codes, like
// "abcd" or "4321".
func hasMonotonicSequence(password string) bool {
	runes := []rune(password)
	if len(runes) < sequenceWindow {
		return false
	}

	for i := 0; i+sequenceWindow <= len(runes); i++ {
		ascending, descending := true, true
		for j := i; j < i+sequenceWindow-1; j++ {
			diff := runes[j+1] - runes[j]
			if diff != 1 {
				ascending = false
			}
			if diff != -1 {
				descending = false
			}
		}
		if ascending || descending {
			return true
		}
	}
	return false
}

// repeatedRun finds the leftmost run of 4 or more identical consecutive
// characters and returns its full length, or (false, 0) if there is none.
func repeatedRun(password string) (bool, int) {
	runes := []rune(password)

	i := 0
	for i < len(runes) {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if j-i >= 4 {
			return true, j - i
		}
		i = j
	}
	return false, 0
}

// wordDigitsPattern matches whole passwords shaped like a word followed by a
// short digit run and an optional trailing symbol, e.g. "Summer2024!".
var wordDigitsPattern = regexp.MustCompile(`^[A-Za-z]+[0-9]{1,4}[!@#$%]?$`)

// matchesWordDigitsTemplate reports whether the entire password fits the
// common "word + digits (+ symbol)" shape.
func matchesWordDigitsTemplate(password string) bool {
	return wordDigitsPattern.MatchString(password)
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
